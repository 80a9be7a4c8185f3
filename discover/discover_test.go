package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garagon/yacare/discover"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanFindsDelimitedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x,y\n1,2\n")
	writeFile(t, filepath.Join(dir, "sub", "b.tsv"), "p\tq\tr\n1\t2\t3\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a table")

	result, err := discover.Scan(dir, nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	require.Equal(t, "a.csv", result.Files[0].RelPath)
	require.Equal(t, []string{"x", "y"}, result.Files[0].Columns)
	require.Equal(t, filepath.Join("sub", "b.tsv"), result.Files[1].RelPath)
	require.Equal(t, 5, result.TotalColumns())
}

func TestScanHonorsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.csv"), "a\n1\n")
	writeFile(t, filepath.Join(dir, "tmp", "skip.csv"), "b\n2\n")
	writeFile(t, filepath.Join(dir, ".yacareignore"), "# generated\ntmp/**\n")

	result, err := discover.Scan(dir, nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	require.Equal(t, "keep.csv", result.Files[0].RelPath)
}

func TestScanIgnorePatternArgument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "raw.csv"), "a\n1\n")
	writeFile(t, filepath.Join(dir, "deep", "nested", "old.csv"), "a\n1\n")

	result, err := discover.Scan(dir, []string{"**/old.csv"})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
}

func TestScanRejectsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	writeFile(t, path, "x\n1\n")
	_, err := discover.Scan(path, nil)
	require.Error(t, err)
}

func TestFormatTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x,y\n1,2\n")
	result, err := discover.Scan(dir, nil)
	require.NoError(t, err)

	tree := discover.FormatTree(result)
	require.Contains(t, tree, "a.csv")
	require.Contains(t, tree, "(2 columns)")

	empty := discover.FormatTree(&discover.Result{})
	require.Contains(t, empty, "No delimited data files")
}
