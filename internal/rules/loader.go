package rules

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFS loads checks from an embed.FS or any fs.FS.
func LoadFromFS(fsys fs.FS) ([]RawCheck, error) {
	var all []RawCheck
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		checks, err := parseMultiDocYAML(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		all = append(all, checks...)
		return nil
	})
	return all, err
}

// maxCheckFileSize is the maximum size for a single YAML check file (1 MB).
const maxCheckFileSize = 1 << 20

// LoadFromDir loads checks from a directory on disk.
// Files larger than 1 MB are skipped.
func LoadFromDir(dir string) ([]RawCheck, error) {
	var all []RawCheck
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYAML(path) {
			return nil
		}
		if info.Size() > maxCheckFileSize {
			fmt.Fprintf(os.Stderr, "warning: skipping oversized check file %s (%d bytes, max %d)\n", path, info.Size(), maxCheckFileSize)
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		checks, err := parseMultiDocYAML(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		all = append(all, checks...)
		return nil
	})
	return all, err
}

// parseMultiDocYAML splits a YAML file on "---" boundaries and parses each document.
func parseMultiDocYAML(data []byte) ([]RawCheck, error) {
	var checks []RawCheck
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var raw RawCheck
		err := decoder.Decode(&raw)
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, err
		}
		if raw.ID != "" {
			checks = append(checks, raw)
		}
	}
	return checks, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
