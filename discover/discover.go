// Package discover locates delimited data files (CSV/TSV) under a directory
// so the CLI can diagnose a whole dataset folder at once.
package discover

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a discovered delimited data file.
type File struct {
	Path      string   `json:"path"`
	RelPath   string   `json:"rel_path"`
	Delimiter string   `json:"delimiter"`
	Columns   []string `json:"columns,omitempty"`
}

// Result holds the full discovery output.
type Result struct {
	Root  string `json:"root"`
	Files []File `json:"files"`
}

// TotalColumns returns the total number of header columns across all files.
func (r *Result) TotalColumns() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Columns)
	}
	return n
}

var delimiters = map[string]string{
	".csv": ",",
	".tsv": "\t",
}

// Scan walks root and returns all delimited data files, respecting
// .yacareignore patterns. Each file's header row is peeked to record its
// column names; files without a readable header are still listed.
func Scan(root string, ignorePatterns []string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	ignorePatterns = append(ignorePatterns, loadIgnoreFile(root)...)

	result := &Result{Root: root}
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible files
		}
		if info.IsDir() {
			base := info.Name()
			if base == ".git" || base == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		delim, ok := delimiters[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		relPath, _ := filepath.Rel(root, path)
		if isIgnored(ignorePatterns, relPath) {
			return nil
		}
		result.Files = append(result.Files, File{
			Path:      path,
			RelPath:   relPath,
			Delimiter: delim,
			Columns:   peekHeader(path, delim),
		})
		return nil
	})
	return result, err
}

// peekHeader reads the first record of a delimited file.
func peekHeader(path, delim string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = rune(delim[0])
	header, err := cr.Read()
	if err != nil {
		return nil
	}
	return header
}

func loadIgnoreFile(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, ".yacareignore"))
	if err != nil {
		return nil
	}
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	return patterns
}

func isIgnored(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if matchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// matchGlob supports ** globs that filepath.Match does not.
// "dir/**" matches any file under dir/ at any depth.
// "**/*.csv" matches any .csv file at any depth.
func matchGlob(pattern, relPath string) bool {
	// Fast path: no ** means filepath.Match is sufficient
	if !strings.Contains(pattern, "**") {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(relPath)); matched {
			return true
		}
		return false
	}

	// "prefix/**" → match anything under prefix/
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		if strings.HasPrefix(relPath, prefix+"/") || relPath == prefix {
			return true
		}
	}

	// "**/<glob>" → match <glob> against every path suffix
	if strings.HasPrefix(pattern, "**/") {
		suffix := strings.TrimPrefix(pattern, "**/")
		parts := strings.Split(relPath, "/")
		for i := range parts {
			candidate := strings.Join(parts[i:], "/")
			if matched, _ := filepath.Match(suffix, candidate); matched {
				return true
			}
		}
	}

	// "prefix/**/suffix" → prefix matches start, suffix matches rest
	if idx := strings.Index(pattern, "/**/"); idx >= 0 {
		prefix := pattern[:idx]
		suffix := pattern[idx+4:]
		if strings.HasPrefix(relPath, prefix+"/") {
			rest := strings.TrimPrefix(relPath, prefix+"/")
			parts := strings.Split(rest, "/")
			for i := range parts {
				candidate := strings.Join(parts[i:], "/")
				if matched, _ := filepath.Match(suffix, candidate); matched {
					return true
				}
			}
		}
	}

	return false
}

// FormatTree returns a human-readable tree of discovered data files.
func FormatTree(result *Result) string {
	if len(result.Files) == 0 {
		return "No delimited data files found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d data file(s) under %s:\n\n", len(result.Files), result.Root)
	for _, f := range result.Files {
		fmt.Fprintf(&b, "  %s", f.RelPath)
		if len(f.Columns) > 0 {
			fmt.Fprintf(&b, "  (%d columns)", len(f.Columns))
		}
		b.WriteString("\n")
	}
	return b.String()
}
