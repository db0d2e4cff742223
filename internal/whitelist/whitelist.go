// Package whitelist protects paths from destructive operations using
// glob patterns loaded from a plain-text file, one pattern per line.
package whitelist

import (
	"os"
	"path/filepath"
	"strings"
)

type Whitelist struct {
	patterns []string
}

func New(patterns []string) *Whitelist {
	expanded := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		expanded = append(expanded, expandHome(pattern))
	}
	return &Whitelist{patterns: expanded}
}

// Load reads patterns from path. A missing file means an empty
// whitelist; blank lines and '#' comments are skipped.
func Load(path string) (*Whitelist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return New(nil), err
	}
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return New(patterns), nil
}

func (list *Whitelist) Protected(path string) bool {
	for _, pattern := range list.patterns {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func expandHome(pattern string) string {
	if pattern == "~" || strings.HasPrefix(pattern, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(pattern, "~"))
		}
	}
	return pattern
}
