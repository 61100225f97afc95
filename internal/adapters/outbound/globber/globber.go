// Package globber expands glob patterns against the working directory.
package globber

import (
	"os"
	"path/filepath"
)

// Expander implements domain.GlobExpander on top of filepath.Glob.
type Expander struct {
	// BaseDir is the directory relative patterns resolve against.
	// Empty means the process working directory.
	BaseDir string
}

func New(baseDir string) *Expander {
	return &Expander{BaseDir: baseDir}
}

// Expand concatenates the matches of every pattern in pattern order.
// Matches of overlapping patterns are deliberately not deduplicated.
// An invalid pattern is indistinguishable from a pattern with no matches:
// both contribute nothing. Directories are skipped; dotfiles match.
func (e *Expander) Expand(patterns []string) []string {
	var files []string
	for _, pattern := range patterns {
		full := pattern
		if e.BaseDir != "" && !filepath.IsAbs(pattern) {
			full = filepath.Join(e.BaseDir, pattern)
		}

		matches, err := filepath.Glob(full)
		if err != nil {
			continue // bad pattern, empty contribution
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, match)
		}
	}
	return files
}
