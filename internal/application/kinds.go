package application

import (
	"path/filepath"
	"strings"

	"github.com/polylint/polylint/internal/domain"
)

var extKinds = map[string]domain.Kind{
	".js":   domain.KindES,
	".mjs":  domain.KindES,
	".cjs":  domain.KindES,
	".jsx":  domain.KindES,
	".ts":   domain.KindTS,
	".tsx":  domain.KindTS,
	".sass": domain.KindSass,
	".scss": domain.KindSass,
	".css":  domain.KindSass,
	".html": domain.KindHTML,
	".htm":  domain.KindHTML,
	".json": domain.KindJSON,
	".yaml": domain.KindYAML,
	".yml":  domain.KindYAML,
	".md":   domain.KindMarkdown,
}

// KindForFile maps a file path to the linter kind responsible for it.
func KindForFile(path string) (domain.Kind, bool) {
	kind, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	return kind, ok
}
