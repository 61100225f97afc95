// Package resolver provides the configuration resolution strategies used by
// the per-kind linters.
package resolver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/polylint/polylint/internal/defaults"
	"github.com/polylint/polylint/internal/domain"
)

// File resolves options from a JSON file at an explicit path, falling back
// to the bundled default for its kind when no path is given.
type File struct {
	defaultName string // bundled default file name, e.g. "es.json"
}

func NewFile(defaultName string) *File {
	return &File{defaultName: defaultName}
}

// Read parses the config file at explicitPath, or the bundled default when
// explicitPath is empty. A missing, unreadable, or malformed file yields
// ConfigUnavailable.
func (f *File) Read(explicitPath string) (domain.Options, error) {
	var (
		data []byte
		err  error
		path = explicitPath
	)

	if explicitPath != "" {
		data, err = os.ReadFile(explicitPath)
	} else {
		path = "builtin:" + f.defaultName
		data, err = defaults.Read(f.defaultName)
	}
	if err != nil {
		return nil, &domain.ConfigUnavailableError{Path: path, Err: err}
	}

	var opts domain.Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, &domain.ConfigUnavailableError{
			Path: path,
			Err:  fmt.Errorf("parsing: %w", err),
		}
	}

	return opts, nil
}
