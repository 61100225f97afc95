// Package config loads the top-level run configuration that names which
// glob sets apply to which linter kind.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-git/v5"
	"gopkg.in/yaml.v3"

	"github.com/polylint/polylint/internal/domain"
)

// namespaceKey is the optional wrapping key inside config documents and the
// manifest field consulted in package.json.
const namespaceKey = "polylint"

// conventional file names, checked in order in each searched directory.
var conventionalNames = []string{
	".polylintrc",
	".polylintrc.yaml",
	"polylint.toml",
	"package.json",
}

// Loader implements domain.ConfigLoader. With no explicit path it walks
// from the project directory up to the enclosing git repository root (or
// the filesystem root when the project is not under git), taking the first
// conventional file that yields options.
type Loader struct{}

func New() *Loader { return &Loader{} }

func (l *Loader) Load(projectPath, explicitPath string) (domain.RunOptions, error) {
	if explicitPath != "" {
		opts, err := parseFile(explicitPath)
		if errors.Is(err, errNoManifestField) {
			err = &domain.ConfigUnavailableError{Path: explicitPath, Err: err}
		}
		if err != nil {
			return domain.RunOptions{}, err
		}
		return opts, nil
	}

	dir, err := filepath.Abs(projectPath)
	if err != nil {
		return domain.RunOptions{}, &domain.ConfigUnavailableError{Path: projectPath, Err: err}
	}

	stop := searchBoundary(dir)
	for {
		for _, name := range conventionalNames {
			candidate := filepath.Join(dir, name)
			if _, statErr := os.Stat(candidate); statErr != nil {
				continue
			}
			opts, parseErr := parseFile(candidate)
			if parseErr != nil {
				if name == "package.json" && errors.Is(parseErr, errNoManifestField) {
					continue // manifest without a polylint field is not a config
				}
				return domain.RunOptions{}, parseErr
			}
			return opts, nil
		}

		if dir == stop {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return domain.RunOptions{}, &domain.ConfigUnavailableError{
		Path: projectPath,
		Err:  fmt.Errorf("no %s found", strings.Join(conventionalNames, ", ")),
	}
}

// searchBoundary returns the directory at which the ancestor walk stops:
// the git worktree root when one encloses dir, else the filesystem root.
func searchBoundary(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return string(filepath.Separator)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return string(filepath.Separator)
	}
	return wt.Filesystem.Root()
}

var errNoManifestField = errors.New("manifest has no polylint field")

// parseFile reads and parses one candidate config file. The parser is
// chosen by file name; the namespacing key is unwrapped exactly once here,
// never inside the core.
func parseFile(path string) (domain.RunOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RunOptions{}, &domain.ConfigUnavailableError{Path: path, Err: err}
	}

	var raw map[string]any
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		err = yaml.Unmarshal(data, &raw)
	case strings.HasSuffix(path, ".toml"):
		err = toml.Unmarshal(data, &raw)
	default: // .polylintrc, package.json, anything else: JSON
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return domain.RunOptions{}, &domain.ConfigUnavailableError{
			Path: path,
			Err:  fmt.Errorf("parsing: %w", err),
		}
	}

	isManifest := filepath.Base(path) == "package.json"
	if wrapped, ok := raw[namespaceKey]; ok {
		inner, ok := wrapped.(map[string]any)
		if !ok {
			return domain.RunOptions{}, &domain.ConfigUnavailableError{
				Path: path,
				Err:  fmt.Errorf("%s key must hold an object", namespaceKey),
			}
		}
		raw = inner
	} else if isManifest {
		return domain.RunOptions{}, errNoManifestField
	}

	return toRunOptions(raw, path)
}

// toRunOptions converts the unwrapped document into typed run options via a
// JSON round trip, which normalizes yaml/toml value types in one place.
func toRunOptions(raw map[string]any, path string) (domain.RunOptions, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return domain.RunOptions{}, &domain.ConfigUnavailableError{Path: path, Err: err}
	}
	var opts domain.RunOptions
	if err := json.Unmarshal(buf, &opts); err != nil {
		return domain.RunOptions{}, &domain.ConfigUnavailableError{
			Path: path,
			Err:  fmt.Errorf("invalid option types: %w", err),
		}
	}
	return opts, nil
}
