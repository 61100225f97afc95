// Package defaults bundles the fallback per-kind configuration files used
// when a kind requires configuration and no override is given.
package defaults

import (
	"embed"
	"fmt"
)

//go:embed configs
var configFS embed.FS

// Read returns the bundled default configuration for a kind, by file name
// (for example "es.json" or "style.json").
func Read(name string) ([]byte, error) {
	data, err := configFS.ReadFile("configs/" + name)
	if err != nil {
		return nil, fmt.Errorf("no bundled default %q: %w", name, err)
	}
	return data, nil
}
