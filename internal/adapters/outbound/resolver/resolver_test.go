package resolver_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylint/polylint/internal/adapters/outbound/resolver"
	"github.com/polylint/polylint/internal/domain"
)

func TestFile_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"target": "es2020"}`), 0644))

	opts, err := resolver.NewFile("es.json").Read(path)
	require.NoError(t, err)
	assert.Equal(t, "es2020", opts["target"])
}

func TestFile_MissingExplicitPathIsConfigUnavailable(t *testing.T) {
	_, err := resolver.NewFile("es.json").Read("/missing/path.json")

	var unavailable *domain.ConfigUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "/missing/path.json", unavailable.Path)
}

func TestFile_MalformedExplicitPathIsConfigUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := resolver.NewFile("es.json").Read(path)

	var unavailable *domain.ConfigUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestFile_EmptyPathFallsBackToBundledDefault(t *testing.T) {
	opts, err := resolver.NewFile("es.json").Read("")
	require.NoError(t, err)
	assert.Equal(t, "esnext", opts["target"])
}

func TestFile_UnknownBundledDefaultIsConfigUnavailable(t *testing.T) {
	_, err := resolver.NewFile("nonexistent.json").Read("")

	var unavailable *domain.ConfigUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Path, "builtin:")
}

func TestNull_NeverFailsAndNeverTouchesDisk(t *testing.T) {
	opts, err := resolver.NewNull().Read("/this/path/is/ignored.json")
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
