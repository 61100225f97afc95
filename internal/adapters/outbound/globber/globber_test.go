package globber_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylint/polylint/internal/adapters/outbound/globber"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestExpand_PatternOrderIsPreserved(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.json")
	touch(t, dir, "b.yaml")

	files := globber.New(dir).Expand([]string{"*.yaml", "*.json"})

	require.Len(t, files, 2)
	assert.Contains(t, files[0], "b.yaml")
	assert.Contains(t, files[1], "a.json")
}

func TestExpand_OverlappingPatternsAreNotDeduplicated(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "dup.json")

	files := globber.New(dir).Expand([]string{"*.json", "dup.json"})

	assert.Len(t, files, 2)
}

func TestExpand_DotfilesMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".hidden.json")

	files := globber.New(dir).Expand([]string{"*.json"})

	require.Len(t, files, 1)
	assert.Contains(t, files[0], ".hidden.json")
}

func TestExpand_InvalidPatternContributesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.json")

	files := globber.New(dir).Expand([]string{"[", "*.json"})

	assert.Len(t, files, 1, "a bad pattern is the same as a pattern with no matches")
}

func TestExpand_DirectoriesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))
	touch(t, dir, "real.json")

	files := globber.New(dir).Expand([]string{"*.json"})

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "real.json")
}

func TestExpand_AbsolutePatternsBypassBaseDir(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	touch(t, other, "out.json")

	files := globber.New(dir).Expand([]string{filepath.Join(other, "*.json")})

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "out.json")
}
