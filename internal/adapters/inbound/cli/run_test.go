package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylint/polylint/internal/adapters/inbound/cli"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand_AllPassing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"ok": true}`)
	writeFile(t, dir, "b.yaml", "ok: true\n")
	writeFile(t, dir, ".polylintrc", `{"jsonFiles": ["*.json"], "yamlFiles": ["*.yaml"]}`)

	out, err := runCommand(t, "run", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
}

func TestRunCommand_FailureReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{invalid`)
	writeFile(t, dir, ".polylintrc", `{"jsonFiles": ["bad.json"]}`)

	out, err := runCommand(t, "run", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lint failed")
	assert.Contains(t, out, "bad.json")
}

func TestRunCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[]`)
	writeFile(t, dir, ".polylintrc", `{"jsonFiles": ["a.json"]}`)

	out, err := runCommand(t, "run", "--path", dir, "--json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output should be valid JSON")
	assert.Equal(t, true, report["passed"])
}

func TestRunCommand_ExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{}`)
	writeFile(t, dir, "custom.json", `{"jsonFiles": ["a.json"]}`)

	_, err := runCommand(t, "run", "--path", dir, "--config", filepath.Join(dir, "custom.json"))
	assert.NoError(t, err)
}

func TestRunCommand_MissingConfigFails(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "run", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
	assert.NotContains(t, err.Error(), "0 kind(s)")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "polylint")
}
