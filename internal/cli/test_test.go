package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: passing
description: "Scripts that match"
cases:
  - name: count
    bytecode:
      step: [[V], [count]]
    expect: "g.V().count()"
`

const failingScenario = `
name: failing
description: "Script that does not match"
cases:
  - name: count
    bytecode:
      step: [[E], [count]]
    expect: "g.V().count()"
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeTest(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := executeTest(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestTestCommandNonExistentPath(t *testing.T) {
	_, err := executeTest(t, "text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario path not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyDir(t *testing.T) {
	out, err := executeTest(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandEmptyDirJSON(t *testing.T) {
	out, err := executeTest(t, "json", t.TempDir())
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
}

func TestTestCommandPassing(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "passing.yaml", passingScenario)

	out, err := executeTest(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ passing")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailing(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "passing.yaml", passingScenario)
	writeTestFile(t, dir, "failing.yaml", failingScenario)

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ failing")
	assert.Contains(t, out, "script mismatch")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestTestCommandFailingJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "failing.yaml", failingScenario)

	out, err := executeTest(t, "json", path)
	require.Error(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "error", response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "E_TEST_FAILED", response.Error.Code)
}

func TestTestCommandGoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "passing.yaml", passingScenario)

	out, err := executeTest(t, "text", path, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "passing.golden"))
	require.NoError(t, err)
	assert.Equal(t, "count: g.V().count()\n", string(golden))

	_, err = executeTest(t, "text", path)
	require.NoError(t, err)

	writeTestFile(t, dir, "golden/passing.golden", "count: g.E()\n")
	out, err = executeTest(t, "text", path)
	require.Error(t, err)
	assert.Contains(t, out, "Golden file mismatch")
}

func TestTestCommandLoadError(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "broken.yaml", "name: broken\n")

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Contains(t, out, "failed to load scenario")
}

func TestFindScenarioFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeTestFile(t, tmpDir, "test1.yaml", "")
	writeTestFile(t, tmpDir, "test2.yml", "")
	writeTestFile(t, tmpDir, "ignore.txt", "")
	writeTestFile(t, tmpDir, "golden/test1.yaml", "")

	files, err := findScenarioFiles(tmpDir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindScenarioFilesWithFilter(t *testing.T) {
	tmpDir := t.TempDir()

	writeTestFile(t, tmpDir, "modern-names.yaml", "")
	writeTestFile(t, tmpDir, "modern-paths.yaml", "")
	writeTestFile(t, tmpDir, "crew.yaml", "")

	files, err := findScenarioFiles(tmpDir, "modern-*")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindScenarioFilesSingleFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "one.yaml", "")

	files, err := findScenarioFiles(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestGoldenFilePath(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"/path/to/scenario.yaml", "/path/to/golden/scenario.golden"},
		{"/path/to/scenario.yml", "/path/to/golden/scenario.golden"},
		{"scenarios/test.yaml", "scenarios/golden/test.golden"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, goldenFilePath(tc.input))
	}
}
