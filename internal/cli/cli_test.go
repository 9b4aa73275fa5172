package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pavanmanishd/arena/v2/internal/workload"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScenario(t *testing.T) {
	out, _, err := execute(t, "scenario")
	require.NoError(t, err)
	assert.Equal(t, `pages=0
alloc 42 -> Idx[int](0) = 42, pages=1
alloc "42" -> Idx[string](1024) = "42", pages=2
alloc 42.0 -> Idx[float64](2048) = 42.0, pages=3
alloc 40 -> Idx[int](1), pages=3
alloc 2 -> Idx[int](2), pages=3
`, out)
}

func TestDefaults(t *testing.T) {
	out, _, err := execute(t, "defaults")
	require.NoError(t, err)

	var cfg workload.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, *workload.Default(), cfg)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers: 1
types:
  - kind: int
    count: 1025
`), 0o644))

	out, logs, err := execute(t, "run", "--config", path, "--workers", "2", "--metrics", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, out, "WORKER")
	assert.Contains(t, out, "total pages: 4")
	assert.Contains(t, out, `arena_pages{worker="1"} 2`)
	assert.Contains(t, logs, `msg="opened page"`)
	assert.Contains(t, logs, "reason=overflow")
}

func TestRunBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestRunMissingConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "open workload")
}
