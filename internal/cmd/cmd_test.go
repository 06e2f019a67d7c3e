// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teampath/parallel"
)

// isolate hides user config files and TEAMPATH environment from a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, k := range []string{"TEAMPATH_WORKERS", "OMP_NUM_THREADS", "TEAMPATH_SOURCE", "TEAMPATH_GRAPH", "TEAMPATH_TRACE"} {
		t.Setenv(k, "")
	}
}

// executeCommand runs a fresh command tree with args and returns captured output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)

	root := NewRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()

	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()
	require.Equal(t, "teampath", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "demo", "plan"} {
		require.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRun_Demo(t *testing.T) {
	out, err := executeCommand(t, "run", "--workers", "4", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "Distance matrix:")
	require.Contains(t, out, "Minimum distances from node 0:")
	require.Contains(t, out, "0 35 15 45 49 41")
	require.Contains(t, out, "workers=4 rounds=5")
	require.Contains(t, out, "verified against sequential reference")
	require.Contains(t, out, "Normal end of execution.")
	require.NotContains(t, out, "Connecting node")
}

func TestRun_Trace(t *testing.T) {
	out, err := executeCommand(t, "demo", "-w", "3", "--trace", "--invariant-checks")
	require.NoError(t, err)
	require.Contains(t, out, "Parallel region begins with 3 workers.")
	require.Contains(t, out, "First=0  Last=1")
	require.Contains(t, out, "First=4  Last=5")
	require.Contains(t, out, "Connecting node 2")
	require.Contains(t, out, "Connecting node 4")
	require.Contains(t, out, "Exiting parallel region.")
}

func TestRun_GraphFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")
	src := "nodes: 4\nsource: 3\ndirected: true\nedges:\n  - {from: 3, to: 0, weight: 2}\n  - {from: 0, to: 1, weight: 5}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := executeCommand(t, "run", "--graph", path, "-w", "2", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "Minimum distances from node 3:")
	require.Contains(t, out, "2 7 Inf 0")

	out, err = executeCommand(t, "run", "--graph", path, "-w", "2", "--source", "0", "--early-exit")
	require.NoError(t, err)
	require.Contains(t, out, "0 5 Inf Inf")
	require.Contains(t, out, "rounds=2")
}

func TestRun_Generate(t *testing.T) {
	out, err := executeCommand(t, "run", "--generate", "path:4", "--max-weight", "1", "-w", "2", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "0 1 2 3")

	out, err = executeCommand(t, "run", "--generate", "random:40:0.1", "--seed", "9", "-w", "3", "--verify", "--invariant-checks")
	require.NoError(t, err)
	require.Contains(t, out, "verified against sequential reference")

	_, err = executeCommand(t, "run", "--generate", "torus:4")
	require.Error(t, err)

	_, err = executeCommand(t, "run", "--generate", "path:4", "--graph", "g.yaml")
	require.ErrorContains(t, err, "cannot be combined with graph")
}

func TestRun_GenerateDirected(t *testing.T) {
	out, err := executeCommand(t, "run", "--generate", "path:4", "--max-weight", "1", "--source", "3", "-w", "2", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "3 2 1 0")

	out, err = executeCommand(t, "run", "--generate", "path:4", "--directed", "--max-weight", "1", "--source", "3", "-w", "2", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "Inf Inf Inf 0", "one-way edges never lead back")
	require.Contains(t, out, "connected=1/4")
}

func TestRun_MaxWeightRejectsInf(t *testing.T) {
	_, err := executeCommand(t, "run", "--generate", "path:4", "--max-weight", strconv.FormatInt(math.MaxInt64, 10))
	require.ErrorContains(t, err, "max_weight")
}

func TestRun_LogsWarningsAndFailures(t *testing.T) {
	dir := t.TempDir()

	warnLog := filepath.Join(dir, "warn.log")
	_, err := executeCommand(t, "demo", "-w", "8", "--log-file", warnLog, "--log-format", "json")
	require.NoError(t, err)
	data, err := os.ReadFile(warnLog)
	require.NoError(t, err)
	require.Contains(t, string(data), `"level":"WARN"`)
	require.Contains(t, string(data), "more workers than nodes")
	require.Contains(t, string(data), `"command":"demo"`)

	errLog := filepath.Join(dir, "err.log")
	_, err = executeCommand(t, "demo", "--source", "9", "--log-file", errLog, "--log-format", "json")
	require.ErrorIs(t, err, parallel.ErrBadSource)
	data, err = os.ReadFile(errLog)
	require.NoError(t, err)
	require.Contains(t, string(data), `"level":"ERROR"`)
	require.Contains(t, string(data), `"msg":"run failed"`)
}

func TestRun_EnvironmentWorkers(t *testing.T) {
	isolate(t)
	t.Setenv("OMP_NUM_THREADS", "2")
	root := NewRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"demo"})
	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "workers=2")
}

func TestRun_Errors(t *testing.T) {
	_, err := executeCommand(t, "run", "--source", "9")
	require.Error(t, err)

	_, err = executeCommand(t, "run", "--graph", "absent.yaml")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = executeCommand(t, "run", "--log-level", "loud")
	require.ErrorContains(t, err, "logging.level")

	_, err = executeCommand(t, "run", "extra")
	require.Error(t, err)
}

func TestDemo_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	_, err := executeCommand(t, "demo", "--save", path, "-w", "1")
	require.NoError(t, err)

	out, err := executeCommand(t, "run", "--graph", path, "-w", "2")
	require.NoError(t, err)
	require.Contains(t, out, "0 35 15 45 49 41")
}

func TestPlan(t *testing.T) {
	out, err := executeCommand(t, "plan", "--nodes", "6", "--workers", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Partition of 6 nodes over 4 workers:")
	require.Contains(t, out, "First=1  Last=2")

	out, err = executeCommand(t, "plan", "-n", "2", "-w", "3")
	require.NoError(t, err)
	require.Contains(t, out, "(idle)")

	_, err = executeCommand(t, "plan", "-n", "0", "-w", "3")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teampath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\ntrace: true\n"), 0o644))

	out, err := executeCommand(t, "demo", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "workers=3")
	require.Contains(t, out, "Connecting node")

	out, err = executeCommand(t, "demo", "--config", path, "--workers", "5")
	require.NoError(t, err)
	require.Contains(t, out, "workers=5", "flags win over the config file")
}

func TestBindFlags_IgnoresUnknown(t *testing.T) {
	c := &cobra.Command{Use: "x"}
	c.Flags().Int("workers", 0, "")
	require.NoError(t, bindFlags(viper.New(), c.Flags()))
}
