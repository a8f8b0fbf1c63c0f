package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/tokenbench/internal/cli"
)

func runMain(t *testing.T, args ...string) int {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer devNull.Close()

	cli.RootCmd.SetOut(devNull)
	cli.RootCmd.SetErr(devNull)
	cli.RootCmd.SetArgs(args)
	return Main()
}

func TestMainAnalyze(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"completions": [{"api_time_info": {"queue_time": 1, "prompt_time": 2, "completion_time": 0, "total_time": 3}}]}`), 0644))
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"completions": []}`), 0644))

	assert.Equal(t, 0, runMain(t, "analyze", good))
	assert.Equal(t, 1, runMain(t, "analyze", empty))
	assert.Equal(t, 1, runMain(t, "analyze", filepath.Join(dir, "missing.json")))
}
