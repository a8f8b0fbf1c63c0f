package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/tokenbench/internal/convert"
)

func TestConvertAllDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "benchmark_1K.jsonl", datasetFixture)
	writeFile(t, dir, "benchmark_16K.jsonl", `{"text": "long", "token_length": 16000}`+"\n")

	stdout, _, err := runCLI(t, "convert-all", "--datasets-dir", dir)
	require.ErrorIs(t, err, convert.ErrBatchFailed)

	assert.Contains(t, stdout, "Converting 3 dataset(s)")
	assert.Contains(t, stdout, "(seed 42)")
	assert.Contains(t, stdout, "✓ Converted 3 entries (1 skipped)")
	assert.Contains(t, stdout, "Warning: "+filepath.Join(dir, "benchmark_8K.jsonl")+" not found, skipping...")
	assert.Contains(t, stdout, "Conversion Summary:")
	assert.Contains(t, stdout, "Successfully converted: 2")
	assert.Contains(t, stdout, "Failed: 1")

	assert.FileExists(t, filepath.Join(dir, "benchmark_1K_converted.jsonl"))
	assert.FileExists(t, filepath.Join(dir, "benchmark_16K_converted.jsonl"))
	assert.NoFileExists(t, filepath.Join(dir, "benchmark_8K_converted.jsonl"))
}

func TestConvertAllManifest(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	writeFile(t, data, "small.jsonl", datasetFixture)
	manifest := writeFile(t, dir, "batch.yaml", "datasetsDir: "+data+"\nseed: 7\nfiles:\n  - small.jsonl\n")

	stdout, _, err := runCLI(t, "convert-all", "--config", manifest)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Converting 1 dataset(s)")
	assert.Contains(t, stdout, "(seed 7)")
	assert.Contains(t, stdout, "Failed: 0")
	assert.FileExists(t, filepath.Join(data, "small_converted.jsonl"))
}

func TestConvertAllFlagsOverrideManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.jsonl", datasetFixture)
	manifest := writeFile(t, dir, "batch.json", `{"datasetsDir": "elsewhere", "seed": 7, "files": ["small.jsonl"]}`)

	stdout, _, err := runCLI(t, "convert-all", "-c", manifest, "--datasets-dir", dir, "--seed", "99")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(seed 99)")

	records := readRecords(t, filepath.Join(dir, "small_converted.jsonl"))
	assert.Len(t, records, 3)
}

func TestConvertAllMatchesConvertWithSameSeed(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "set.jsonl", datasetFixture)
	manifest := writeFile(t, dir, "batch.yaml", "files: [set.jsonl]\n")

	_, _, err := runCLI(t, "convert-all", "--config", manifest, "--datasets-dir", dir, "--seed", "5")
	require.NoError(t, err)
	single := filepath.Join(dir, "single.jsonl")
	_, _, err = runCLI(t, "convert", in, single, "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, readRecords(t, single), readRecords(t, filepath.Join(dir, "set_converted.jsonl")))
}

func TestConvertAllInvalidManifest(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "Missing manifest",
			args:    []string{"convert-all", "--config", filepath.Join(dir, "none.yaml")},
			message: "config file not found",
		},
		{
			name:    "Wrong extension",
			args:    []string{"convert-all", "--config", writeFile(t, dir, "bad.yaml", "files: [data.csv]\n")},
			message: "not a .jsonl file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestConvertAllRejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, "convert-all", "extra")
	assert.Error(t, err)
}
