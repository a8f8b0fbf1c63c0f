package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/tokenbench/internal/results"
)

func sampleReport(t *testing.T, ps []float64) *Report {
	t.Helper()

	doc := &results.Document{Completions: []results.Completion{
		{TimeInfo: timing(0.1, 0.2, 1, 1.3), Usage: usage(100, 50, 150)},
		{TimeInfo: timing(0.3, 0.2, 3, 3.5), Usage: usage(300, 50, 350)},
	}}
	report, err := ComputeReport(doc, ps)
	require.NoError(t, err)
	return report
}

func TestRenderTable(t *testing.T) {
	rows := RenderTable(sampleReport(t, DefaultPercentiles))

	require.Len(t, rows, 9)
	assert.Equal(t, []string{"Metric", "P50", "P90", "P95", "P99", "P100"}, rows[0])
	for i, name := range MetricNames() {
		assert.Equal(t, name, rows[i+1][0])
		assert.Len(t, rows[i+1], 6)
	}

	// queue_time: [0.1, 0.3]
	assert.Equal(t, []string{"queue_time", "0.2", "0.28", "0.29", "0.298", "0.3"}, rows[1])
	// completion_tokens: [50, 50]
	assert.Equal(t, []string{"completion_tokens", "50.0", "50.0", "50.0", "50.0", "50.0"}, rows[7])
}

func TestRenderTableFollowsCallerOrder(t *testing.T) {
	rows := RenderTable(sampleReport(t, []float64{100, 0, 99.9}))
	assert.Equal(t, []string{"Metric", "P100", "P0", "P99.9"}, rows[0])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, RenderTable(sampleReport(t, DefaultPercentiles))))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Metric,P50,P90,P95,P99,P100", lines[0])
	assert.Equal(t, "total_time,2.4,3.28,3.39,3.478,3.5", lines[4])
}

func TestSaveCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "analysis.csv")

	require.NoError(t, SaveCSV(path, RenderTable(sampleReport(t, DefaultPercentiles))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Metric,P50,P90,P95,P99,P100\n"))
	assert.Equal(t, 9, strings.Count(string(data), "\n"))
}

func TestSaveCSVFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The parent "directory" is a regular file
	err := SaveCSV(filepath.Join(blocker, "out.csv"), [][]string{{"Metric"}})
	assert.ErrorIs(t, err, ErrOutputWrite)
}

func TestFormatCell(t *testing.T) {
	tests := map[float64]string{
		3:        "3.0",
		0:        "0.0",
		0.123456: "0.123456",
		1068:     "1068.0",
		2.5:      "2.5",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatCell(in), "formatCell(%v)", in)
	}
}
