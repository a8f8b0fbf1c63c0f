package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/tokenbench/internal/results"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, sampleReport(t, DefaultPercentiles)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderChartUnorderedPercentiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, sampleReport(t, []float64{99, 50, 90})))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderChartWithoutTimings(t *testing.T) {
	doc := &results.Document{Completions: []results.Completion{{Usage: usage(1, 2, 3)}}}
	report, err := ComputeReport(doc, DefaultPercentiles)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, report))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderChartNeedsRange(t *testing.T) {
	for _, ps := range [][]float64{{50}, {90, 90}} {
		var buf bytes.Buffer
		err := RenderChart(&buf, sampleReport(t, ps))
		assert.ErrorIs(t, err, errChartRange)
		assert.Zero(t, buf.Len())
	}
}

func TestSaveChart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts", "latency.png")

	require.NoError(t, SaveChart(path, sampleReport(t, DefaultPercentiles)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	err = SaveChart(filepath.Join(dir, "single.png"), sampleReport(t, []float64{50}))
	assert.ErrorIs(t, err, ErrOutputWrite)
	_, statErr := os.Stat(filepath.Join(dir, "single.png"))
	assert.True(t, os.IsNotExist(statErr))
}
