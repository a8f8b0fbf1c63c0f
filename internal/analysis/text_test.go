package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/tokenbench/internal/output"
	"github.com/wesleyorama2/tokenbench/internal/results"
)

func float64Ptr(v float64) *float64 { return &v }

func textReport(t *testing.T, stats *results.OverallStats) string {
	t.Helper()

	doc := &results.Document{
		Completions: []results.Completion{
			{TimeInfo: timing(0.01, 0.2, 1.1, 1.31), Usage: usage(812, 256, 1068)},
			{TimeInfo: timing(0.03, 0.4, 1.5, 1.93), Usage: usage(812, 256, 1068)},
		},
		OverallStats: stats,
	}
	report, err := ComputeReport(doc, DefaultPercentiles)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, report, output.NoColorScheme()))
	return buf.String()
}

func TestRenderTextMetricBlocks(t *testing.T) {
	text := textReport(t, nil)

	assert.Contains(t, text, "BENCHMARK RESULTS ANALYSIS")
	assert.Contains(t, text, strings.Repeat("=", 80))

	expectedTitles := []string{
		"QUEUE TIME:", "PROMPT TIME:", "COMPLETION TIME:", "TOTAL TIME:",
		"QUEUE PLUS PROMPT TIME:", "PROMPT TOKENS:", "COMPLETION TOKENS:", "TOTAL TOKENS:",
	}
	last := -1
	for _, title := range expectedTitles {
		idx := strings.Index(text, "\n"+title+"\n")
		require.NotEqual(t, -1, idx, "missing block %q", title)
		assert.Greater(t, idx, last, "block %q out of order", title)
		last = idx
	}

	// Right-aligned, 6 decimals
	assert.Contains(t, text, "  P50:     0.020000\n")
	assert.Contains(t, text, "  P100:     1.930000\n")
	assert.Contains(t, text, "  P99:  1068.000000\n")
}

func TestRenderTextSummary(t *testing.T) {
	text := textReport(t, &results.OverallStats{
		TotalNumberRequests:   float64Ptr(2),
		TotalNumberFailures:   float64Ptr(0),
		TotalDurationSeconds:  float64Ptr(12.456),
		RequestsPerSecond:     float64Ptr(0.1605),
		TotalPromptTokens:     float64Ptr(1624),
		TotalCompletionTokens: float64Ptr(512),
		TotalTokens:           float64Ptr(1234567),
	})

	assert.Contains(t, text, "SUMMARY STATISTICS")
	for _, line := range []string{
		"Total Requests: 2\n",
		"Total Failures: 0\n",
		"Total Duration: 12.46 seconds\n",
		"Requests/Second: 0.16\n",
		"Total Prompt Tokens: 1,624\n",
		"Total Completion Tokens: 512\n",
		"Total Tokens: 1,234,567\n",
	} {
		assert.Contains(t, text, line)
	}
}

func TestRenderTextMissingOverallStats(t *testing.T) {
	text := textReport(t, nil)

	for _, label := range []string{
		"Total Requests", "Total Failures", "Total Duration", "Requests/Second",
		"Total Prompt Tokens", "Total Completion Tokens", "Total Tokens",
	} {
		assert.Contains(t, text, label+": N/A\n")
	}
}

func TestRenderTextPartialOverallStats(t *testing.T) {
	text := textReport(t, &results.OverallStats{TotalNumberRequests: float64Ptr(2)})

	assert.Contains(t, text, "Total Requests: 2\n")
	assert.Contains(t, text, "Total Failures: N/A\n")
	assert.Contains(t, text, "Total Tokens: N/A\n")
}

func TestFormatTextNilSchemeIsPlain(t *testing.T) {
	report, err := ComputeReport(&results.Document{Completions: []results.Completion{{}}}, []float64{50})
	require.NoError(t, err)

	text := FormatText(report, nil)
	assert.NotContains(t, text, "\x1b[")
	assert.Contains(t, text, "  P50:     0.000000\n")
}

func TestRenderTextSummaryFloatCounts(t *testing.T) {
	text := textReport(t, &results.OverallStats{
		TotalNumberRequests: float64Ptr(1e3),
		TotalPromptTokens:   float64Ptr(12.5),
		TotalTokens:         float64Ptr(1500.0),
	})

	assert.Contains(t, text, "Total Requests: 1000\n")
	assert.Contains(t, text, "Total Prompt Tokens: 12.50\n")
	assert.Contains(t, text, "Total Tokens: 1,500\n")
}
