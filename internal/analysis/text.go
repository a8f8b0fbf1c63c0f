package analysis

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wesleyorama2/tokenbench/internal/output"
	"github.com/wesleyorama2/tokenbench/internal/results"
)

const (
	bannerWidth = 80
	ruleWidth   = 40

	// notAvailable stands in for summary fields missing from overall_stats.
	notAvailable = "N/A"
)

// countPrinter groups thousands in token totals.
var countPrinter = message.NewPrinter(language.English)

// RenderText writes the human-readable report to w.
func RenderText(w io.Writer, r *Report, scheme *output.ColorScheme) error {
	_, err := io.WriteString(w, FormatText(r, scheme))
	return err
}

// FormatText renders the report: one block per metric followed by the
// run summary. Summary fields missing from the document print as N/A.
func FormatText(r *Report, scheme *output.ColorScheme) string {
	if scheme == nil {
		scheme = output.NoColorScheme()
	}

	var buf strings.Builder
	banner := scheme.Rule.Sprint(strings.Repeat("=", bannerWidth))

	buf.WriteString("\n" + banner + "\n")
	buf.WriteString(scheme.Title.Sprint("BENCHMARK RESULTS ANALYSIS") + "\n")
	buf.WriteString(banner + "\n")

	for _, m := range r.Metrics {
		buf.WriteString("\n" + scheme.Metric.Sprint(metricTitle(m.Name)+":") + "\n")
		buf.WriteString(scheme.Rule.Sprint(strings.Repeat("-", ruleWidth)) + "\n")
		for i, p := range r.Percentiles {
			label := fmt.Sprintf("P%2s:", strconv.FormatFloat(p, 'f', -1, 64))
			value := fmt.Sprintf("%12.6f", m.Values[i])
			buf.WriteString("  " + scheme.Label.Sprint(label) + " " + scheme.Value.Sprint(value) + "\n")
		}
	}

	buf.WriteString("\n" + banner + "\n")
	buf.WriteString(scheme.Title.Sprint("SUMMARY STATISTICS") + "\n")
	buf.WriteString(banner + "\n")

	stats := r.OverallStats
	if stats == nil {
		stats = &results.OverallStats{}
	}
	summary := []struct {
		label string
		value string
	}{
		{"Total Requests", formatCount(stats.TotalNumberRequests, false)},
		{"Total Failures", formatCount(stats.TotalNumberFailures, false)},
		{"Total Duration", formatFloat(stats.TotalDurationSeconds, " seconds")},
		{"Requests/Second", formatFloat(stats.RequestsPerSecond, "")},
		{"Total Prompt Tokens", formatCount(stats.TotalPromptTokens, true)},
		{"Total Completion Tokens", formatCount(stats.TotalCompletionTokens, true)},
		{"Total Tokens", formatCount(stats.TotalTokens, true)},
	}
	for _, line := range summary {
		value := line.value
		if value == notAvailable {
			value = scheme.Missing.Sprint(value)
		}
		buf.WriteString(line.label + ": " + value + "\n")
	}

	return buf.String()
}

// metricTitle turns queue_plus_prompt_time into QUEUE PLUS PROMPT TIME.
func metricTitle(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "_", " "))
}

// formatCount prints whole counts as integers and anything else with two
// decimals.
func formatCount(v *float64, grouped bool) string {
	if v == nil {
		return notAvailable
	}

	format := "%.2f"
	var value interface{} = *v
	if *v == math.Trunc(*v) && math.Abs(*v) < 1<<53 {
		format = "%d"
		value = int64(*v)
	}
	if grouped {
		return countPrinter.Sprintf(format, value)
	}
	return fmt.Sprintf(format, value)
}

func formatFloat(v *float64, unit string) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%s", *v, unit)
}
