package analysis

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wesleyorama2/tokenbench/internal/results"
)

// htmlData is the view handed to htmlTemplate.
type htmlData struct {
	Source  string
	Labels  []string
	Metrics []htmlMetric
	Summary []htmlSummaryItem
}

type htmlMetric struct {
	Name    string
	Title   string
	Samples int
	Values  []string
}

type htmlSummaryItem struct {
	Label string
	Value string
}

// GenerateHTMLString renders the report as a standalone HTML page. source
// names the results file in the page title and may be empty.
func GenerateHTMLString(r *Report, source string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := htmlData{Source: source}
	for _, p := range r.Percentiles {
		data.Labels = append(data.Labels, Label(p))
	}
	for _, m := range r.Metrics {
		hm := htmlMetric{Name: m.Name, Title: metricTitle(m.Name), Samples: m.Samples}
		for _, v := range m.Values {
			hm.Values = append(hm.Values, strconv.FormatFloat(v, 'f', 6, 64))
		}
		data.Metrics = append(data.Metrics, hm)
	}
	data.Summary = summaryItems(r.OverallStats)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GenerateHTML writes the HTML report to path, creating the parent
// directory when needed. Failures wrap ErrOutputWrite.
func GenerateHTML(r *Report, source, path string) error {
	html, err := GenerateHTMLString(r, source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	return nil
}

func summaryItems(stats *results.OverallStats) []htmlSummaryItem {
	if stats == nil {
		stats = &results.OverallStats{}
	}
	return []htmlSummaryItem{
		{"Total Requests", formatCount(stats.TotalNumberRequests, false)},
		{"Total Failures", formatCount(stats.TotalNumberFailures, false)},
		{"Total Duration", formatFloat(stats.TotalDurationSeconds, " seconds")},
		{"Requests/Second", formatFloat(stats.RequestsPerSecond, "")},
		{"Total Prompt Tokens", formatCount(stats.TotalPromptTokens, true)},
		{"Total Completion Tokens", formatCount(stats.TotalCompletionTokens, true)},
		{"Total Tokens", formatCount(stats.TotalTokens, true)},
	}
}
