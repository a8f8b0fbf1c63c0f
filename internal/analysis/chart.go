package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart size in pixels.
const (
	chartWidth  = 1024
	chartHeight = 512
)

// chartedMetrics are the latency metrics drawn by RenderChart. Token
// counts live on a different scale and stay in the table.
var chartedMetrics = []string{
	MetricQueueTime,
	MetricPromptTime,
	MetricCompletionTime,
	MetricTotalTime,
	MetricQueuePlusPromptTime,
}

// errChartRange is returned when the percentiles do not span a range.
var errChartRange = errors.New("a chart needs at least two distinct percentiles")

// RenderChart draws latency against percentile, one line per timing
// metric, as a PNG.
func RenderChart(w io.Writer, r *Report) error {
	order := make([]int, len(r.Percentiles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.Percentiles[order[a]] < r.Percentiles[order[b]]
	})

	xs := make([]float64, len(order))
	for i, idx := range order {
		xs[i] = r.Percentiles[idx]
	}
	if len(xs) < 2 || xs[0] == xs[len(xs)-1] {
		return errChartRange
	}

	var series []chart.Series
	maxY := 0.0
	for i, name := range chartedMetrics {
		m, ok := r.Metric(name)
		if !ok {
			continue
		}
		ys := make([]float64, len(order))
		for j, idx := range order {
			ys[j] = m.Values[idx]
			if ys[j] > maxY {
				maxY = ys[j]
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    metricTitle(name),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.GetDefaultColor(i),
				DotWidth:    3,
				DotColor:    chart.GetDefaultColor(i),
			},
		})
	}
	if maxY == 0 {
		// All series empty; keep a visible axis.
		maxY = 1
	}

	ch := chart.Chart{
		Title:      "Latency by Percentile",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Percentile",
			Range: &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return Label(f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  "seconds",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.05},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// SaveChart writes the PNG chart to path, creating the parent directory
// when needed. Failures wrap ErrOutputWrite.
func SaveChart(path string, r *Report) error {
	var buf bytes.Buffer
	if err := RenderChart(&buf, r); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
