// Package analysis computes percentile reports over a results document and
// renders them as text, tables and structured encodings.
package analysis

import (
	"errors"

	"github.com/wesleyorama2/tokenbench/internal/results"
)

// ErrNoData is returned when a document has no completions to analyze.
var ErrNoData = errors.New("no completions found in the results document")

// Tracked metric names, in report order.
const (
	MetricQueueTime           = "queue_time"
	MetricPromptTime          = "prompt_time"
	MetricCompletionTime      = "completion_time"
	MetricTotalTime           = "total_time"
	MetricQueuePlusPromptTime = "queue_plus_prompt_time"
	MetricPromptTokens        = "prompt_tokens"
	MetricCompletionTokens    = "completion_tokens"
	MetricTotalTokens         = "total_tokens"
)

// metricSource pulls one sample from a completion. ok is false when the
// source mapping is absent and the completion contributes nothing.
type metricSource func(c results.Completion) (v float64, ok bool)

func fromTimeInfo(get func(t *results.TimeInfo) float64) metricSource {
	return func(c results.Completion) (float64, bool) {
		if c.TimeInfo == nil {
			return 0, false
		}
		return get(c.TimeInfo), true
	}
}

func fromUsage(get func(u *results.Usage) float64) metricSource {
	return func(c results.Completion) (float64, bool) {
		if c.Usage == nil {
			return 0, false
		}
		return get(c.Usage), true
	}
}

var trackedMetrics = []struct {
	name   string
	source metricSource
}{
	{MetricQueueTime, fromTimeInfo(func(t *results.TimeInfo) float64 { return t.QueueTime })},
	{MetricPromptTime, fromTimeInfo(func(t *results.TimeInfo) float64 { return t.PromptTime })},
	{MetricCompletionTime, fromTimeInfo(func(t *results.TimeInfo) float64 { return t.CompletionTime })},
	{MetricTotalTime, fromTimeInfo(func(t *results.TimeInfo) float64 { return t.TotalTime })},
	{MetricQueuePlusPromptTime, fromTimeInfo(func(t *results.TimeInfo) float64 { return t.QueuePlusPrompt() })},
	{MetricPromptTokens, fromUsage(func(u *results.Usage) float64 { return u.PromptTokens })},
	{MetricCompletionTokens, fromUsage(func(u *results.Usage) float64 { return u.CompletionTokens })},
	{MetricTotalTokens, fromUsage(func(u *results.Usage) float64 { return u.TotalTokens })},
}

// MetricNames returns the tracked metric names in report order.
func MetricNames() []string {
	names := make([]string, len(trackedMetrics))
	for i, m := range trackedMetrics {
		names[i] = m.name
	}
	return names
}

// Report is the percentile breakdown of every tracked metric.
type Report struct {
	// Percentiles is the requested percentile list, in caller order.
	Percentiles []float64

	// Metrics has one entry per tracked metric, in MetricNames order.
	Metrics []MetricPercentiles

	// Completions is the number of completion records analyzed.
	Completions int

	// OverallStats is copied from the document; nil when it had none.
	OverallStats *results.OverallStats
}

// MetricPercentiles holds one metric's results.
type MetricPercentiles struct {
	Name string

	// Samples is the length of the metric's series. Zero means every
	// value below is the empty-series default, not measured data.
	Samples int

	// Values is aligned with Report.Percentiles.
	Values []float64
}

// Metric looks up a metric entry by name.
func (r *Report) Metric(name string) (MetricPercentiles, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricPercentiles{}, false
}

// Value returns the value reported for percentile p.
func (r *Report) Value(metric string, p float64) (float64, bool) {
	m, ok := r.Metric(metric)
	if !ok {
		return 0, false
	}
	for i, rp := range r.Percentiles {
		if rp == p {
			return m.Values[i], true
		}
	}
	return 0, false
}

// ComputeReport builds the percentile report for doc.
//
// Each tracked metric's series collects one sample per completion that
// carries the metric's source mapping. Records without it contribute
// nothing; they are not counted as zeros.
func ComputeReport(doc *results.Document, percentiles []float64) (*Report, error) {
	if err := ValidatePercentiles(percentiles); err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Completions) == 0 {
		return nil, ErrNoData
	}

	series := make([][]float64, len(trackedMetrics))
	for _, c := range doc.Completions {
		for i, m := range trackedMetrics {
			if v, ok := m.source(c); ok {
				series[i] = append(series[i], v)
			}
		}
	}

	report := &Report{
		Percentiles:  append([]float64(nil), percentiles...),
		Metrics:      make([]MetricPercentiles, len(trackedMetrics)),
		Completions:  len(doc.Completions),
		OverallStats: doc.OverallStats,
	}
	for i, m := range trackedMetrics {
		report.Metrics[i] = MetricPercentiles{
			Name:    m.name,
			Samples: len(series[i]),
			Values:  Percentiles(series[i], percentiles),
		}
	}

	return report, nil
}
