package perf

import (
	"io"

	"github.com/wesleyorama2/tokenbench/internal/analysis"
	"github.com/wesleyorama2/tokenbench/internal/config"
	"github.com/wesleyorama2/tokenbench/internal/convert"
	"github.com/wesleyorama2/tokenbench/internal/output"
	"github.com/wesleyorama2/tokenbench/internal/results"
)

// Report is the percentile summary of one results file.
type Report = analysis.Report

// MetricPercentiles holds the values of one metric in a Report.
type MetricPercentiles = analysis.MetricPercentiles

// Document is a parsed results file.
type Document = results.Document

// ConversionStats counts converted and skipped records.
type ConversionStats = convert.Stats

// BatchConfig selects the datasets of a batch conversion.
type BatchConfig = config.BatchConfig

// BatchResult summarizes a batch conversion.
type BatchResult = convert.BatchResult

// Errors callers can test for with errors.Is.
var (
	ErrInputNotFound     = results.ErrInputNotFound
	ErrMalformedInput    = results.ErrMalformedInput
	ErrNoData            = analysis.ErrNoData
	ErrInvalidPercentile = analysis.ErrInvalidPercentile
	ErrOutputWrite       = analysis.ErrOutputWrite
	ErrBatchFailed       = convert.ErrBatchFailed
)

// DefaultPercentiles returns P50, P90, P95, P99 and P100.
func DefaultPercentiles() []float64 {
	return append([]float64(nil), analysis.DefaultPercentiles...)
}

// Metrics returns the tracked metric names in report order.
func Metrics() []string {
	return analysis.MetricNames()
}

// Analyze builds a report from a parsed document. With no percentiles the
// defaults are used.
func Analyze(doc *Document, percentiles ...float64) (*Report, error) {
	if len(percentiles) == 0 {
		percentiles = analysis.DefaultPercentiles
	}
	return analysis.ComputeReport(doc, percentiles)
}

// AnalyzeFile loads a results file and builds its report.
func AnalyzeFile(path string, percentiles ...float64) (*Report, error) {
	doc, err := results.Load(path)
	if err != nil {
		return nil, err
	}
	return Analyze(doc, percentiles...)
}

// WriteText writes the uncolored text report.
func WriteText(w io.Writer, r *Report) error {
	return analysis.RenderText(w, r, output.NoColorScheme())
}

// WriteCSV writes the percentile table as CSV.
func WriteCSV(w io.Writer, r *Report) error {
	return analysis.WriteCSV(w, analysis.RenderTable(r))
}

// ConvertDataset converts one raw dataset file. Skipped lines are counted
// but not reported; use the CLI to see them.
func ConvertDataset(inPath, outPath string, seed *int64) (ConversionStats, error) {
	return convert.ConvertFile(inPath, outPath, convert.NewSampler(seed), nil)
}

// ConvertBatch converts every file of cfg. A nil cfg converts the default
// datasets. The returned error wraps ErrBatchFailed when any file failed.
func ConvertBatch(cfg *BatchConfig) (BatchResult, error) {
	if cfg == nil {
		cfg = config.DefaultBatchConfig()
	}
	result := convert.ConvertAll(cfg, convert.BatchHooks{})
	return result, result.Err()
}
