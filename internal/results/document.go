// Package results loads the results document written by the load generator.
//
// A results document is a JSON object with a "completions" array, one entry
// per request, and an optional "overall_stats" object:
//
//	{
//	  "overall_stats": {"total_number_requests": 2, "requests_per_second": 1.5, ...},
//	  "completions": [
//	    {
//	      "api_time_info": {"queue_time": 0.01, "prompt_time": 0.2, "completion_time": 1.1, "total_time": 1.31},
//	      "api_usage": {"prompt_tokens": 812, "completion_tokens": 256, "total_tokens": 1068}
//	    }
//	  ]
//	}
//
// The file may be zstd-compressed (results.json.zst).
//
// Nested mappings are optional. A nil pointer means the mapping was absent;
// a zero value inside a present mapping means the field was absent or zero.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/wesleyorama2/tokenbench/pkg/zstdfile"
)

var (
	// ErrInputNotFound is returned when the results file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrUnreadableInput is returned when the results file exists but cannot be read.
	ErrUnreadableInput = errors.New("input file unreadable")

	// ErrMalformedInput is returned when the content is not a valid results document.
	ErrMalformedInput = errors.New("malformed results document")
)

// Document is a parsed results file.
type Document struct {
	Completions  []Completion  `json:"completions"`
	OverallStats *OverallStats `json:"overall_stats,omitempty"`
}

// Completion is one observed request/response pair.
type Completion struct {
	TimeInfo *TimeInfo `json:"api_time_info,omitempty"`
	Usage    *Usage    `json:"api_usage,omitempty"`
}

// TimeInfo holds server-reported timings in seconds.
type TimeInfo struct {
	QueueTime      float64 `json:"queue_time"`
	PromptTime     float64 `json:"prompt_time"`
	CompletionTime float64 `json:"completion_time"`
	TotalTime      float64 `json:"total_time"`
}

// QueuePlusPrompt is the time spent before the first completion token.
func (t TimeInfo) QueuePlusPrompt() float64 {
	return t.QueueTime + t.PromptTime
}

// Usage holds token counts for one completion. Counts are integers on the
// wire; they decode into float64 so that 812 and 812.0 are both accepted.
type Usage struct {
	PromptTokens     float64 `json:"prompt_tokens"`
	CompletionTokens float64 `json:"completion_tokens"`
	TotalTokens      float64 `json:"total_tokens"`
}

// OverallStats is the run-level summary. Every field is optional.
// Counts are integers on the wire but decode into float64, so 1500.0 and
// 1e3 are accepted like the per-completion token counts.
type OverallStats struct {
	TotalNumberRequests   *float64 `json:"total_number_requests,omitempty" yaml:"total_number_requests,omitempty"`
	TotalNumberFailures   *float64 `json:"total_number_failures,omitempty" yaml:"total_number_failures,omitempty"`
	TotalDurationSeconds  *float64 `json:"total_duration_seconds,omitempty" yaml:"total_duration_seconds,omitempty"`
	RequestsPerSecond     *float64 `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty"`
	TotalPromptTokens     *float64 `json:"total_prompt_tokens,omitempty" yaml:"total_prompt_tokens,omitempty"`
	TotalCompletionTokens *float64 `json:"total_completion_tokens,omitempty" yaml:"total_completion_tokens,omitempty"`
	TotalTokens           *float64 `json:"total_tokens,omitempty" yaml:"total_tokens,omitempty"`
	StartTime             *float64 `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime               *float64 `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

// Load reads and parses the results document at path. A path ending in
// .zst is decompressed first.
func Load(path string) (*Document, error) {
	data, err := zstdfile.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: '%s': %v", ErrUnreadableInput, path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return doc, nil
}

// Parse decodes a results document and checks its shape.
func Parse(data []byte) (*Document, error) {
	if err := documentSchema.ValidateJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return &doc, nil
}
