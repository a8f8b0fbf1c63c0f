// Package convert turns raw benchmark datasets into the request format read
// by the load generator.
//
// A raw dataset is JSONL with one {"text": ..., "token_length": N} object
// per line. Each line becomes {"prompt": ..., "max_tokens": N,
// "temperature": T} with T drawn from a Sampler.
package convert

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wesleyorama2/tokenbench/pkg/jsonpath"
	"github.com/wesleyorama2/tokenbench/pkg/zstdfile"
)

// Raw dataset fields.
const (
	FieldText        = "text"
	FieldTokenLength = "token_length"
)

// maxLineSize bounds a single JSONL record. Long-context datasets carry
// prompts of several hundred kilobytes.
const maxLineSize = 64 * 1024 * 1024

var (
	// ErrInputNotFound is returned when the dataset file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrMissingField marks a record without a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidRecord marks a record that is not a JSON object or has a
	// field of the wrong type.
	ErrInvalidRecord = errors.New("invalid record")
)

// Record is one converted request.
type Record struct {
	Prompt      json.RawMessage `json:"prompt"`
	MaxTokens   int64           `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

// LineError describes a skipped input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// WarnFunc receives every skipped line. It may be nil.
type WarnFunc func(*LineError)

// Stats counts the outcome of one conversion.
type Stats struct {
	Converted int
	Skipped   int
}

// ConvertRecord converts a single raw JSON line.
func ConvertRecord(line string, sampler *Sampler) (*Record, error) {
	if !jsonpath.Valid(line) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidRecord)
	}
	if !strings.HasPrefix(line, "{") {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidRecord)
	}

	prompt, err := jsonpath.Raw(line, "$."+FieldText)
	if err != nil {
		return nil, fieldError(FieldText, err)
	}

	maxTokens, err := jsonpath.Int(line, "$."+FieldTokenLength)
	if err != nil {
		return nil, fieldError(FieldTokenLength, err)
	}

	return &Record{
		Prompt:      json.RawMessage(prompt),
		MaxTokens:   maxTokens,
		Temperature: sampler.Temperature(),
	}, nil
}

func fieldError(field string, err error) error {
	if errors.Is(err, jsonpath.ErrPathNotFound) {
		return fmt.Errorf("%w '%s'", ErrMissingField, field)
	}
	return fmt.Errorf("%w: field '%s': %v", ErrInvalidRecord, field, err)
}

// Convert reads raw JSONL from r and writes converted JSONL to w.
//
// Blank lines are ignored. Lines that cannot be converted are skipped and
// reported to warn; only read and write failures abort the conversion.
func Convert(r io.Reader, w io.Writer, sampler *Sampler, warn WarnFunc) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), maxLineSize)

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := ConvertRecord(line, sampler)
		if err != nil {
			stats.Skipped++
			if warn != nil {
				warn(&LineError{Line: lineNum, Err: err})
			}
			continue
		}

		if err := enc.Encode(record); err != nil {
			return stats, fmt.Errorf("failed to write record from line %d: %w", lineNum, err)
		}
		stats.Converted++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write output: %w", err)
	}

	return stats, nil
}

// ConvertFile converts inPath into outPath, creating the output directory
// when needed. Either path may end in .zst to read or write zstd.
func ConvertFile(inPath, outPath string, sampler *Sampler, warn WarnFunc) (stats Stats, err error) {
	in, err := zstdfile.Open(inPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stats, fmt.Errorf("%w: '%s'", ErrInputNotFound, inPath)
		}
		return stats, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := zstdfile.Create(outPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return Convert(in, out, sampler, warn)
}
