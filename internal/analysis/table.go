package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrOutputWrite is returned when a CSV or HTML report file cannot be written.
var ErrOutputWrite = errors.New("failed to write report file")

// RenderTable returns the report as rows: a header row
// ("Metric", "P50", ...) followed by one row per tracked metric.
func RenderTable(r *Report) [][]string {
	header := make([]string, 0, len(r.Percentiles)+1)
	header = append(header, "Metric")
	for _, p := range r.Percentiles {
		header = append(header, Label(p))
	}

	rows := make([][]string, 0, len(r.Metrics)+1)
	rows = append(rows, header)
	for _, m := range r.Metrics {
		row := make([]string, 0, len(m.Values)+1)
		row = append(row, m.Name)
		for _, v := range m.Values {
			row = append(row, formatCell(v))
		}
		rows = append(rows, row)
	}
	return rows
}

// formatCell prints the shortest decimal form, keeping a decimal point so
// whole numbers read as 3.0 rather than 3.
func formatCell(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteCSV writes rows as CSV.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// SaveCSV writes rows to path, creating the parent directory if needed.
func SaveCSV(path string, rows [][]string) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, cerr)
		}
	}()

	return WriteCSV(f, rows)
}
