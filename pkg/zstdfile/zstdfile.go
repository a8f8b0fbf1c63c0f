// Package zstdfile opens files that may be zstd-compressed.
//
// A path ending in ".zst" is decompressed on read and compressed on write;
// any other path is passed through unchanged. Callers see plain bytes
// either way:
//
//	r, err := zstdfile.Open("results.json.zst")
//	w, err := zstdfile.Create("datasets/benchmark_1K_converted.jsonl.zst")
package zstdfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Ext is the suffix that marks a compressed file.
const Ext = ".zst"

// IsCompressed reports whether path names a zstd file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), Ext)
}

// Open opens path for reading. Errors from os.Open are returned unwrapped
// so callers can test them with errors.Is(err, fs.ErrNotExist).
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}

	zr, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to open zstd stream: %w", err)
	}
	return &reader{Decoder: zr, file: f}, nil
}

// ReadFile is os.ReadFile with transparent decompression.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return data, nil
}

// Create creates or truncates path for writing. Close must be called to
// flush the compressed frame.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to open zstd stream: %w", err)
	}
	return &writer{Encoder: zw, file: f}, nil
}

type reader struct {
	*zstd.Decoder
	file *os.File
}

func (r *reader) Close() error {
	r.Decoder.Close()
	return r.file.Close()
}

type writer struct {
	*zstd.Encoder
	file *os.File
}

func (w *writer) Close() error {
	if err := w.Encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
