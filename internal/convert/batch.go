package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wesleyorama2/tokenbench/internal/config"
)

// ErrBatchFailed is returned when at least one dataset of a batch failed.
var ErrBatchFailed = errors.New("batch conversion failed")

// FileResult is the outcome of converting one dataset file.
type FileResult struct {
	Input  string
	Output string
	Stats  Stats
	Err    error
}

// Missing reports whether the file failed because it did not exist.
func (r FileResult) Missing() bool {
	return errors.Is(r.Err, ErrInputNotFound)
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Files     []FileResult
	Converted int
	Failed    int
}

// Err returns ErrBatchFailed when any file failed.
func (b BatchResult) Err() error {
	if b.Failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrBatchFailed, b.Failed, len(b.Files))
	}
	return nil
}

// BatchHooks lets the caller observe a batch as it runs. Nil hooks are skipped.
type BatchHooks struct {
	// BeforeFile is called before an existing input is converted.
	BeforeFile func(input, output string)

	// AfterFile is called once per file, including missing ones.
	AfterFile func(FileResult)

	// Warn receives lines skipped inside a file.
	Warn func(input string, lineErr *LineError)
}

// ConvertedName maps benchmark_1K.jsonl to benchmark_1K_converted.jsonl.
// A compressed input keeps its .zst suffix.
func ConvertedName(name string) string {
	if base, ok := strings.CutSuffix(name, ".jsonl.zst"); ok {
		return base + "_converted.jsonl.zst"
	}
	if strings.HasSuffix(name, ".jsonl") {
		return strings.TrimSuffix(name, ".jsonl") + "_converted.jsonl"
	}
	return name + "_converted"
}

// ConvertAll converts every file of cfg in order.
//
// Each file gets a fresh sampler seeded with the batch seed, so a file's
// temperatures do not depend on which other files are in the batch.
// Failures are recorded per file and never stop the batch.
func ConvertAll(cfg *config.BatchConfig, hooks BatchHooks) BatchResult {
	var result BatchResult
	seed := cfg.SeedValue()

	for _, name := range cfg.Files {
		fr := FileResult{
			Input:  filepath.Join(cfg.DatasetsDir, name),
			Output: filepath.Join(cfg.DatasetsDir, ConvertedName(name)),
		}

		if _, err := os.Stat(fr.Input); errors.Is(err, os.ErrNotExist) {
			fr.Err = fmt.Errorf("%w: '%s'", ErrInputNotFound, fr.Input)
		} else {
			if hooks.BeforeFile != nil {
				hooks.BeforeFile(fr.Input, fr.Output)
			}

			var warn WarnFunc
			if hooks.Warn != nil {
				input := fr.Input
				warn = func(le *LineError) { hooks.Warn(input, le) }
			}
			fr.Stats, fr.Err = ConvertFile(fr.Input, fr.Output, NewSampler(&seed), warn)
		}

		if fr.Err != nil {
			result.Failed++
		} else {
			result.Converted++
		}
		result.Files = append(result.Files, fr)

		if hooks.AfterFile != nil {
			hooks.AfterFile(fr)
		}
	}

	return result
}
