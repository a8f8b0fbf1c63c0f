package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every problem found in one config.
type ValidationErrors []ValidationError

// Error joins the individual messages.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateBatchConfig validates a batch configuration
func ValidateBatchConfig(cfg *BatchConfig) ValidationErrors {
	var errors ValidationErrors

	if len(cfg.Files) == 0 {
		errors = append(errors, ValidationError{
			Path:    "files",
			Message: "at least one dataset file is required",
		})
	}

	seen := make(map[string]bool)
	for i, file := range cfg.Files {
		path := fmt.Sprintf("files[%d]", i)

		switch {
		case strings.TrimSpace(file) == "":
			errors = append(errors, ValidationError{Path: path, Message: "file name is empty"})
		case filepath.IsAbs(file):
			errors = append(errors, ValidationError{Path: path, Message: "file name must be relative to datasetsDir"})
		case !strings.HasSuffix(file, ".jsonl") && !strings.HasSuffix(file, ".jsonl.zst"):
			errors = append(errors, ValidationError{Path: path, Message: fmt.Sprintf("%q is not a .jsonl file", file)})
		case seen[file]:
			errors = append(errors, ValidationError{Path: path, Message: fmt.Sprintf("%q is listed twice", file)})
		}
		seen[file] = true
	}

	return errors
}
