// Package config holds the configuration of the batch dataset conversion.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the batch seed when neither a manifest nor a flag sets one.
const DefaultSeed int64 = 42

// DefaultDatasetsDir is where the batch driver looks for dataset files.
const DefaultDatasetsDir = "datasets"

// DefaultDatasetFiles are the datasets converted by a plain convert-all.
var DefaultDatasetFiles = []string{
	"benchmark_1K.jsonl",
	"benchmark_8K.jsonl",
	"benchmark_16K.jsonl",
}

// BatchConfig describes which dataset files to convert.
//
// Example YAML:
//
//	datasetsDir: datasets
//	seed: 7
//	files:
//	  - benchmark_1K.jsonl
//	  - benchmark_32K.jsonl
type BatchConfig struct {
	// DatasetsDir is the directory holding input and output files
	DatasetsDir string `json:"datasetsDir,omitempty" yaml:"datasetsDir,omitempty"`

	// Files are input file names relative to DatasetsDir
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Seed drives the temperature sampler of every file
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultBatchConfig returns the built-in dataset list.
func DefaultBatchConfig() *BatchConfig {
	seed := DefaultSeed
	return &BatchConfig{
		DatasetsDir: DefaultDatasetsDir,
		Files:       append([]string(nil), DefaultDatasetFiles...),
		Seed:        &seed,
	}
}

// SeedValue returns the configured seed, or DefaultSeed.
func (c *BatchConfig) SeedValue() int64 {
	if c.Seed == nil {
		return DefaultSeed
	}
	return *c.Seed
}

// LoadBatchConfig reads a manifest and fills unset fields from the defaults.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := ParseBatchConfig(data, path)
	if err != nil {
		return nil, err
	}

	if errs := ValidateBatchConfig(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config file %s: %w", path, errs)
	}
	return cfg, nil
}

// ParseBatchConfig parses manifest data.
//
// The format is determined by the file extension in path: .json is JSON,
// anything else is YAML.
func ParseBatchConfig(data []byte, path string) (*BatchConfig, error) {
	var cfg BatchConfig

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	defaults := DefaultBatchConfig()
	if cfg.DatasetsDir == "" {
		cfg.DatasetsDir = defaults.DatasetsDir
	}
	if cfg.Files == nil {
		cfg.Files = defaults.Files
	}
	if cfg.Seed == nil {
		cfg.Seed = defaults.Seed
	}

	return &cfg, nil
}
