package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tokenbench/internal/config"
	"github.com/wesleyorama2/tokenbench/internal/convert"
	"github.com/wesleyorama2/tokenbench/internal/output"
)

func newConvertAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert-all",
		Short: "Convert the standard benchmark datasets",
		Long: `Convert every dataset of a batch. Without a manifest the batch is
benchmark_1K.jsonl, benchmark_8K.jsonl and benchmark_16K.jsonl in the
datasets directory, seeded with 42. Each input is written next to itself
as <name>_converted.jsonl.

A manifest (YAML, or JSON by extension) may override the batch:

  datasetsDir: datasets
  seed: 7
  files:
    - benchmark_1K.jsonl
    - benchmark_32K.jsonl

Flags win over the manifest.`,
		Args: cobra.NoArgs,
		RunE: runConvertAll,
	}

	cmd.Flags().Int64("seed", config.DefaultSeed, "Seed for the temperature sampler of every file")
	cmd.Flags().String("datasets-dir", config.DefaultDatasetsDir, "Directory holding the datasets")
	cmd.Flags().StringP("config", "c", "", "Batch manifest file (YAML or JSON)")

	return cmd
}

func runConvertAll(cmd *cobra.Command, args []string) error {
	cfg, err := batchConfig(cmd)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	plain := plainOutput(cmd, stdout)
	scheme := output.SchemeFor(plain)

	fmt.Fprintf(stdout, "%s Converting %d dataset(s) in '%s' (seed %d)\n",
		output.InfoIcon(plain), len(cfg.Files), cfg.DatasetsDir, cfg.SeedValue())

	warnIcon := output.WarningIcon(plainOutput(cmd, stderr))
	result := convert.ConvertAll(cfg, convert.BatchHooks{
		BeforeFile: func(input, out string) {
			fmt.Fprintf(stdout, "\nConverting %s -> %s\n", input, out)
		},
		AfterFile: func(fr convert.FileResult) {
			switch {
			case fr.Missing():
				fmt.Fprintf(stdout, "\n%s %s\n", warnIcon, scheme.Warning.Sprintf("Warning: %s not found, skipping...", fr.Input))
			case fr.Err != nil:
				fmt.Fprintf(stdout, "%s %s\n", output.ErrorIcon(plain), scheme.Error.Sprintf("Failed to convert %s: %v", fr.Input, fr.Err))
			default:
				fmt.Fprintf(stdout, "%s Converted %d entries", output.SuccessIcon(plain), fr.Stats.Converted)
				if fr.Stats.Skipped > 0 {
					fmt.Fprintf(stdout, " (%d skipped)", fr.Stats.Skipped)
				}
				fmt.Fprintln(stdout)
			}
		},
		Warn: func(input string, le *convert.LineError) {
			fmt.Fprintf(stderr, "%s Warning: %s: skipping %v\n", warnIcon, input, le)
		},
	})

	fmt.Fprintf(stdout, "\n%s\n", scheme.Title.Sprint("Conversion Summary:"))
	fmt.Fprintf(stdout, "  %s %s\n", scheme.Label.Sprint("Successfully converted:"), scheme.Success.Sprintf("%d", result.Converted))
	fmt.Fprintf(stdout, "  %s %s\n", scheme.Label.Sprint("Failed:"), scheme.Error.Sprintf("%d", result.Failed))

	return result.Err()
}

// batchConfig resolves the batch from the defaults, the manifest and the
// flags, in increasing precedence.
func batchConfig(cmd *cobra.Command) (*config.BatchConfig, error) {
	cfg := config.DefaultBatchConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadBatchConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("datasets-dir") {
		cfg.DatasetsDir, _ = cmd.Flags().GetString("datasets-dir")
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.Seed = &seed
	}

	if errs := config.ValidateBatchConfig(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid batch: %w", errs)
	}
	return cfg, nil
}
