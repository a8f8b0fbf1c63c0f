package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tokenbench/internal/convert"
	"github.com/wesleyorama2/tokenbench/internal/output"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.jsonl> <output.jsonl>",
		Short: "Convert a raw dataset into load generator requests",
		Long: `Rewrite every {"text", "token_length"} line of a JSONL dataset as a
{"prompt", "max_tokens", "temperature"} request. The temperature is drawn
uniformly from [0.2, 0.7] and rounded to one decimal.

Lines that cannot be converted are skipped with a warning.

Examples:
  tokenbench convert datasets/benchmark_1K.jsonl datasets/benchmark_1K_converted.jsonl
  tokenbench convert in.jsonl out.jsonl --seed 42`,
		Args: cobra.ExactArgs(2),
		RunE: runConvert,
	}

	cmd.Flags().Int64("seed", 0, "Seed for the temperature sampler (random when unset)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	var seed *int64
	if cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetInt64("seed")
		seed = &v
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	sampler := convert.NewSampler(seed)
	if v, ok := sampler.Seed(); ok {
		fmt.Fprintf(stdout, "Using random seed: %d\n", v)
	}

	warnIcon := output.WarningIcon(plainOutput(cmd, stderr))
	stats, err := convert.ConvertFile(in, out, sampler, func(le *convert.LineError) {
		fmt.Fprintf(stderr, "%s Warning: skipping %v\n", warnIcon, le)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s Successfully converted %d entries from '%s' to '%s'\n",
		output.SuccessIcon(plainOutput(cmd, stdout)), stats.Converted, in, out)
	return nil
}
