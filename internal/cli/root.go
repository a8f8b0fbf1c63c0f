package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tokenbench/internal/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree. Tests use it to avoid flag state
// leaking between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "tokenbench",
		Short:   "Dataset preparation and percentile analysis for LLM benchmarks",
		Version: version,
		Long: `Tokenbench prepares benchmark datasets for an LLM load generator and
summarizes the results it produces.

  tokenbench convert-all                      convert the standard datasets
  tokenbench analyze results.json             print percentile statistics
  tokenbench analyze results.json --output-csv stats.csv`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, print help
			return cmd.Help()
		},
	}

	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newConvertAllCmd())

	return root
}

// Execute runs RootCmd and reports a failure on stderr.
// This is called by main.Main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return execute(RootCmd)
}

func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		plain, _ := root.PersistentFlags().GetBool("no-color")
		fmt.Fprintf(root.ErrOrStderr(), "%s Error: %v\n", output.ErrorIcon(!output.ColorEnabled(root.ErrOrStderr(), plain)), err)
		return err
	}
	return nil
}

// plainOutput reports whether output written to w by cmd must stay uncolored.
func plainOutput(cmd *cobra.Command, w io.Writer) bool {
	plain, _ := cmd.Flags().GetBool("no-color")
	return !output.ColorEnabled(w, plain)
}
