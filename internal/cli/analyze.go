package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tokenbench/internal/analysis"
	"github.com/wesleyorama2/tokenbench/internal/output"
	"github.com/wesleyorama2/tokenbench/internal/results"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <results.json>",
		Short: "Compute latency and token percentiles from a results file",
		Long: `Read the JSON results written by the load generator and report
P50, P90, P95, P99 and P100 for every timing and token metric.

Examples:
  tokenbench analyze results.json
  tokenbench analyze results.json --output-csv stats/percentiles.csv
  tokenbench analyze results.json --output-html report.html --output-chart latency.png
  tokenbench analyze results.json.zst
  tokenbench analyze results.json --percentiles 50,75,99.9 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("output-csv", "", "Also write the percentile table to this CSV file")
	cmd.Flags().String("output-html", "", "Also write a standalone HTML report to this file")
	cmd.Flags().String("output-chart", "", "Also write a PNG latency-by-percentile chart to this file")
	cmd.Flags().Float64Slice("percentiles", analysis.DefaultPercentiles, "Percentiles to compute, each in [0,100]")
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("output-csv")
	htmlPath, _ := cmd.Flags().GetString("output-html")
	chartPath, _ := cmd.Flags().GetString("output-chart")
	percentiles, _ := cmd.Flags().GetFloat64Slice("percentiles")
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if err := analysis.ValidatePercentiles(percentiles); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Status lines go to stderr when stdout carries a structured document
	status := out
	if format != output.FormatText {
		status = cmd.ErrOrStderr()
	}

	doc, err := results.Load(args[0])
	if err != nil {
		return err
	}

	report, err := analysis.ComputeReport(doc, percentiles)
	if err != nil {
		return err
	}

	fmt.Fprintf(status, "Analyzing %d completion entries...\n", report.Completions)

	if format == output.FormatText {
		scheme := output.SchemeFor(plainOutput(cmd, out))
		if err := analysis.RenderText(out, report, scheme); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	} else {
		data, err := output.Encode(report, format)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	errOut := cmd.ErrOrStderr()
	// The report is already out; a lost file does not fail the run.
	if csvPath != "" {
		if err := analysis.SaveCSV(csvPath, analysis.RenderTable(report)); err != nil {
			fmt.Fprintf(errOut, "%s %v\n", output.ErrorIcon(plainOutput(cmd, errOut)), err)
		} else {
			fmt.Fprintf(status, "\nResults saved to: %s\n", csvPath)
		}
	}
	if htmlPath != "" {
		if err := analysis.GenerateHTML(report, filepath.Base(args[0]), htmlPath); err != nil {
			fmt.Fprintf(errOut, "%s %v\n", output.ErrorIcon(plainOutput(cmd, errOut)), err)
		} else {
			fmt.Fprintf(status, "HTML report saved to: %s\n", htmlPath)
		}
	}
	if chartPath != "" {
		if err := analysis.SaveChart(chartPath, report); err != nil {
			fmt.Fprintf(errOut, "%s %v\n", output.ErrorIcon(plainOutput(cmd, errOut)), err)
		} else {
			fmt.Fprintf(status, "Chart saved to: %s\n", chartPath)
		}
	}

	return nil
}
