// Package perf is the library interface of tokenbench.
//
// It exposes the two halves of the benchmark workflow without the CLI:
// preparing request datasets for the load generator and summarizing the
// results file it writes.
//
// # Analyzing results
//
//	report, err := perf.AnalyzeFile("results.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p99, _ := report.Value("total_time", 99)
//	fmt.Printf("P99 total time: %.3fs\n", p99)
//
// Pass percentiles to override the default P50, P90, P95, P99 and P100:
//
//	report, err := perf.AnalyzeFile("results.json", 50, 99.9)
//
// The report renders as text, CSV or JSON/YAML:
//
//	perf.WriteText(os.Stdout, report)
//	perf.WriteCSV(os.Stdout, report)
//	data, _ := json.Marshal(report)
//
// # Preparing datasets
//
//	seed := int64(42)
//	stats, err := perf.ConvertDataset("raw.jsonl", "requests.jsonl", &seed)
//
// A nil seed draws temperatures from a clock-seeded sampler.
package perf
