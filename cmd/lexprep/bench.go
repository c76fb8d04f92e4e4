package main

import (
	"fmt"

	"github.com/example/go-lexprep/internal/bench"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		in              string
		runs            int
		report          string
		stages          bool
		cpuprofile      string
		minTokensPerSec float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark preprocessing latency and throughput",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if report != "table" && report != "json" {
				return fmt.Errorf("--report must be 'table' or 'json'")
			}

			doc, err := loadDocument(inputPath(in, cfg), cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if stages {
				st, err := bench.ProfileStages(cmd.Context(), doc, runs, cpuprofile)
				if err != nil {
					return err
				}
				bench.FormatStages(st, out)
				return nil
			}

			results, err := bench.Run(doc, runs)
			if err != nil {
				return err
			}
			stats := bench.ComputeStats(bench.Durations(results))

			switch report {
			case "json":
				bench.FormatJSON(results, stats, out)
			default:
				bench.FormatTable(results, stats, out)
			}

			return bench.CheckThroughputFloor(bench.MeanThroughput(results), minTokensPerSec)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Document to preprocess on each run ('-' for stdin)")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of runs")
	cmd.Flags().StringVar(&report, "report", "table", "Report format: table|json")
	cmd.Flags().BoolVar(&stages, "stages", false, "Time tokenize, collect and segment separately")
	cmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "Write a CPU profile of the stage runs (with --stages)")
	cmd.Flags().Float64Var(&minTokensPerSec, "min-tokens-per-sec", 0, "Exit non-zero if mean throughput is below this value (0 = disabled)")

	return cmd
}
