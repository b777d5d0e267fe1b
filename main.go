package main

import (
	"fmt"
	"os"

	"vecsum/bench"
	cfg "vecsum/config"
	"vecsum/dataset"
	"vecsum/sysinfo"
	"vecsum/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configuration, err := cfg.LoadConfig()
	if err != nil && !os.IsNotExist(err) {
		fmt.Printf("Failed to load config.json, using default settings: %v\n", err)
	}
	debug := configuration.Debug

	fmt.Println("=== Parallel vector sum benchmark ===")
	fmt.Printf("Parameters: %d vectors of %d elements each (%s values)\n",
		cfg.NumVectors, cfg.VectorSize, utils.FormatCount(uint64(cfg.NumVectors)*uint64(cfg.VectorSize)))
	fmt.Printf("Value range: [%d, %d]\n\n", cfg.MinValue, cfg.MaxValue)

	sysinfo.PrintSystemInfo()
	fmt.Println()

	utils.LogMessage("Generating vectors...", true)
	vectors, err := dataset.Generate(dataset.GeneratorConfig{
		NumVectors: cfg.NumVectors,
		VectorSize: cfg.VectorSize,
		MinValue:   cfg.MinValue,
		MaxValue:   cfg.MaxValue,
	})
	if err != nil {
		return fmt.Errorf("dataset generation failed: %w", err)
	}
	utils.LogMessage(fmt.Sprintf("All %d vectors were generated", len(vectors)), true)
	fmt.Println()

	results := make([]int64, len(vectors))
	stats := &cfg.TrialStats{}

	for _, workers := range cfg.WorkerCounts {
		plural := ""
		if workers > 1 {
			plural = "s"
		}
		fmt.Printf("~ Test with %d worker%s ~\n", workers, plural)

		bench.ResetResults(results)
		elapsed := bench.MeasureTrial(vectors, results, workers, debug)

		valid := true
		if err := bench.ValidateResults(vectors, results, cfg.SampleChecks); err != nil {
			valid = false
			utils.LogMessage(fmt.Sprintf("Validation failed: %v", err), true)
		} else {
			fmt.Println("  ...Results are correct...")
		}

		fmt.Printf("  Execution time - %.2f ms\n\n", elapsed)

		stats.Lock()
		stats.Trials = append(stats.Trials, cfg.TrialResult{
			Workers:   workers,
			ElapsedMs: elapsed,
			Valid:     valid,
		})
		stats.Unlock()
	}

	printResultsTable(stats)

	// Summary statistics deliberately reflect whichever results buffer is
	// live after the final trial, not an aggregate across trials.
	printSumStats(results)

	return nil
}

func printResultsTable(stats *cfg.TrialStats) {
	fmt.Println("=== Benchmark results ===")
	fmt.Printf("%12s %15s\n", "Workers", "Time [ms]")

	stats.Lock()
	defer stats.Unlock()

	for _, trial := range stats.Trials {
		line := fmt.Sprintf("%12d %15.2f", trial.Workers, trial.ElapsedMs)
		if !trial.Valid {
			line += "  (validation FAILED)"
		}
		fmt.Println(line)
	}
}

func printSumStats(results []int64) {
	summary := bench.Summarize(results)

	fmt.Println("\n=== Sum statistics ===")
	fmt.Printf("   Minimum sum - %d\n", summary.Min)
	fmt.Printf("   Maximum sum - %d\n", summary.Max)
	fmt.Printf("   Mean sum - %.2f\n\n", summary.Mean)

	fmt.Println("First 10 vector sums:")
	for i := 0; i < 10 && i < len(results); i++ {
		fmt.Printf("Vector %d: %d\n", i, results[i])
	}
}
