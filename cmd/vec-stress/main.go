package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		scenarioPath string
		opts         Scenario
	)

	root := &cobra.Command{
		Use:   "vec-stress",
		Short: "Randomized stress test for the inplace vector",
		Long: `vec-stress runs a randomized mutation plan against a fixed-capacity
vector, mirroring every operation in a plain-slice model and auditing
element lifetimes. Hook failures are injected at a configurable rate to
exercise the rollback paths. The run fails if the vector ever diverges
from the model or if any element leaks or is destroyed twice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scn := opts
			if scenarioPath != "" {
				loaded, err := LoadScenario(scenarioPath)
				if err != nil {
					return fmt.Errorf("load scenario: %w", err)
				}
				scn = *loaded
			}
			scn.applyDefaults()
			return run(&scn)
		},
	}

	root.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; overrides the other flags")
	root.Flags().IntVar(&opts.Ops, "ops", 200000, "number of mutation operations to run")
	root.Flags().IntVar(&opts.Capacity, "capacity", 64, "vector capacity")
	root.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	root.Flags().Float64Var(&opts.FailRate, "fail-rate", 0.02, "probability that a clone or move hook fails")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(scn *Scenario) error {
	log.Printf("Running %s: %d ops, capacity %d, seed %d, fail rate %.3f",
		scn.Name, scn.Ops, scn.Capacity, scn.Seed, scn.FailRate)

	report := &Report{Scenario: scn}
	runtime.ReadMemStats(&report.MemStatsStart)

	r := newRunner(scn)
	start := time.Now()
	err := r.run()
	report.TotalTime = time.Since(start)

	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Stats = r.stats
	report.FinalLen = r.vec.Len()
	report.FinalLive = r.tracker.Live()
	if err != nil {
		report.Failure = err.Error()
	}

	if genErr := report.Generate(os.Stdout); genErr != nil {
		return genErr
	}
	return err
}
