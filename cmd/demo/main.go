package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"energy-ecosystem/internal/config"
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"
	"energy-ecosystem/internal/simulation"
)

// Demo:
// - Build the hourly curves for a scenario
// - Step the allocator by hand for the first N hours, carrying battery state
// - Cross-check against a full engine run
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 12, "Number of hours to step through")
	outCSV := flag.String("out", "", "Optional path to write the full ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	params := model.DefaultParams()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if params, err = cfg.Scenario.ToModelParams(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	curves := simulation.BuildCurves(params)
	state := model.NewBatteryState(params.NumHouseholds, params.HouseholdBatteryCapacityKWh, params.SharedBatteryCapacityKWh)

	fmt.Printf("Scenario: %d households, pattern %s\n", params.NumHouseholds, params.FactoryLoadPattern)
	fmt.Printf("Starting storage: households=%.1f kWh shared=%.1f kWh\n\n", state.HouseholdTotal(), state.Shared)

	hours := max(0, min(*n, profile.Hours))
	for h := 0; h < hours; h++ {
		in := curves.At(h, params.NumHouseholds)
		alloc := simulation.Allocate(in.PV, in.Load(), state, params.HouseholdBatteryCapacityKWh, params.SharedBatteryCapacityKWh)
		state = alloc.State

		fmt.Printf(
			"%02d:00 pv=%7.1f load=%7.1f  action=%-11s  hh=%+7.1f shared=%+7.1f  buy=%7.1f sell=%7.1f  store=%7.1f/%7.1f\n",
			h,
			in.PV,
			in.Load(),
			string(model.ActionFromNetKWh(in.Net())),
			alloc.HouseholdCharge-alloc.HouseholdDischarge,
			alloc.SharedCharge-alloc.SharedDischarge,
			alloc.GridPurchase,
			alloc.GridSell,
			state.HouseholdTotal(),
			state.Shared,
		)
	}

	result := simulation.New().Run(params)
	if hours > 0 {
		last := result.Hours[hours-1]
		fmt.Printf("\nEngine after %02d:00: households=%.1f kWh shared=%.1f kWh\n",
			last.Hour, last.HouseholdBatteryLevel, last.SharedBatteryLevel)
	}

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := simulation.WriteLedgerCSV(*outCSV, result.Hours); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Purchase=%.1f kWh  Sell=%.1f kWh  Self-consumption=%.1f%%\n",
		result.TotalGridPurchase, result.TotalGridSell, result.SelfConsumptionRate)
}
