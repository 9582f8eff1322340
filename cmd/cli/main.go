package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"energy-ecosystem/internal/analysis"
	"energy-ecosystem/internal/api/models"
	"energy-ecosystem/internal/config"
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/report"
	"energy-ecosystem/internal/simulation"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	switch args[0] {
	case "simulate":
		return cmdSimulate(args[1:], stdout)
	case "compare":
		return cmdCompare(args[1:], stdout)
	case "curves":
		return cmdCurves(args[1:], stdout)
	default:
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli simulate --config examples/config.yaml [--pattern A|B] [--out results/ledger.csv] [--format table|json]")
	fmt.Fprintln(w, "  cli compare --config examples/config.yaml")
	fmt.Fprintln(w, "  cli curves [--pv 15]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - simulate runs the 24 hour energy balance; --out also writes the hourly ledger as CSV")
	fmt.Fprintln(w, "  - compare runs factory pattern A (steady) against B (daytime) with the same parameters")
	fmt.Fprintln(w, "  - without --config the default scenario is used")
}

func cmdSimulate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (default scenario if empty)")
	pattern := fs.String("pattern", "", "Override the factory load pattern (A or B)")
	outPath := fs.String("out", "", "Optional: write the hourly ledger CSV to this path")
	format := fs.String("format", "table", "Output format: table or json")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *format != "table" && *format != "json" {
		return fmt.Errorf("unsupported format %q", *format)
	}

	params, err := loadParams(*cfgPath)
	if err != nil {
		return err
	}
	if *pattern != "" {
		p, err := model.ParseFactoryPattern(*pattern)
		if err != nil {
			return err
		}
		params = params.WithPattern(p)
	}

	res := simulation.New().Run(params)
	stats := analysis.Summarize(res)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := simulation.WriteLedgerCSV(*outPath, res.Hours); err != nil {
			return err
		}
	}

	if *format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models.SimulationResponse{
			Status:     "completed",
			Params:     models.NewParamsView(params),
			Summary:    models.NewSummary(res),
			Statistics: models.NewStatisticsView(stats),
			Balance:    models.NewBalanceView(analysis.ComputeBalance(params)),
			Hours:      models.NewHourlyRows(res.Hours),
		})
	}

	report.WriteHourly(stdout, res)
	fmt.Fprintln(stdout)
	report.WriteSummary(stdout, res, stats)
	fmt.Fprintln(stdout)
	report.WriteBalance(stdout, analysis.ComputeBalance(params))
	if *outPath != "" {
		fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(res.Hours), *outPath)
	}
	return nil
}

func cmdCompare(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (default scenario if empty)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	params, err := loadParams(*cfgPath)
	if err != nil {
		return err
	}
	report.WriteComparison(stdout, analysis.Compare(simulation.New(), params))
	return nil
}

func cmdCurves(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("curves", flag.ContinueOnError)
	pv := fs.Float64("pv", model.DefaultParams().HouseholdPVCapacityKW, "PV capacity per household in kW")
	pattern := fs.String("pattern", string(model.FactoryPatternA), "Factory load pattern (A or B)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	p := model.DefaultParams()
	p.HouseholdPVCapacityKW = *pv
	fp, err := model.ParseFactoryPattern(*pattern)
	if err != nil {
		return err
	}
	p.FactoryLoadPattern = fp
	if err := p.Validate(); err != nil {
		return err
	}
	report.WriteCurves(stdout, simulation.BuildCurves(p))
	return nil
}

func loadParams(path string) (model.SimulationParams, error) {
	if path == "" {
		return model.DefaultParams(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return model.SimulationParams{}, err
	}
	return cfg.Scenario.ToModelParams()
}
