package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"court-proforma/internal/config"
	"court-proforma/internal/engine"
	"court-proforma/internal/finance"
	"court-proforma/internal/model"
	"court-proforma/internal/projection"
	"court-proforma/internal/statements"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compute":
		cmdCompute(os.Args[2:])
	case "project":
		cmdProject(os.Args[2:])
	case "statements":
		cmdStatements(os.Args[2:])
	case "capital":
		cmdCapital(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compute    [--config facility.yaml]")
	fmt.Println("  cli project    [--config facility.yaml] [--out results/projection.csv]")
	fmt.Println("  cli statements [--config facility.yaml] [--out results]")
	fmt.Println("  cli capital    [--config facility.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - omit --config to run the built-in defaults")
	fmt.Println("  - project writes one CSV row per month plus rent_schedule.csv; statements writes pnl.csv and balance_sheet.csv")
}

func loadConfig(path string) *model.Config {
	cfg, warnings, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	return cfg
}

func cmdCompute(args []string) {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	res, err := engine.Compute(cfg)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	fmt.Printf("Prime CH/week: %.1f  Total CH/week: %.1f  Prime share: %.1f%%\n",
		res.PrimeCHWeek, res.TotalCHWeek, res.Meta.PrimeShare*100)
	fmt.Printf("League: %d blocks/wk, %d slots/wk, $%.0f/wk\n",
		res.Weekly.LeagueBlocks, res.Weekly.LeagueSlots, res.Weekly.LeagueRev)
	fmt.Printf("Annual variable revenue: $%.0f\n", res.Annual.VariableRev)
	fmt.Printf("  court $%.0f | league $%.0f | corp $%.0f | tourney $%.0f | retail $%.0f\n",
		res.Annual.CourtRev, res.Annual.LeagueRev, res.Annual.CorpRev, res.Annual.TourneyRev, res.Annual.RetailRev)
	fmt.Printf("RevPACH: $%.2f  Rev/UtilHr: $%.2f  Overall util: %.1f%%\n",
		res.Density.RevPACH, res.Density.RevPerUtilHr, res.Meta.OverallUtil*100)
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "results/projection.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	proj, err := projection.Build(cfg)
	if err != nil {
		log.Fatalf("projection: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	if err := projection.WriteProjectionCSV(*outPath, proj.Months); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	rentPath := filepath.Join(filepath.Dir(*outPath), "rent_schedule.csv")
	if err := projection.WriteRentScheduleCSV(rentPath, cfg); err != nil {
		log.Fatalf("write rent schedule csv: %v", err)
	}

	fmt.Printf("Wrote %d rows to %s (rent schedule in %s)\n", len(proj.Months), *outPath, rentPath)
	fmt.Printf("Y1: rev $%.0f  EBITDA $%.0f  end cash $%.0f\n",
		proj.Summary.Y1.TotalRev, proj.Summary.Y1.EBITDA, proj.Summary.Y1.EndCash)
	fmt.Printf("Y2: rev $%.0f  EBITDA $%.0f  end cash $%.0f\n",
		proj.Summary.Y2.TotalRev, proj.Summary.Y2.EBITDA, proj.Summary.Y2.EndCash)
	if proj.Summary.BreakEvenMonth != "" {
		fmt.Printf("First EBITDA break-even month: %s\n", proj.Summary.BreakEvenMonth)
	} else {
		fmt.Println("No EBITDA break-even within the horizon")
	}
}

func cmdStatements(args []string) {
	fs := flag.NewFlagSet("statements", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outDir := fs.String("out", "results", "Output directory for pnl.csv and balance_sheet.csv")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	proj, err := projection.Build(cfg)
	if err != nil {
		log.Fatalf("projection: %v", err)
	}
	stmts := statements.Build(cfg, proj)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	pnlPath := filepath.Join(*outDir, "pnl.csv")
	bsPath := filepath.Join(*outDir, "balance_sheet.csv")
	if err := statements.WritePnLCSV(pnlPath, stmts.PnL); err != nil {
		log.Fatalf("write pnl csv: %v", err)
	}
	if err := statements.WriteBalanceSheetCSV(bsPath, stmts.BalanceSheet); err != nil {
		log.Fatalf("write balance sheet csv: %v", err)
	}

	fmt.Printf("Wrote %s and %s\n", pnlPath, bsPath)
	fmt.Printf("Y1: revenue $%.0f  net income $%.0f  end equity $%.0f\n",
		stmts.Summary.Y1.Revenue, stmts.Summary.Y1.NetIncome, stmts.Summary.Y1.EndEquity)
	fmt.Printf("Y2: revenue $%.0f  net income $%.0f  end equity $%.0f\n",
		stmts.Summary.Y2.Revenue, stmts.Summary.Y2.NetIncome, stmts.Summary.Y2.EndEquity)
}

func cmdCapital(args []string) {
	fs := flag.NewFlagSet("capital", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	cs := finance.BuildCapitalStructure(cfg.Finance)

	fmt.Println("Uses:")
	fmt.Printf("  leasehold improvements  $%.0f\n", cs.LeaseholdImprovements)
	fmt.Printf("  equipment               $%.0f\n", cs.Equipment)
	fmt.Printf("  FF&E / signage          $%.0f\n", cs.FFESignage)
	fmt.Printf("  pre-opening             $%.0f\n", cs.PreOpening)
	fmt.Printf("  working capital         $%.0f\n", cs.WorkingCapital)
	fmt.Printf("  contingency             $%.0f\n", cs.Contingency)
	fmt.Printf("  total uses              $%.0f\n", cs.TotalUses)
	fmt.Println("Sources:")
	fmt.Printf("  TI allowance            $%.0f\n", cs.TIAllowance)
	fmt.Printf("  owner equity            $%.0f\n", cs.OwnerEquity)
	fmt.Printf("  loan (solved)           $%.0f\n", cs.Loan)
	fmt.Printf("  total sources           $%.0f\n", cs.TotalSources)
	fmt.Printf("Balanced: %v (difference $%.2f)\n", cs.Balanced, cs.Difference)
}
