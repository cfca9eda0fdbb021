package main

import (
	"fmt"
	"log"

	"court-proforma/internal/config"
	"court-proforma/internal/engine"
	"court-proforma/internal/finance"
	"court-proforma/internal/projection"
	"court-proforma/internal/statements"
)

// Runs the built-in default facility end to end and prints a short tour of
// the results: weekly capacity, steady-state revenue, the 24-month
// projection, and the financial statements.
func main() {
	cfg := config.Default()
	for _, w := range config.Finalize(&cfg) {
		log.Printf("warning: %s", w)
	}

	res, err := engine.Compute(&cfg)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	fmt.Println("== Capacity ==")
	fmt.Printf("courts=%d  prime CH/wk=%.0f  total CH/wk=%.0f  prime share=%.1f%%\n",
		cfg.Facility.Courts, res.PrimeCHWeek, res.TotalCHWeek, res.Meta.PrimeShare*100)
	fmt.Printf("league blocks/wk=%d  slots/wk=%d  fitted=%v\n",
		res.Weekly.LeagueBlocks, res.Weekly.LeagueSlots, res.LeagueFit.Fitted)
	for _, adj := range res.LeagueFit.Adjustments {
		fmt.Printf("  fit adjustment: %s %v -> %v\n", adj.Stage, adj.Before, adj.After)
	}

	fmt.Println("\n== Steady-state revenue (annual) ==")
	fmt.Printf("court=$%.0f  league=$%.0f  corp=$%.0f  tourney=$%.0f  retail=$%.0f\n",
		res.Annual.CourtRev, res.Annual.LeagueRev, res.Annual.CorpRev,
		res.Annual.TourneyRev, res.Annual.RetailRev)
	fmt.Printf("variable total=$%.0f  RevPACH=$%.2f  rev/util-hr=$%.2f\n",
		res.Annual.VariableRev, res.Density.RevPACH, res.Density.RevPerUtilHr)

	cs := finance.BuildCapitalStructure(cfg.Finance)
	fmt.Println("\n== Capital structure ==")
	fmt.Printf("total uses=$%.0f  TI allowance=$%.0f  equity=$%.0f  loan=$%.0f\n",
		cs.TotalUses, cs.TIAllowance, cs.OwnerEquity, cs.Loan)

	proj, err := projection.Build(&cfg)
	if err != nil {
		log.Fatalf("projection: %v", err)
	}
	fmt.Println("\n== 24-month projection ==")
	first, last := proj.Months[0], proj.Months[len(proj.Months)-1]
	fmt.Printf("%s: members=%d  rev=$%.0f  EBITDA=$%.0f\n",
		first.Month, first.Members, first.TotalRev, first.EBITDA)
	fmt.Printf("%s: members=%d  rev=$%.0f  EBITDA=$%.0f\n",
		last.Month, last.Members, last.TotalRev, last.EBITDA)
	fmt.Printf("Y1 rev=$%.0f  Y2 rev=$%.0f  min DSCR(Y2)=%.2f\n",
		proj.Summary.Y1.TotalRev, proj.Summary.Y2.TotalRev, proj.Summary.Y2.MinDSCR)
	if proj.Summary.BreakEvenMonth != "" {
		fmt.Printf("first EBITDA-positive month: %s\n", proj.Summary.BreakEvenMonth)
	}

	stmts := statements.Build(&cfg, proj)
	fmt.Println("\n== Statements ==")
	fmt.Printf("Y1 net income=$%.0f  Y2 net income=$%.0f\n",
		stmts.Summary.Y1.NetIncome, stmts.Summary.Y2.NetIncome)
	lastBS := stmts.BalanceSheet[len(stmts.BalanceSheet)-1]
	fmt.Printf("ending cash=$%.0f  debt=$%.0f  equity=$%.0f  (pre-plug check $%.4f)\n",
		lastBS.Cash, lastBS.DebtBalance, lastBS.Equity, lastBS.Check)
}
