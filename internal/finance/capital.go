package finance

import (
	"math"

	"court-proforma/internal/model"
)

// CapitalStructure is a balanced sources & uses table. The loan is the sized
// source: it closes the gap between total uses and the other sources, so the
// table balances by construction.
type CapitalStructure struct {
	// Uses.
	LeaseholdImprovements float64 `json:"leasehold_improvements"`
	Equipment             float64 `json:"equipment"`
	FFESignage            float64 `json:"ffe_signage"`
	PreOpening            float64 `json:"pre_opening"`
	WorkingCapital        float64 `json:"working_capital"`
	Contingency           float64 `json:"contingency"`
	TotalUses             float64 `json:"total_uses"`

	// Sources.
	TIAllowance  float64 `json:"ti_allowance"`
	OwnerEquity  float64 `json:"owner_equity"`
	Loan         float64 `json:"loan"`
	TotalSources float64 `json:"total_sources"`

	Balanced   bool    `json:"balanced"`
	Difference float64 `json:"difference"`
}

// BuildCapitalStructure lays out sources and uses from the finance config.
// Contingency is a percentage of leasehold improvements; the TI allowance is
// $/sf on the leased square footage.
func BuildCapitalStructure(fin model.FinanceConfig) CapitalStructure {
	cs := CapitalStructure{
		LeaseholdImprovements: fin.LeaseholdImprovements,
		Equipment:             fin.Equipment,
		FFESignage:            fin.FFESignage,
		PreOpening:            fin.PreOpening,
		WorkingCapital:        fin.WCReserveStart,
		Contingency:           fin.LeaseholdImprovements * fin.ContingencyPct,
		TIAllowance:           fin.TIAllowancePSF * fin.SquareFeet,
		OwnerEquity:           fin.OwnerEquity,
	}
	cs.TotalUses = cs.LeaseholdImprovements + cs.Equipment + cs.FFESignage +
		cs.PreOpening + cs.WorkingCapital + cs.Contingency

	cs.Loan = cs.TotalUses - cs.TIAllowance - cs.OwnerEquity
	if cs.Loan < 0 {
		cs.Loan = 0
	}
	cs.TotalSources = cs.TIAllowance + cs.OwnerEquity + cs.Loan

	cs.Difference = math.Abs(cs.TotalSources - cs.TotalUses)
	cs.Balanced = cs.Difference < 1.0
	return cs
}

// LoanToBalance sizes the loan so that funding sources equal funding uses to
// within $1. Every additional dollar of owner equity reduces the loan by
// exactly one dollar until the loan floors at zero.
func LoanToBalance(fin model.FinanceConfig) float64 {
	return BuildCapitalStructure(fin).Loan
}
