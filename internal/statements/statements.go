// Package statements builds period-correct financial statements, a monthly
// P&L and a balance-sheet rollforward, from the growth projection. It is a
// second pass over the same rows: the projection decides what the business
// earns and spends; this package adds depreciation, interest, tax with NOL
// carryforward, and the double-entry rollforward.
package statements

import (
	"fmt"
	"math"

	"court-proforma/internal/model"
	"court-proforma/internal/projection"
)

// Tolerances for the balance-sheet identity. Drift below hardDriftLimit is
// absorbed into equity as a plug, with the pre-plug discrepancy kept in Check;
// drift above plugTolerance additionally surfaces as a warning on the result.
// Drift beyond hardDriftLimit indicates a genuine accounting bug and panics.
const (
	ebitdaTolerance = 1.0
	plugTolerance   = 1.0
	hardDriftLimit  = 100.0
)

// PnLRow is one month of the profit & loss statement.
type PnLRow struct {
	Month string `json:"month"`

	RevenueCourt      float64 `json:"revenue_court"`
	RevenueLeague     float64 `json:"revenue_league"`
	RevenueCorp       float64 `json:"revenue_corp"`
	RevenueTourney    float64 `json:"revenue_tourney"`
	RevenueRetail     float64 `json:"revenue_retail"`
	RevenueMembership float64 `json:"revenue_membership"`
	RevenueTotal      float64 `json:"revenue_total"`

	COGSVariable float64 `json:"cogs_variable"`
	COGSStaff    float64 `json:"cogs_staff"`
	COGSTotal    float64 `json:"cogs_total"`
	GrossProfit  float64 `json:"gross_profit"`

	OpexFixed    float64 `json:"opex_fixed"`
	EBITDA       float64 `json:"ebitda"`
	Depreciation float64 `json:"depreciation"`
	EBIT         float64 `json:"ebit"`
	Interest     float64 `json:"interest"`
	EBT          float64 `json:"ebt"`
	Tax          float64 `json:"tax"`
	NetIncome    float64 `json:"net_income"`
	NOLBalance   float64 `json:"nol_balance"`
}

// BalanceSheetRow is the end-of-month balance sheet.
type BalanceSheetRow struct {
	Month string `json:"month"`

	Cash                    float64 `json:"cash"`
	PPEGross                float64 `json:"ppe_gross"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"` // negative, contra-asset
	PPENet                  float64 `json:"ppe_net"`
	TotalAssets             float64 `json:"total_assets"`

	DebtBalance            float64 `json:"debt_balance"`
	Equity                 float64 `json:"equity"`
	TotalLiabilitiesEquity float64 `json:"total_liabilities_equity"`

	// Check is the pre-plug |assets - (liabilities + equity)| discrepancy.
	Check float64 `json:"check"`
}

// YearSummary rolls a statement year up.
type YearSummary struct {
	Revenue   float64 `json:"revenue"`
	EBITDA    float64 `json:"ebitda"`
	NetIncome float64 `json:"net_income"`
	EndCash   float64 `json:"end_cash"`
	EndDebt   float64 `json:"end_debt"`
	EndEquity float64 `json:"end_equity"`
}

// Statements is the full two-year statement set.
type Statements struct {
	PnL          []PnLRow          `json:"pnl"`
	BalanceSheet []BalanceSheetRow `json:"balance_sheet"`
	Summary      struct {
		Y1 YearSummary `json:"y1"`
		Y2 YearSummary `json:"y2"`
	} `json:"summary"`
	Warnings []string `json:"warnings,omitempty"`
}

// Build derives statements from an already-built projection. Interest and
// principal come from the projection's own amortization schedule, so the two
// layers agree by construction.
//
// Two internal cross-checks panic on failure, both signalling bugs rather
// than bad input: the rebuilt EBITDA must match the projection's within $1,
// and the balance-sheet identity must hold within hardDriftLimit pre-plug.
func Build(cfg *model.Config, proj *projection.Projection) *Statements {
	months := proj.Months
	schedule := proj.Schedule

	ppeGross := cfg.Finance.PPEGross()
	depreciationMonthly := cfg.Finance.MonthlyDepreciation()

	accumulatedDepreciation := 0.0
	nolBalance := cfg.Finance.NOLCarryforwardStart
	retainedEarnings := 0.0
	cash := cfg.Finance.WCReserveStart
	debtBalance := cfg.Finance.LoanAmount

	// Paid-in capital funds whatever opening assets debt does not: owner
	// equity and TI allowance net of expensed pre-opening spend. Booking it
	// up front keeps the identity exact, so the plug only ever sees float
	// noise.
	contributedCapital := (cash + ppeGross) - debtBalance

	out := &Statements{
		PnL:          make([]PnLRow, 0, len(months)),
		BalanceSheet: make([]BalanceSheetRow, 0, len(months)),
	}

	for i, m := range months {
		cogs := m.VariableCosts + m.StaffCosts
		grossProfit := m.TotalRev - cogs
		ebitda := grossProfit - m.FixedOpex

		if diff := math.Abs(ebitda - m.EBITDA); diff > ebitdaTolerance {
			panic(fmt.Sprintf("statements: EBITDA mismatch in %s: statement %.2f vs projection %.2f", m.Month, ebitda, m.EBITDA))
		}

		accumulatedDepreciation += depreciationMonthly
		ebit := ebitda - depreciationMonthly

		interest := schedule[i].Interest
		ebt := ebit - interest

		var taxableIncome float64
		if ebt > 0 {
			nolUsed := math.Min(nolBalance, ebt)
			nolBalance -= nolUsed
			taxableIncome = ebt - nolUsed
		} else {
			nolBalance += -ebt
		}
		var tax float64
		if taxableIncome > 0 {
			tax = taxableIncome * cfg.Finance.CorporateTaxRate
		}

		netIncome := ebt - tax
		retainedEarnings += netIncome

		out.PnL = append(out.PnL, PnLRow{
			Month:             m.Month,
			RevenueCourt:      m.CourtRev,
			RevenueLeague:     m.LeagueRev,
			RevenueCorp:       m.CorpRev,
			RevenueTourney:    m.TourneyRev,
			RevenueRetail:     m.RetailRev,
			RevenueMembership: m.MembershipRev,
			RevenueTotal:      m.TotalRev,
			COGSVariable:      m.VariableCosts,
			COGSStaff:         m.StaffCosts,
			COGSTotal:         cogs,
			GrossProfit:       grossProfit,
			OpexFixed:         m.FixedOpex,
			EBITDA:            ebitda,
			Depreciation:      depreciationMonthly,
			EBIT:              ebit,
			Interest:          interest,
			EBT:               ebt,
			Tax:               tax,
			NetIncome:         netIncome,
			NOLBalance:        nolBalance,
		})

		// Balance-sheet rollforward. Operating cash flow adds back the
		// non-cash depreciation; principal retires debt and consumes cash.
		operatingCF := netIncome + depreciationMonthly
		principal := schedule[i].Principal
		debtBalance -= principal
		cash += operatingCF - principal

		ppeNet := ppeGross - accumulatedDepreciation
		totalAssets := cash + ppeNet

		equity := contributedCapital + retainedEarnings
		check := totalAssets - (debtBalance + equity)
		if math.Abs(check) > hardDriftLimit {
			panic(fmt.Sprintf("statements: balance sheet drift $%.2f in %s exceeds hard limit", check, m.Month))
		}
		if math.Abs(check) > plugTolerance {
			out.Warnings = append(out.Warnings, fmt.Sprintf("balance sheet drift $%.2f in %s absorbed into equity", check, m.Month))
		}
		equity += check

		out.BalanceSheet = append(out.BalanceSheet, BalanceSheetRow{
			Month:                   m.Month,
			Cash:                    cash,
			PPEGross:                ppeGross,
			AccumulatedDepreciation: -accumulatedDepreciation,
			PPENet:                  ppeNet,
			TotalAssets:             totalAssets,
			DebtBalance:             debtBalance,
			Equity:                  equity,
			TotalLiabilitiesEquity:  debtBalance + equity,
			Check:                   math.Abs(check),
		})
	}

	half := len(out.PnL) / 2
	out.Summary.Y1 = summarizeYear(out.PnL[:half], out.BalanceSheet[:half])
	out.Summary.Y2 = summarizeYear(out.PnL[half:], out.BalanceSheet[half:])
	return out
}

func summarizeYear(pnl []PnLRow, bs []BalanceSheetRow) YearSummary {
	var y YearSummary
	for _, r := range pnl {
		y.Revenue += r.RevenueTotal
		y.EBITDA += r.EBITDA
		y.NetIncome += r.NetIncome
	}
	if len(bs) > 0 {
		last := bs[len(bs)-1]
		y.EndCash = last.Cash
		y.EndDebt = last.DebtBalance
		y.EndEquity = last.Equity
	}
	return y
}
