package statements

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"court-proforma/internal/config"
	"court-proforma/internal/model"
	"court-proforma/internal/projection"
)

func buildDefaults(t *testing.T) (*model.Config, *projection.Projection) {
	t.Helper()
	cfg := config.Default()
	config.Finalize(&cfg)
	proj, err := projection.Build(&cfg)
	require.NoError(t, err)
	return &cfg, proj
}

func TestBuildBalanceSheetIdentityHolds(t *testing.T) {
	cfg, proj := buildDefaults(t)

	stmts := Build(cfg, proj)
	require.Len(t, stmts.BalanceSheet, 24)
	assert.Empty(t, stmts.Warnings, "drift on the default model should be float noise only")

	for _, r := range stmts.BalanceSheet {
		postPlug := r.TotalAssets - r.TotalLiabilitiesEquity
		assert.InDelta(t, 0.0, postPlug, 1.0, "month %s", r.Month)
		assert.Less(t, r.Check, 1.0, "pre-plug drift should be float noise in %s", r.Month)
		assert.InDelta(t, r.PPEGross+r.AccumulatedDepreciation, r.PPENet, 1e-6)
	}
}

func TestBuildPnLArithmetic(t *testing.T) {
	cfg, proj := buildDefaults(t)

	stmts := Build(cfg, proj)
	require.Len(t, stmts.PnL, 24)

	dep := cfg.Finance.MonthlyDepreciation()
	for i, r := range stmts.PnL {
		assert.InDelta(t, r.COGSVariable+r.COGSStaff, r.COGSTotal, 1e-9)
		assert.InDelta(t, r.RevenueTotal-r.COGSTotal, r.GrossProfit, 1e-9)
		assert.InDelta(t, r.GrossProfit-r.OpexFixed, r.EBITDA, 1e-9)
		assert.InDelta(t, dep, r.Depreciation, 1e-9)
		assert.InDelta(t, r.EBITDA-r.Depreciation, r.EBIT, 1e-9)
		assert.InDelta(t, r.EBIT-r.Interest, r.EBT, 1e-9)
		assert.InDelta(t, r.EBT-r.Tax, r.NetIncome, 1e-9)
		assert.InDelta(t, proj.Schedule[i].Interest, r.Interest, 1e-9,
			"interest must come from the shared amortization schedule")

		// Rebuilt EBITDA agrees with the projection's.
		assert.InDelta(t, proj.Months[i].EBITDA, r.EBITDA, 1.0)
	}
}

func TestBuildNOLShieldsEarlyProfits(t *testing.T) {
	cfg, proj := buildDefaults(t)

	stmts := Build(cfg, proj)

	nol := cfg.Finance.NOLCarryforwardStart
	for _, r := range stmts.PnL {
		if r.EBT <= 0 {
			assert.Equal(t, 0.0, r.Tax, "losses are never taxed (%s)", r.Month)
			assert.InDelta(t, nol-r.EBT, r.NOLBalance, 1e-6, "losses accrue to the NOL (%s)", r.Month)
		} else {
			used := math.Min(nol, r.EBT)
			assert.InDelta(t, nol-used, r.NOLBalance, 1e-6, "month %s", r.Month)
			assert.InDelta(t, (r.EBT-used)*cfg.Finance.CorporateTaxRate, r.Tax, 1e-6, "month %s", r.Month)
		}
		nol = r.NOLBalance
	}
}

func TestBuildDebtAmortizes(t *testing.T) {
	cfg, proj := buildDefaults(t)

	stmts := Build(cfg, proj)

	prev := cfg.Finance.LoanAmount
	for i, r := range stmts.BalanceSheet {
		assert.InDelta(t, prev-proj.Schedule[i].Principal, r.DebtBalance, 1e-6)
		prev = r.DebtBalance
	}
	assert.InDelta(t, proj.Schedule[23].Balance, stmts.BalanceSheet[23].DebtBalance, 1e-6)
}

func TestBuildPanicsOnEBITDAMismatch(t *testing.T) {
	cfg, proj := buildDefaults(t)
	proj.Months[3].EBITDA += 500.0 // corrupt the cross-check input

	assert.Panics(t, func() { Build(cfg, proj) })
}

func TestBuildYearSummaries(t *testing.T) {
	cfg, proj := buildDefaults(t)

	stmts := Build(cfg, proj)

	var y1NI float64
	for _, r := range stmts.PnL[:12] {
		y1NI += r.NetIncome
	}
	assert.InDelta(t, y1NI, stmts.Summary.Y1.NetIncome, 1e-6)
	assert.Equal(t, stmts.BalanceSheet[11].Cash, stmts.Summary.Y1.EndCash)
	assert.Equal(t, stmts.BalanceSheet[23].Equity, stmts.Summary.Y2.EndEquity)
}
