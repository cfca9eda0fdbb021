package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"court-proforma/internal/model"
)

func baseFinance() model.FinanceConfig {
	return model.FinanceConfig{
		APR:                   0.09,
		TermYears:             10,
		LeaseholdImprovements: 994_000,
		Equipment:             220_000,
		PreOpening:            50_000,
		WCReserveStart:        200_000,
		ContingencyPct:        0.10,
		TIAllowancePSF:        25.0,
		SquareFeet:            17_139,
		OwnerEquity:           200_000,
	}
}

func TestBuildCapitalStructure(t *testing.T) {
	cs := BuildCapitalStructure(baseFinance())

	assert.InDelta(t, 99_400.0, cs.Contingency, 1e-6)
	assert.InDelta(t, 1_563_400.0, cs.TotalUses, 1e-6)
	assert.InDelta(t, 428_475.0, cs.TIAllowance, 1e-6)
	assert.InDelta(t, cs.TotalUses-cs.TIAllowance-cs.OwnerEquity, cs.Loan, 1e-6)
	assert.True(t, cs.Balanced)
	assert.Less(t, cs.Difference, 1.0)
}

func TestLoanShrinksDollarForDollarWithEquity(t *testing.T) {
	fin := baseFinance()
	base := LoanToBalance(fin)

	fin.OwnerEquity += 50_000
	assert.InDelta(t, base-50_000, LoanToBalance(fin), 1e-6)
}

func TestLoanFloorsAtZero(t *testing.T) {
	fin := baseFinance()
	fin.OwnerEquity = 10_000_000

	cs := BuildCapitalStructure(fin)
	assert.Equal(t, 0.0, cs.Loan)
	assert.False(t, cs.Balanced) // equity overshoots uses
}
