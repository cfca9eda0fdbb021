package finance

import (
	"errors"
	"math"
)

// AmortizationEntry is one month of a level-payment loan schedule.
type AmortizationEntry struct {
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"` // end of month
}

// MonthlyPayment is the level payment for an amortizing loan. A zero APR
// degenerates to straight principal division.
func MonthlyPayment(principal, apr float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 {
		return 0
	}
	r := apr / 12.0
	if r == 0 {
		return principal / n
	}
	pow := math.Pow(1.0+r, n)
	return principal * (r * pow) / (pow - 1.0)
}

// AmortizationSchedule generates the first `months` entries of the loan
// schedule. It is the single source of interest/principal splits: both the
// projection engine and the statement builder read from it, so the two layers
// cannot drift apart.
func AmortizationSchedule(principal, apr float64, termYears, months int) ([]AmortizationEntry, error) {
	if principal < 0 {
		return nil, errors.New("principal must be >= 0")
	}
	if termYears <= 0 {
		return nil, errors.New("termYears must be > 0")
	}
	if months <= 0 {
		return nil, errors.New("months must be > 0")
	}

	pmt := MonthlyPayment(principal, apr, termYears)
	r := apr / 12.0
	bal := principal

	schedule := make([]AmortizationEntry, 0, months)
	for m := 0; m < months; m++ {
		interest := bal * r
		principalPay := pmt - interest
		if principalPay < 0 {
			principalPay = 0
		}
		bal -= principalPay
		if bal < 0 {
			bal = 0
		}
		schedule = append(schedule, AmortizationEntry{
			Payment:   pmt,
			Interest:  interest,
			Principal: principalPay,
			Balance:   bal,
		})
	}
	return schedule, nil
}

// DSCR is EBITDA over debt service. Near-zero debt service returns +Inf as a
// sentinel rather than erroring.
func DSCR(ebitda, debtService float64) float64 {
	if debtService <= 1e-9 {
		return math.Inf(1)
	}
	return ebitda / debtService
}
