package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	// $1,200,000 at 9% over 10 years.
	pmt := MonthlyPayment(1_200_000, 0.09, 10)

	assert.InDelta(t, 15201.0, pmt, 1.0)
}

func TestMonthlyPaymentZeroAPR(t *testing.T) {
	pmt := MonthlyPayment(120_000, 0.0, 10)

	assert.InDelta(t, 1000.0, pmt, 1e-9)
}

func TestAmortizationSchedule(t *testing.T) {
	sched, err := AmortizationSchedule(1_200_000, 0.09, 10, 24)
	require.NoError(t, err)
	require.Len(t, sched, 24)

	first := sched[0]
	assert.InDelta(t, 1_200_000*0.09/12.0, first.Interest, 1e-6)
	assert.InDelta(t, first.Payment-first.Interest, first.Principal, 1e-9)
	assert.InDelta(t, 1_200_000-first.Principal, first.Balance, 1e-6)

	// Balance declines; interest share falls, principal share rises.
	for i := 1; i < len(sched); i++ {
		assert.Less(t, sched[i].Balance, sched[i-1].Balance)
		assert.Less(t, sched[i].Interest, sched[i-1].Interest)
		assert.Greater(t, sched[i].Principal, sched[i-1].Principal)
		assert.InDelta(t, sched[i].Payment, sched[i].Interest+sched[i].Principal, 1e-9)
	}
}

func TestAmortizationScheduleFullTermPaysOff(t *testing.T) {
	sched, err := AmortizationSchedule(500_000, 0.07, 5, 60)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, sched[59].Balance, 0.01)
}

func TestAmortizationScheduleValidation(t *testing.T) {
	_, err := AmortizationSchedule(-1, 0.09, 10, 24)
	assert.Error(t, err)

	_, err = AmortizationSchedule(100, 0.09, 0, 24)
	assert.Error(t, err)

	_, err = AmortizationSchedule(100, 0.09, 10, 0)
	assert.Error(t, err)
}

func TestDSCR(t *testing.T) {
	assert.InDelta(t, 2.0, DSCR(30_000, 15_000), 1e-9)
	assert.True(t, math.IsInf(DSCR(30_000, 0), 1))
	assert.True(t, math.IsInf(DSCR(-5_000, 0), 1))
}
