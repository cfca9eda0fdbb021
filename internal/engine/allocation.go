package engine

import (
	"fmt"

	"court-proforma/internal/model"
)

const allocEpsilon = 1e-6

// WeeklyAllocation partitions weekly court-hours across demand streams.
// All figures are court-hours per week.
type WeeklyAllocation struct {
	PrimeCH     float64 `json:"prime_ch"`
	OffCH       float64 `json:"off_ch"`
	LeagueCH    float64 `json:"league_ch"`
	OpenPrimeCH float64 `json:"open_prime_ch"`
	OpenOffCH   float64 `json:"open_off_ch"`
}

// Allocate carves open-play capacity out of what leagues, corporate blocks,
// and tournaments leave behind. League time is prime-only; corporate and
// tournament blocks may consume either regime.
//
// A league allocation exceeding prime capacity, or a negative open figure
// beyond float tolerance, is a logic error upstream (the auto-fitter should
// have prevented it) and is returned as an error rather than clamped away.
func Allocate(fac model.Facility, win model.PrimeWindow, leagueCH float64,
	corpPrimeCH, corpOffCH, tourneyPrimeCH, tourneyOffCH float64) (WeeklyAllocation, error) {

	primeCH := PrimeCourtHoursWeek(fac, win)
	totalCH := TotalCourtHoursWeek(fac)
	offCH := totalCH - primeCH

	if leagueCH > primeCH+allocEpsilon {
		return WeeklyAllocation{}, fmt.Errorf("allocation invariant violated: league %.2f ch/wk exceeds prime %.2f ch/wk", leagueCH, primeCH)
	}

	openPrime := primeCH - leagueCH - corpPrimeCH - tourneyPrimeCH
	openOff := offCH - corpOffCH - tourneyOffCH
	if openPrime < -allocEpsilon {
		return WeeklyAllocation{}, fmt.Errorf("allocation invariant violated: open prime %.2f ch/wk is negative", openPrime)
	}
	if openOff < -allocEpsilon {
		return WeeklyAllocation{}, fmt.Errorf("allocation invariant violated: open off-peak %.2f ch/wk is negative", openOff)
	}

	if openPrime < 0 {
		openPrime = 0
	}
	if openOff < 0 {
		openOff = 0
	}

	return WeeklyAllocation{
		PrimeCH:     primeCH,
		OffCH:       offCH,
		LeagueCH:    leagueCH,
		OpenPrimeCH: openPrime,
		OpenOffCH:   openOff,
	}, nil
}
