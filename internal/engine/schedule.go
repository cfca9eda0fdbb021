package engine

import (
	"math"

	"court-proforma/internal/model"
)

// TotalCourtHoursWeek is the facility's full weekly capacity in court-hours.
func TotalCourtHoursWeek(fac model.Facility) float64 {
	return float64(fac.Courts) * fac.HoursPerDay * 7.0
}

// PrimeCourtHoursWeek is the weekly prime-time capacity in court-hours:
// four Mon-Thu nights, one Friday night, and two weekend mornings.
func PrimeCourtHoursWeek(fac model.Facility, win model.PrimeWindow) float64 {
	hours := 4.0*win.MonThuHours() + 1.0*win.FriHours() + 2.0*win.WeekendHours()
	return hours * float64(fac.Courts)
}

// PrimeShare is the prime fraction of total weekly capacity. A zero-capacity
// facility yields 0 rather than dividing by zero.
func PrimeShare(fac model.Facility, win model.PrimeWindow) float64 {
	total := TotalCourtHoursWeek(fac)
	if total <= 0 {
		return 0
	}
	return PrimeCourtHoursWeek(fac, win) / total
}

// BlocksPerWindow counts how many league blocks (session + buffer) fit in a
// prime window.
func BlocksPerWindow(windowHours, sessionLenH float64, bufferMin int) int {
	blockH := sessionLenH + float64(bufferMin)/60.0
	if blockH <= 0 {
		return 0
	}
	return int(math.Floor(windowHours / blockH))
}
