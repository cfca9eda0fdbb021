package model

import "errors"

// Facility defines the physical capacity of the building.
// Units:
// - Courts: count
// - HoursPerDay: operating hours per day
type Facility struct {
	Courts      int     `yaml:"courts" json:"courts"`
	HoursPerDay float64 `yaml:"hours_per_day" json:"hours_per_day"`
}

func (f Facility) Validate() error {
	if f.Courts <= 0 {
		return errors.New("facility.courts must be > 0")
	}
	if f.HoursPerDay <= 0 {
		return errors.New("facility.hours_per_day must be > 0")
	}
	return nil
}

// PrimeWindow defines the recurring weekly prime-time split.
// Start/end values are hours of day (e.g. 16.0 = 4pm). Negative or inverted
// windows contribute zero prime hours rather than erroring.
type PrimeWindow struct {
	MonThuStart         float64 `yaml:"mon_thu_start" json:"mon_thu_start"`
	MonThuEnd           float64 `yaml:"mon_thu_end" json:"mon_thu_end"`
	FriStart            float64 `yaml:"fri_start" json:"fri_start"`
	FriEnd              float64 `yaml:"fri_end" json:"fri_end"`
	WeekendMorningHours float64 `yaml:"weekend_morning_hours" json:"weekend_morning_hours"`
}

// MonThuHours returns the nightly prime window length for Mon-Thu, floored at 0.
func (w PrimeWindow) MonThuHours() float64 {
	return max0(w.MonThuEnd - w.MonThuStart)
}

// FriHours returns the Friday prime window length, floored at 0.
func (w PrimeWindow) FriHours() float64 {
	return max0(w.FriEnd - w.FriStart)
}

// WeekendHours returns the weekend-morning window length, floored at 0.
func (w PrimeWindow) WeekendHours() float64 {
	return max0(w.WeekendMorningHours)
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
