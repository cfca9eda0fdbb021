package projection

import (
	"math"

	"court-proforma/internal/model"
)

// rampMonths is how long operating levers take to reach their configured
// targets after opening.
const rampMonths = 6.0

// RampConfig returns a copy of the base config with league and open-play
// levers scaled for month t (0-based): a linear ramp toward targets over the
// first six months, full strength afterwards. The base config is never
// mutated; the returned value is an independent copy.
func RampConfig(base model.Config, t int) model.Config {
	cfg := base // value copy; all config fields are value types

	factor := (float64(t) + 1.0) / rampMonths
	if factor > 1.0 {
		factor = 1.0
	}

	cfg.League.Weeknights = atLeast(1, int(math.Round(float64(base.League.Weeknights)*factor)))
	cfg.League.CourtsUsed = atLeast(1, int(math.Round(float64(base.League.CourtsUsed)*factor)))

	fill := 0.6 + (base.League.FillRate-0.6)*factor
	if fill < 0.5 {
		fill = 0.5
	}
	cfg.League.FillRate = fill

	cfg.OpenPlay.UtilPrime = base.OpenPlay.UtilPrime * (0.6 + 0.4*factor)
	cfg.OpenPlay.UtilOff = base.OpenPlay.UtilOff * (0.7 + 0.3*factor)

	return cfg
}

func atLeast(floor, v int) int {
	if v < floor {
		return floor
	}
	return v
}
