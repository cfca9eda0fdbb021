package model

import (
	"errors"
	"fmt"
)

// GrowthConfig parameterizes the logistic membership ramp.
// members(t) = K / (1 + e^(-r*(t - t_mid))), floored at StartMembers and
// capped at K, so membership is always in [StartMembers, K] and non-decreasing.
type GrowthConfig struct {
	StartYear  int `yaml:"start_year" json:"start_year"`
	StartMonth int `yaml:"start_month" json:"start_month"` // 1-12
	Months     int `yaml:"months" json:"months"`

	K            int     `yaml:"k" json:"k"`
	R            float64 `yaml:"r" json:"r"`
	TMid         int     `yaml:"t_mid" json:"t_mid"` // 0-indexed midpoint month
	StartMembers int     `yaml:"start_members" json:"start_members"`
}

func (g GrowthConfig) Validate() error {
	if g.Months <= 0 {
		return errors.New("growth.months must be > 0")
	}
	if g.K <= 0 {
		return errors.New("growth.k must be > 0")
	}
	if g.StartMembers < 0 || g.StartMembers > g.K {
		return errors.New("growth.start_members must be in [0, k]")
	}
	if g.StartMonth < 1 || g.StartMonth > 12 {
		return errors.New("growth.start_month must be in [1, 12]")
	}
	return nil
}

// MonthLabel returns the YYYY-MM label for month index idx (0-based).
func (g GrowthConfig) MonthLabel(idx int) string {
	y := g.StartYear + (g.StartMonth-1+idx)/12
	m := (g.StartMonth-1+idx)%12 + 1
	return fmt.Sprintf("%04d-%02d", y, m)
}

// Seasonality scales weekly metrics into calendar months.
type Seasonality struct {
	// WeeksPerMonth holds calendar weeks per month, Jan..Dec.
	WeeksPerMonth [12]float64 `yaml:"weeks_per_month" json:"weeks_per_month"`
	// LeagueWeekFractions distributes the league's active weeks across the
	// calendar; normalized so each year sums to LeagueConfig.ActiveWeeks.
	LeagueWeekFractions [12]float64 `yaml:"league_week_fractions" json:"league_week_fractions"`
}

func (s Seasonality) Validate() error {
	var fracSum float64
	for i := 0; i < 12; i++ {
		if s.WeeksPerMonth[i] <= 0 {
			return errors.New("seasonality.weeks_per_month entries must be > 0")
		}
		if s.LeagueWeekFractions[i] < 0 {
			return errors.New("seasonality.league_week_fractions entries must be >= 0")
		}
		fracSum += s.LeagueWeekFractions[i]
	}
	if fracSum <= 0 {
		return errors.New("seasonality.league_week_fractions must sum to > 0")
	}
	return nil
}

// ActiveLeagueWeeks returns the 12 monthly active-league-week counts,
// normalized to total activeWeeks for the year.
func (s Seasonality) ActiveLeagueWeeks(activeWeeks int) [12]float64 {
	var sum float64
	for _, f := range s.LeagueWeekFractions {
		sum += f
	}
	var out [12]float64
	for i, f := range s.LeagueWeekFractions {
		out[i] = f * float64(activeWeeks) / sum
	}
	return out
}
