package model

import "errors"

// LeagueConfig describes the desired structured-league schedule.
// The capacity auto-fitter may reduce CourtsUsed and per-window block counts,
// but only on its own working copy; the caller's value is never mutated.
// Units:
// - SessionLenH: hours per league session
// - BufferMin: changeover minutes between sessions
// - PricePrimeSlot6Wk: $ per player for a 6-week slot
type LeagueConfig struct {
	SessionLenH       float64 `yaml:"session_len_h" json:"session_len_h"`
	BufferMin         int     `yaml:"buffer_min" json:"buffer_min"`
	Weeknights        int     `yaml:"weeknights" json:"weeknights"`
	WeekendMorns      int     `yaml:"weekend_morns" json:"weekend_morns"`
	CourtsUsed        int     `yaml:"courts_used" json:"courts_used"`
	PlayersPerCourt   int     `yaml:"players_per_court" json:"players_per_court"`
	FillRate          float64 `yaml:"fill_rate" json:"fill_rate"`
	ActiveWeeks       int     `yaml:"active_weeks" json:"active_weeks"`
	PricePrimeSlot6Wk float64 `yaml:"price_prime_slot_6wk" json:"price_prime_slot_6wk"`
	PriceOffSlot6Wk   float64 `yaml:"price_off_slot_6wk" json:"price_off_slot_6wk"`
}

// BlockHours is the full footprint of one league block: session plus buffer.
func (l LeagueConfig) BlockHours() float64 {
	return l.SessionLenH + float64(l.BufferMin)/60.0
}

func (l LeagueConfig) Validate() error {
	if l.SessionLenH <= 0 {
		return errors.New("league.session_len_h must be > 0")
	}
	if l.BufferMin < 0 {
		return errors.New("league.buffer_min must be >= 0")
	}
	if l.CourtsUsed <= 0 {
		return errors.New("league.courts_used must be > 0")
	}
	if l.PlayersPerCourt <= 0 {
		return errors.New("league.players_per_court must be > 0")
	}
	if l.FillRate < 0 || l.FillRate > 1 {
		return errors.New("league.fill_rate must be in [0, 1]")
	}
	if l.ActiveWeeks <= 0 || l.ActiveWeeks > 52 {
		return errors.New("league.active_weeks must be in (0, 52]")
	}
	return nil
}

// CorpConfig is a flat recurring-revenue generator for corporate events.
type CorpConfig struct {
	PrimeRatePerCourt float64 `yaml:"prime_rate_per_court" json:"prime_rate_per_court"`
	OffRatePerCourt   float64 `yaml:"off_rate_per_court" json:"off_rate_per_court"`
	EventsPerMonth    int     `yaml:"events_per_month" json:"events_per_month"`
	HoursPerEvent     float64 `yaml:"hours_per_event" json:"hours_per_event"`
	CourtsUsed        int     `yaml:"courts_used" json:"courts_used"`
	// ExtraEventsPerYear adds off-peak events on top of the monthly cadence.
	ExtraEventsPerYear int `yaml:"extra_events_per_year" json:"extra_events_per_year"`
}

// Tournaments is a flat quarterly revenue stream with a sponsorship take.
type Tournaments struct {
	PerQuarterRevenue float64 `yaml:"per_quarter_revenue" json:"per_quarter_revenue"`
	SponsorshipShare  float64 `yaml:"sponsorship_share" json:"sponsorship_share"`
}

// Retail is pro-shop revenue: monthly sales at a gross margin, shared.
type Retail struct {
	MonthlySales float64 `yaml:"monthly_sales" json:"monthly_sales"`
	GrossMargin  float64 `yaml:"gross_margin" json:"gross_margin"`
	RevenueShare float64 `yaml:"revenue_share" json:"revenue_share"`
}
