package engine

import (
	"fmt"

	"court-proforma/internal/model"
)

// RevPACH healthy band for the soft watchlist. Values outside it are recorded
// as warnings on the result, never raised.
const (
	RevPACHWatchLow  = 20.0
	RevPACHWatchHigh = 38.0
)

// WeeklySnapshot holds the steady-state weekly figures for one config.
type WeeklySnapshot struct {
	LeagueBlocks    int     `json:"league_blocks"`
	LeagueSlots     int     `json:"league_slots"`
	LeagueRev       float64 `json:"league_rev"`
	CourtRev        float64 `json:"court_rev"`
	UtilizedPrime   float64 `json:"utilized_prime"`
	UtilizedOffpeak float64 `json:"utilized_offpeak"`
	UtilizedLeague  float64 `json:"utilized_league"`
}

// AnnualSnapshot holds annualized revenue by stream.
type AnnualSnapshot struct {
	LeagueRev   float64 `json:"league_rev"`
	CourtRev    float64 `json:"court_rev"`
	CorpRev     float64 `json:"corp_rev"`
	TourneyRev  float64 `json:"tourney_rev"`
	RetailRev   float64 `json:"retail_rev"`
	VariableRev float64 `json:"variable_rev"`
}

// Density holds capacity-efficiency metrics.
type Density struct {
	RevPACH      float64 `json:"rev_pach"`
	RevPerUtilHr float64 `json:"rev_per_util_hr"`
}

// Meta carries the derived utilization picture for the run.
type Meta struct {
	PrimeShare  float64 `json:"prime_share"`
	PrimeUtil   float64 `json:"prime_util"`
	OffpeakUtil float64 `json:"offpeak_util"`
	OverallUtil float64 `json:"overall_util"`
}

// Result is one full pass of the orchestrator: weekly and annual revenue by
// stream, the capacity allocation behind them, and density metrics. It is a
// pure function of the config; identical input yields identical output.
type Result struct {
	Weekly          WeeklySnapshot     `json:"weekly"`
	Annual          AnnualSnapshot     `json:"annual"`
	AllocWeekly     WeeklyAllocation   `json:"alloc_weekly"`
	Density         Density            `json:"density"`
	AvailableCHYear float64            `json:"available_ch_year"`
	UtilizedCHYear  float64            `json:"utilized_ch_year"`
	PrimeCHWeek     float64            `json:"prime_ch_week"`
	TotalCHWeek     float64            `json:"total_ch_week"`
	CourtDebug      CourtRevenueDebug  `json:"court_debug"`
	LeagueDebug     LeagueRevenueDebug `json:"league_debug"`
	LeagueFit       LeagueCapacity     `json:"league_fit"`
	Meta            Meta               `json:"meta"`
	Warnings        []string           `json:"warnings,omitempty"`
}

// RevPACH is revenue per available court-hour; the denominator floors at 1 so
// an empty facility reads as zero-ish revenue density, not a division error.
func RevPACH(variableRevYear, availableCHYear float64) float64 {
	if availableCHYear < 1.0 {
		availableCHYear = 1.0
	}
	return variableRevYear / availableCHYear
}

// RevPerUtilizedHour is revenue per utilized court-hour, same floor.
func RevPerUtilizedHour(variableRevYear, utilizedCHYear float64) float64 {
	if utilizedCHYear < 1.0 {
		utilizedCHYear = 1.0
	}
	return variableRevYear / utilizedCHYear
}

// Compute runs the full weekly/annual pipeline for one config: league auto-fit,
// capacity allocation, tiered court revenue, league revenue, flat streams, and
// density metrics. It is side-effect-free and cheap enough for the projection
// loop to call once per month.
func Compute(cfg *model.Config) (*Result, error) {
	fit := FitLeagueCapacity(cfg.Facility, cfg.Prime, cfg.League)

	alloc, err := Allocate(cfg.Facility, cfg.Prime, fit.LeagueCHWeek, 0, 0, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("weekly allocation: %w", err)
	}

	courtRevWk, courtDebug := CourtRentalRevenueWeek(
		alloc.OpenPrimeCH, alloc.OpenOffCH,
		cfg.OpenPlay, cfg.MemberMix, cfg.MemberPlans, cfg.Pricing,
	)
	courtRevYear := courtRevWk * 52.0

	slotsWk := LeagueWeeklySlots(cfg.League, fit.WeeklyBlocks, fit.CourtsUsed)
	leagueRevWk, leagueDebug := LeagueRevenueWeek(
		cfg.League, cfg.LeagueParticipants, cfg.LeagueDiscounts, cfg.LeagueTierMix(), slotsWk,
	)
	leagueRevYear := leagueRevWk * float64(cfg.League.ActiveWeeks)

	corpRevYear := CorporateRevenueYear(cfg.Corp)
	tourneyRevYear := TournamentsRevenueYear(cfg.Tourneys)
	retailRevYear := RetailRevenueYear(cfg.Retail)

	variableRevYear := courtRevYear + leagueRevYear + corpRevYear + tourneyRevYear + retailRevYear

	availableCHYear := TotalCourtHoursWeek(cfg.Facility) * 52.0

	utilizedPrimeWk := alloc.OpenPrimeCH * cfg.OpenPlay.UtilPrime
	utilizedOffWk := alloc.OpenOffCH * cfg.OpenPlay.UtilOff
	utilizedLeagueWk := alloc.LeagueCH // league blocks are pre-booked, fully utilized
	utilizedCHYear := (utilizedPrimeWk + utilizedOffWk + utilizedLeagueWk) * 52.0

	res := &Result{
		Weekly: WeeklySnapshot{
			LeagueBlocks:    fit.WeeklyBlocks,
			LeagueSlots:     slotsWk,
			LeagueRev:       leagueRevWk,
			CourtRev:        courtRevWk,
			UtilizedPrime:   utilizedPrimeWk,
			UtilizedOffpeak: utilizedOffWk,
			UtilizedLeague:  utilizedLeagueWk,
		},
		Annual: AnnualSnapshot{
			LeagueRev:   leagueRevYear,
			CourtRev:    courtRevYear,
			CorpRev:     corpRevYear,
			TourneyRev:  tourneyRevYear,
			RetailRev:   retailRevYear,
			VariableRev: variableRevYear,
		},
		AllocWeekly:     alloc,
		AvailableCHYear: availableCHYear,
		UtilizedCHYear:  utilizedCHYear,
		PrimeCHWeek:     alloc.PrimeCH,
		TotalCHWeek:     TotalCourtHoursWeek(cfg.Facility),
		CourtDebug:      courtDebug,
		LeagueDebug:     leagueDebug,
		LeagueFit:       fit,
	}

	res.Density = Density{
		RevPACH:      RevPACH(variableRevYear, availableCHYear),
		RevPerUtilHr: RevPerUtilizedHour(variableRevYear, utilizedCHYear),
	}

	res.Meta = Meta{
		PrimeShare:  PrimeShare(cfg.Facility, cfg.Prime),
		PrimeUtil:   cfg.OpenPlay.UtilPrime,
		OffpeakUtil: cfg.OpenPlay.UtilOff,
	}
	if availableCHYear > 0 {
		res.Meta.OverallUtil = utilizedCHYear / availableCHYear
	}

	for _, adj := range fit.Adjustments {
		res.Warnings = append(res.Warnings, fmt.Sprintf("league capacity auto-fit: %s %d -> %d", adj.Stage, adj.Before, adj.After))
	}
	if rp := res.Density.RevPACH; rp < RevPACHWatchLow || rp > RevPACHWatchHigh {
		res.Warnings = append(res.Warnings, fmt.Sprintf("RevPACH $%.2f outside healthy band [$%.0f, $%.0f]", rp, RevPACHWatchLow, RevPACHWatchHigh))
	}

	return res, nil
}
