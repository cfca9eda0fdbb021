package engine

import "court-proforma/internal/model"

// FitStage identifies which rung of the degradation ladder produced an
// adjustment while fitting the league schedule into prime capacity.
type FitStage string

const (
	FitOK          FitStage = "FIT_OK"
	ReducedCourts  FitStage = "REDUCED_COURTS"
	ReducedFriday  FitStage = "REDUCED_FRIDAY_BLOCKS"
	ReducedWeekday FitStage = "REDUCED_MON_THU_BLOCKS"
	ReducedWeekend FitStage = "REDUCED_WEEKEND_BLOCKS"
)

// FitAdjustment records one applied ladder stage with its before/after values.
type FitAdjustment struct {
	Stage  FitStage `json:"stage"`
	Before int      `json:"before"`
	After  int      `json:"after"`
}

// LeagueCapacity is the auto-fitter's output: the achievable league schedule
// and every reduction that was required to reach it.
type LeagueCapacity struct {
	WeeklyBlocks  int     `json:"weekly_blocks"`
	BlocksMonThu  int     `json:"blocks_mon_thu"` // per Mon-Thu night
	BlocksFri     int     `json:"blocks_fri"`     // per Friday night
	BlocksWeekend int     `json:"blocks_weekend"` // per weekend morning
	CourtsUsed    int     `json:"courts_used"`
	LeagueCHWeek  float64 `json:"league_ch_week"`
	PrimeCHWeek   float64 `json:"prime_ch_week"`

	// Fitted is true when league CH fits within prime CH, whether naturally
	// or after reductions. It is false only in the residual case where every
	// ladder rung is exhausted and a violation remains.
	Fitted      bool            `json:"fitted"`
	Adjustments []FitAdjustment `json:"adjustments,omitempty"`
}

const minCourtsUsed = 2

// FitLeagueCapacity derives the weekly league schedule from the prime windows
// and, if it would overbook prime capacity, degrades it in strict order:
// courts used (floor 2), then Friday blocks, then Mon-Thu blocks, then weekend
// blocks, re-checking fit after each stage. It never errors and never mutates
// the caller's league config.
func FitLeagueCapacity(fac model.Facility, win model.PrimeWindow, lg model.LeagueConfig) LeagueCapacity {
	blockH := lg.BlockHours()

	monThuNights := lg.Weeknights
	if monThuNights > 4 {
		monThuNights = 4
	}
	friNights := lg.Weeknights - monThuNights
	if friNights < 0 {
		friNights = 0
	}

	fit := LeagueCapacity{
		BlocksMonThu:  BlocksPerWindow(win.MonThuHours(), lg.SessionLenH, lg.BufferMin),
		BlocksFri:     BlocksPerWindow(win.FriHours(), lg.SessionLenH, lg.BufferMin),
		BlocksWeekend: BlocksPerWindow(win.WeekendHours(), lg.SessionLenH, lg.BufferMin),
		CourtsUsed:    lg.CourtsUsed,
		PrimeCHWeek:   PrimeCourtHoursWeek(fac, win),
	}
	if monThuNights == 0 {
		fit.BlocksMonThu = 0
	}
	if friNights == 0 {
		fit.BlocksFri = 0
	}
	if lg.WeekendMorns == 0 {
		fit.BlocksWeekend = 0
	}

	recompute := func() {
		fit.WeeklyBlocks = monThuNights*fit.BlocksMonThu + friNights*fit.BlocksFri + lg.WeekendMorns*fit.BlocksWeekend
		fit.LeagueCHWeek = float64(fit.WeeklyBlocks) * blockH * float64(fit.CourtsUsed)
	}
	recompute()

	if fit.LeagueCHWeek <= fit.PrimeCHWeek {
		fit.Fitted = true
		return fit
	}

	// Stage 1: shed courts toward the floor.
	if before := fit.CourtsUsed; before > minCourtsUsed {
		for fit.CourtsUsed > minCourtsUsed && fit.LeagueCHWeek > fit.PrimeCHWeek {
			fit.CourtsUsed--
			recompute()
		}
		fit.Adjustments = append(fit.Adjustments, FitAdjustment{Stage: ReducedCourts, Before: before, After: fit.CourtsUsed})
	}
	if fit.LeagueCHWeek <= fit.PrimeCHWeek {
		fit.Fitted = true
		return fit
	}

	// Stage 2: shed Friday blocks.
	if before := fit.BlocksFri; before > 0 {
		for fit.BlocksFri > 0 && fit.LeagueCHWeek > fit.PrimeCHWeek {
			fit.BlocksFri--
			recompute()
		}
		fit.Adjustments = append(fit.Adjustments, FitAdjustment{Stage: ReducedFriday, Before: before, After: fit.BlocksFri})
	}
	if fit.LeagueCHWeek <= fit.PrimeCHWeek {
		fit.Fitted = true
		return fit
	}

	// Stage 3: shed Mon-Thu blocks.
	if before := fit.BlocksMonThu; before > 0 {
		for fit.BlocksMonThu > 0 && fit.LeagueCHWeek > fit.PrimeCHWeek {
			fit.BlocksMonThu--
			recompute()
		}
		fit.Adjustments = append(fit.Adjustments, FitAdjustment{Stage: ReducedWeekday, Before: before, After: fit.BlocksMonThu})
	}
	if fit.LeagueCHWeek <= fit.PrimeCHWeek {
		fit.Fitted = true
		return fit
	}

	// Stage 4: shed weekend blocks.
	if before := fit.BlocksWeekend; before > 0 {
		for fit.BlocksWeekend > 0 && fit.LeagueCHWeek > fit.PrimeCHWeek {
			fit.BlocksWeekend--
			recompute()
		}
		fit.Adjustments = append(fit.Adjustments, FitAdjustment{Stage: ReducedWeekend, Before: before, After: fit.BlocksWeekend})
	}

	// Residual violation: every rung exhausted (courts at floor, all block
	// counts zero) and league CH still exceeds prime CH. The allocator's
	// invariant check is the backstop that surfaces this.
	fit.Fitted = fit.LeagueCHWeek <= fit.PrimeCHWeek
	return fit
}
