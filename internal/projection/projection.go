package projection

import (
	"encoding/json"
	"fmt"
	"math"

	"court-proforma/internal/engine"
	"court-proforma/internal/finance"
	"court-proforma/internal/model"
)

// Row is one month of the projection ledger. Rows are produced once and not
// mutated afterwards.
type Row struct {
	Index   int    `json:"index"`
	Month   string `json:"month"` // YYYY-MM
	Members int    `json:"members"`

	// Revenue by stream, monthly.
	CourtRev      float64 `json:"court_rev"`
	LeagueRev     float64 `json:"league_rev"`
	CorpRev       float64 `json:"corp_rev"`
	TourneyRev    float64 `json:"tourney_rev"`
	RetailRev     float64 `json:"retail_rev"`
	VariableRev   float64 `json:"variable_rev"`
	MembershipRev float64 `json:"membership_rev"`
	TotalRev      float64 `json:"total_rev"`

	// Costs by category, monthly.
	Rent          float64 `json:"rent"`
	NonRentFixed  float64 `json:"non_rent_fixed"`
	FixedOpex     float64 `json:"fixed_opex"`
	VariableCosts float64 `json:"variable_costs"`
	StaffCosts    float64 `json:"staff_costs"`
	TotalOpex     float64 `json:"total_opex"`

	EBITDA      float64 `json:"ebitda"`
	DebtService float64 `json:"debt_service"`
	DSCR        float64 `json:"dscr"`
	CashFlow    float64 `json:"cash_flow"`
	CumCash     float64 `json:"cum_cash"`

	UtilizedCH   float64 `json:"utilized_ch"`
	LeagueWeeks  float64 `json:"league_weeks"`
	WeeksInMonth float64 `json:"weeks_in_month"`
}

// jsonDSCR maps the +Inf DSCR sentinel to null. JSON has no representation
// for infinity, so a zero-debt model would otherwise fail mid-encode.
func jsonDSCR(x float64) *float64 {
	if math.IsInf(x, 1) {
		return nil
	}
	return &x
}

func (r Row) MarshalJSON() ([]byte, error) {
	type row Row
	return json.Marshal(struct {
		row
		DSCR *float64 `json:"dscr"`
	}{row(r), jsonDSCR(r.DSCR)})
}

// YearSummary rolls twelve rows up.
type YearSummary struct {
	VariableRev   float64 `json:"variable_rev"`
	MembershipRev float64 `json:"membership_rev"`
	TotalRev      float64 `json:"total_rev"`
	EBITDA        float64 `json:"ebitda"`
	DebtService   float64 `json:"debt_service"`
	CashFlow      float64 `json:"cash_flow"`
	MinDSCR       float64 `json:"min_dscr"`
	AvgDSCR       float64 `json:"avg_dscr"`
	EndCash       float64 `json:"end_cash"`
}

func (y YearSummary) MarshalJSON() ([]byte, error) {
	type summary YearSummary
	return json.Marshal(struct {
		summary
		MinDSCR *float64 `json:"min_dscr"`
		AvgDSCR *float64 `json:"avg_dscr"`
	}{summary(y), jsonDSCR(y.MinDSCR), jsonDSCR(y.AvgDSCR)})
}

// Summary carries the Y1/Y2 rollups and the first break-even month.
type Summary struct {
	Y1 YearSummary `json:"y1"`
	Y2 YearSummary `json:"y2"`
	// BreakEvenMonth is the label of the first month with EBITDA >= 0, empty
	// if the horizon never breaks even.
	BreakEvenMonth string `json:"break_even_month,omitempty"`
}

// Projection is the full growth projection: one row per month plus rollups,
// and the loan schedule the rows drew their debt service from. The statement
// builder reads the same schedule so interest never diverges between layers.
type Projection struct {
	Months   []Row                       `json:"months"`
	Summary  Summary                     `json:"summary"`
	Schedule []finance.AmortizationEntry `json:"-"`
}

// Build runs the month-by-month projection: logistic membership, ramped
// operating levers, seasonality-scaled revenue, cost buildup, amortized debt
// service, and running cash. The only state carried across months is the cash
// accumulator; everything else is recomputed from a fresh ramped config.
func Build(cfg *model.Config) (*Projection, error) {
	months := cfg.Growth.Months
	schedule, err := finance.AmortizationSchedule(cfg.Finance.LoanAmount, cfg.Finance.APR, cfg.Finance.TermYears, months)
	if err != nil {
		return nil, fmt.Errorf("amortization schedule: %w", err)
	}

	leagueWeeks := cfg.Seasonality.ActiveLeagueWeeks(cfg.League.ActiveWeeks)

	rows := make([]Row, 0, months)
	cumCash := cfg.Finance.WCReserveStart

	for t := 0; t < months; t++ {
		cal := (cfg.Growth.StartMonth - 1 + t) % 12 // calendar month, 0=Jan
		wks := cfg.Seasonality.WeeksPerMonth[cal]
		lwks := leagueWeeks[cal]

		members := int(math.Round(LogisticMembers(t, cfg.Growth)))

		cfgM := RampConfig(*cfg, t)
		res, err := engine.Compute(&cfgM)
		if err != nil {
			return nil, fmt.Errorf("month %d compute: %w", t, err)
		}

		// Weekly -> monthly: court rentals scale by calendar weeks, leagues
		// by active league weeks, and the flat streams smooth at annual/12.
		courtRev := res.Weekly.CourtRev * wks
		leagueRev := res.Weekly.LeagueRev * lwks
		corpRev := res.Annual.CorpRev / 12.0
		tourneyRev := res.Annual.TourneyRev / 12.0
		retailRev := res.Annual.RetailRev / 12.0
		variableRev := courtRev + leagueRev + corpRev + tourneyRev + retailRev

		community, player, pro := memberTierCounts(members, cfg.MemberMix)
		membershipRev := float64(community)*cfg.MemberPlans.CommunityMonthlyFee +
			float64(player)*cfg.MemberPlans.PlayerMonthlyFee +
			float64(pro)*cfg.MemberPlans.ProMonthlyFee

		totalRev := variableRev + membershipRev

		fixed := FixedOpexForMonth(cfg.Costs, t)
		utilizedCH := res.UtilizedCHYear / 52.0 * wks
		variableCosts := cfg.Costs.VariablePctOfRevenue * variableRev
		staffCosts := cfg.Costs.StaffCostPerUtilizedH * utilizedCH
		totalOpex := fixed.Total + variableCosts + staffCosts

		ebitda := totalRev - totalOpex
		debtService := schedule[t].Payment
		cashFlow := ebitda - debtService
		cumCash += cashFlow

		rows = append(rows, Row{
			Index:   t,
			Month:   cfg.Growth.MonthLabel(t),
			Members: members,

			CourtRev:      courtRev,
			LeagueRev:     leagueRev,
			CorpRev:       corpRev,
			TourneyRev:    tourneyRev,
			RetailRev:     retailRev,
			VariableRev:   variableRev,
			MembershipRev: membershipRev,
			TotalRev:      totalRev,

			Rent:          fixed.Rent,
			NonRentFixed:  fixed.NonRent,
			FixedOpex:     fixed.Total,
			VariableCosts: variableCosts,
			StaffCosts:    staffCosts,
			TotalOpex:     totalOpex,

			EBITDA:      ebitda,
			DebtService: debtService,
			DSCR:        finance.DSCR(ebitda, debtService),
			CashFlow:    cashFlow,
			CumCash:     cumCash,

			UtilizedCH:   utilizedCH,
			LeagueWeeks:  lwks,
			WeeksInMonth: wks,
		})
	}

	proj := &Projection{Months: rows, Schedule: schedule}
	proj.Summary = summarize(rows)
	return proj, nil
}

func summarize(rows []Row) Summary {
	var s Summary
	half := len(rows) / 2
	s.Y1 = rollup(rows[:half])
	s.Y2 = rollup(rows[half:])
	for _, r := range rows {
		if r.EBITDA >= 0 {
			s.BreakEvenMonth = r.Month
			break
		}
	}
	return s
}

func rollup(rows []Row) YearSummary {
	var y YearSummary
	if len(rows) == 0 {
		return y
	}
	y.MinDSCR = math.Inf(1)
	for _, r := range rows {
		y.VariableRev += r.VariableRev
		y.MembershipRev += r.MembershipRev
		y.TotalRev += r.TotalRev
		y.EBITDA += r.EBITDA
		y.DebtService += r.DebtService
		y.CashFlow += r.CashFlow
		y.AvgDSCR += r.DSCR
		if r.DSCR < y.MinDSCR {
			y.MinDSCR = r.DSCR
		}
	}
	y.AvgDSCR /= float64(len(rows))
	y.EndCash = rows[len(rows)-1].CumCash
	return y
}
