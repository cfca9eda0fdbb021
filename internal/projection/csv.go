package projection

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"court-proforma/internal/model"
)

func WriteProjectionCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"month",
		"members",
		"court_rev",
		"league_rev",
		"corp_rev",
		"tourney_rev",
		"retail_rev",
		"variable_rev",
		"membership_rev",
		"total_rev",
		"rent",
		"non_rent_fixed",
		"fixed_opex",
		"variable_costs",
		"staff_costs",
		"total_opex",
		"ebitda",
		"debt_service",
		"dscr",
		"cash_flow",
		"cum_cash",
		"utilized_ch",
		"league_weeks",
		"weeks_in_month",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			r.Month,
			strconv.Itoa(r.Members),
			fmtFloat(r.CourtRev),
			fmtFloat(r.LeagueRev),
			fmtFloat(r.CorpRev),
			fmtFloat(r.TourneyRev),
			fmtFloat(r.RetailRev),
			fmtFloat(r.VariableRev),
			fmtFloat(r.MembershipRev),
			fmtFloat(r.TotalRev),
			fmtFloat(r.Rent),
			fmtFloat(r.NonRentFixed),
			fmtFloat(r.FixedOpex),
			fmtFloat(r.VariableCosts),
			fmtFloat(r.StaffCosts),
			fmtFloat(r.TotalOpex),
			fmtFloat(r.EBITDA),
			fmtFloat(r.DebtService),
			fmtDSCR(r.DSCR),
			fmtFloat(r.CashFlow),
			fmtFloat(r.CumCash),
			fmtFloat(r.UtilizedCH),
			fmtFloat(r.LeagueWeeks),
			fmtFloat(r.WeeksInMonth),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteRentScheduleCSV exports the lease payment per month over the full
// horizon, with abatement and escalation applied.
func WriteRentScheduleCSV(path string, cfg *model.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"month", "rent"}); err != nil {
		return err
	}
	for m, rent := range RentSchedule(cfg.Costs, cfg.Growth.Months) {
		if err := w.Write([]string{cfg.Growth.MonthLabel(m), fmtFloat(rent)}); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// fmtDSCR keeps the +Inf sentinel readable in exported files.
func fmtDSCR(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	return strconv.FormatFloat(x, 'f', 4, 64)
}
