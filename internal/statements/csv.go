package statements

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WritePnLCSV(path string, rows []PnLRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"revenue_court",
		"revenue_league",
		"revenue_corp",
		"revenue_tourney",
		"revenue_retail",
		"revenue_membership",
		"revenue_total",
		"cogs_variable",
		"cogs_staff",
		"cogs_total",
		"gross_profit",
		"opex_fixed",
		"ebitda",
		"depreciation",
		"ebit",
		"interest",
		"ebt",
		"tax",
		"net_income",
		"nol_balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.Month,
			fmtFloat(r.RevenueCourt),
			fmtFloat(r.RevenueLeague),
			fmtFloat(r.RevenueCorp),
			fmtFloat(r.RevenueTourney),
			fmtFloat(r.RevenueRetail),
			fmtFloat(r.RevenueMembership),
			fmtFloat(r.RevenueTotal),
			fmtFloat(r.COGSVariable),
			fmtFloat(r.COGSStaff),
			fmtFloat(r.COGSTotal),
			fmtFloat(r.GrossProfit),
			fmtFloat(r.OpexFixed),
			fmtFloat(r.EBITDA),
			fmtFloat(r.Depreciation),
			fmtFloat(r.EBIT),
			fmtFloat(r.Interest),
			fmtFloat(r.EBT),
			fmtFloat(r.Tax),
			fmtFloat(r.NetIncome),
			fmtFloat(r.NOLBalance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteBalanceSheetCSV(path string, rows []BalanceSheetRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"cash",
		"ppe_gross",
		"accumulated_depreciation",
		"ppe_net",
		"total_assets",
		"debt_balance",
		"equity",
		"total_liabilities_equity",
		"check",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.Month,
			fmtFloat(r.Cash),
			fmtFloat(r.PPEGross),
			fmtFloat(r.AccumulatedDepreciation),
			fmtFloat(r.PPENet),
			fmtFloat(r.TotalAssets),
			fmtFloat(r.DebtBalance),
			fmtFloat(r.Equity),
			fmtFloat(r.TotalLiabilitiesEquity),
			fmtFloat(r.Check),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
