package projection

import (
	"math"

	"court-proforma/internal/model"
)

// FixedOpex is the month's fixed operating cost, split into its rent and
// non-rent components.
type FixedOpex struct {
	Rent    float64 `json:"rent"`
	NonRent float64 `json:"non_rent"`
	Total   float64 `json:"total"`
}

// MonthlyRent computes the lease payment for month (0-based): zero during the
// abatement holiday, the lease-derived base in year one, then compounded by
// the annual escalator each subsequent year.
func MonthlyRent(costs model.CostsConfig, month int) float64 {
	if month < costs.RentAbatementMonths {
		return 0
	}
	base := costs.MonthlyRentYear1()
	year := month / 12
	if year > 0 {
		return base * math.Pow(1.0+costs.RentEscalatorAnnual, float64(year))
	}
	return base
}

// FixedOpexForMonth combines rent with non-rent fixed costs. The non-rent
// portion is the fixed base net of year-one rent, inflated on its own annual
// rate; the two components escalate independently.
func FixedOpexForMonth(costs model.CostsConfig, month int) FixedOpex {
	rent := MonthlyRent(costs, month)

	nonRentBase := costs.FixedMonthlyBase - costs.MonthlyRentYear1()
	if nonRentBase < 0 {
		nonRentBase = 0
	}
	year := month / 12
	nonRent := nonRentBase * math.Pow(1.0+costs.FixedInflationAnnual, float64(year))

	return FixedOpex{Rent: rent, NonRent: nonRent, Total: rent + nonRent}
}

// RentSchedule returns the monthly rent for the full horizon.
func RentSchedule(costs model.CostsConfig, months int) []float64 {
	out := make([]float64, months)
	for m := 0; m < months; m++ {
		out[m] = MonthlyRent(costs, m)
	}
	return out
}
