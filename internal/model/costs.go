package model

import "errors"

// CostsConfig defines operating cost rates.
// Fixed costs split into rent (LOI-derived, with abatement and its own
// escalator) and non-rent fixed (inflated independently).
type CostsConfig struct {
	FixedMonthlyBase      float64 `yaml:"fixed_monthly_base" json:"fixed_monthly_base"`
	FixedInflationAnnual  float64 `yaml:"fixed_inflation_annual" json:"fixed_inflation_annual"`
	VariablePctOfRevenue  float64 `yaml:"variable_pct_of_variable_rev" json:"variable_pct_of_variable_rev"`
	StaffCostPerUtilizedH float64 `yaml:"staff_cost_per_utilized_ch" json:"staff_cost_per_utilized_ch"`

	// Lease terms. Monthly rent = (BaseRentPSF + CAMPSF) * SquareFeet / 12,
	// escalated annually, zero during the abatement holiday.
	BaseRentPSF          float64 `yaml:"base_rent_psf" json:"base_rent_psf"`
	CAMPSF               float64 `yaml:"cam_psf" json:"cam_psf"`
	SquareFeet           float64 `yaml:"square_feet" json:"square_feet"`
	RentAbatementMonths  int     `yaml:"rent_abatement_months" json:"rent_abatement_months"`
	RentEscalatorAnnual  float64 `yaml:"rent_escalator_annual" json:"rent_escalator_annual"`
}

func (c CostsConfig) Validate() error {
	if c.FixedMonthlyBase < 0 {
		return errors.New("costs.fixed_monthly_base must be >= 0")
	}
	if c.VariablePctOfRevenue < 0 || c.VariablePctOfRevenue > 1 {
		return errors.New("costs.variable_pct_of_variable_rev must be in [0, 1]")
	}
	if c.StaffCostPerUtilizedH < 0 {
		return errors.New("costs.staff_cost_per_utilized_ch must be >= 0")
	}
	if c.SquareFeet <= 0 {
		return errors.New("costs.square_feet must be > 0")
	}
	if c.RentAbatementMonths < 0 {
		return errors.New("costs.rent_abatement_months must be >= 0")
	}
	return nil
}

// MonthlyRentYear1 is the un-escalated monthly rent from the lease terms.
func (c CostsConfig) MonthlyRentYear1() float64 {
	return (c.BaseRentPSF + c.CAMPSF) * c.SquareFeet / 12.0
}
