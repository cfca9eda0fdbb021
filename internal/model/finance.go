package model

import "errors"

// FinanceConfig carries the capital structure, loan terms, depreciation
// schedules, and tax treatment.
// LoanAmount is solved during config finalization so that funding sources
// equal funding uses; any user-provided value is overwritten.
type FinanceConfig struct {
	LoanAmount float64 `yaml:"loan_amount" json:"loan_amount"`
	APR        float64 `yaml:"apr" json:"apr"`
	TermYears  int     `yaml:"term_years" json:"term_years"`

	// Uses.
	LeaseholdImprovements float64 `yaml:"leasehold_improvements" json:"leasehold_improvements"`
	Equipment             float64 `yaml:"equipment" json:"equipment"`
	FFESignage            float64 `yaml:"ffe_signage" json:"ffe_signage"`
	PreOpening            float64 `yaml:"pre_opening" json:"pre_opening"`
	WCReserveStart        float64 `yaml:"wc_reserve_start" json:"wc_reserve_start"`
	ContingencyPct        float64 `yaml:"contingency_pct" json:"contingency_pct"`

	// Sources other than the loan.
	TIAllowancePSF float64 `yaml:"ti_allowance_psf" json:"ti_allowance_psf"`
	SquareFeet     float64 `yaml:"square_feet" json:"square_feet"`
	OwnerEquity    float64 `yaml:"owner_equity" json:"owner_equity"`

	// Straight-line depreciation terms.
	DepreciationYearsLeasehold int `yaml:"depreciation_years_leasehold" json:"depreciation_years_leasehold"`
	DepreciationYearsEquipment int `yaml:"depreciation_years_equipment" json:"depreciation_years_equipment"`

	CorporateTaxRate     float64 `yaml:"corporate_tax_rate" json:"corporate_tax_rate"`
	NOLCarryforwardStart float64 `yaml:"nol_carryforward_start" json:"nol_carryforward_start"`
}

func (f FinanceConfig) Validate() error {
	if f.APR < 0 {
		return errors.New("finance.apr must be >= 0")
	}
	if f.TermYears <= 0 {
		return errors.New("finance.term_years must be > 0")
	}
	if f.LeaseholdImprovements < 0 || f.Equipment < 0 {
		return errors.New("finance capex amounts must be >= 0")
	}
	if f.DepreciationYearsLeasehold <= 0 || f.DepreciationYearsEquipment <= 0 {
		return errors.New("finance depreciation terms must be > 0 years")
	}
	if f.CorporateTaxRate < 0 || f.CorporateTaxRate > 1 {
		return errors.New("finance.corporate_tax_rate must be in [0, 1]")
	}
	if f.NOLCarryforwardStart < 0 {
		return errors.New("finance.nol_carryforward_start must be >= 0")
	}
	return nil
}

// PPEGross is the depreciable asset base placed in service at open.
func (f FinanceConfig) PPEGross() float64 {
	return f.LeaseholdImprovements + f.Equipment
}

// MonthlyDepreciation is constant straight-line depreciation across both
// asset classes.
func (f FinanceConfig) MonthlyDepreciation() float64 {
	leasehold := f.LeaseholdImprovements / float64(f.DepreciationYearsLeasehold*12)
	equipment := f.Equipment / float64(f.DepreciationYearsEquipment*12)
	return leasehold + equipment
}
