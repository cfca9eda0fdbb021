package models

import (
	"court-proforma/internal/analysis"
	"court-proforma/internal/engine"
	"court-proforma/internal/finance"
	"court-proforma/internal/projection"
	"court-proforma/internal/statements"
)

// ComputeResponse wraps one orchestrator result.
type ComputeResponse struct {
	Status   string         `json:"status"`
	Cached   bool           `json:"cached"`
	Result   *engine.Result `json:"result"`
	Warnings []string       `json:"warnings,omitempty"` // finalization warnings (solver clamp etc.)
}

// ProjectionResponse wraps the 24-month projection.
type ProjectionResponse struct {
	Status   string             `json:"status"`
	Summary  projection.Summary `json:"summary"`
	Months   []projection.Row   `json:"months,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
}

// StatementsResponse wraps the statement set.
type StatementsResponse struct {
	Status     string                 `json:"status"`
	Statements *statements.Statements `json:"statements"`
	Warnings   []string               `json:"warnings,omitempty"`
}

// CapitalResponse wraps the sources & uses table.
type CapitalResponse struct {
	Status  string                   `json:"status"`
	Capital finance.CapitalStructure `json:"capital"`
}

// CompareResponse holds one summary per variation, plus the same scenarios
// ranked by revenue density.
type CompareResponse struct {
	Comparison []ComparisonResult           `json:"comparison"`
	Ranking    []analysis.ScenarioPotential `json:"ranking"`
}

// ComparisonResult is the headline numbers for one variation.
type ComparisonResult struct {
	Name            string                `json:"name"`
	Annual          engine.AnnualSnapshot `json:"annual"`
	Density         engine.Density        `json:"density"`
	UtilizedCHYear  float64               `json:"utilized_ch_year"`
	AvailableCHYear float64               `json:"available_ch_year"`
	Warnings        []string              `json:"warnings,omitempty"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
