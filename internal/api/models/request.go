package models

import "encoding/json"

// ComputeRequest runs the weekly/annual orchestrator. Config is a partial
// JSON overlay onto the compiled defaults; omit it to run the baseline model.
type ComputeRequest struct {
	Config  json.RawMessage `json:"config,omitempty"`
	Options ComputeOptions  `json:"options,omitempty"`
}

// ComputeOptions controls response verbosity.
type ComputeOptions struct {
	IncludeDebug bool `json:"include_debug,omitempty"` // include hour-split and slot-pricing debug
}

// ProjectionRequest builds the 24-month growth projection.
type ProjectionRequest struct {
	Config  json.RawMessage   `json:"config,omitempty"`
	Options ProjectionOptions `json:"options,omitempty"`
}

// ProjectionOptions controls response verbosity.
type ProjectionOptions struct {
	IncludeMonths bool `json:"include_months,omitempty"` // include the per-month rows, not just the summary
}

// StatementsRequest builds the P&L and balance sheet.
type StatementsRequest struct {
	Config json.RawMessage `json:"config,omitempty"`
}

// CapitalRequest lays out the sources & uses table and the solved loan.
type CapitalRequest struct {
	Config json.RawMessage `json:"config,omitempty"`
}

// CompareRequest runs the orchestrator across named variations, each a JSON
// overlay applied on top of the base overlay.
type CompareRequest struct {
	BaseConfig json.RawMessage     `json:"base_config,omitempty"`
	Variations []ScenarioVariation `json:"variations" binding:"required,min=1"`
}

// ScenarioVariation is one named config overlay to compare.
type ScenarioVariation struct {
	Name   string          `json:"name" binding:"required"`
	Config json.RawMessage `json:"config,omitempty"`
}
