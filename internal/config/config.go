// Package config loads, validates, and finalizes the engine's configuration
// tree. A YAML file overlays the compiled defaults, so configs only state
// deviations. Finalization runs the post-processing the pipeline expects to
// have happened exactly once: the utilization solver fills the derived
// off-peak utilization, and the loan is sized to balance sources and uses.
// After Finalize the tree is treated as read-only.
package config

import (
	"fmt"
	"os"

	"court-proforma/internal/engine"
	"court-proforma/internal/finance"
	"court-proforma/internal/model"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config over the defaults, validates it, and finalizes it.
// An empty path yields the finalized defaults.
func Load(path string) (*model.Config, []string, error) {
	cfg, err := LoadUnchecked(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	warnings := Finalize(cfg)
	return cfg, warnings, nil
}

// LoadUnchecked loads and overlays config without validating or finalizing.
// Useful for debugging partial configs.
func LoadUnchecked(path string) (*model.Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Finalize runs the one-time post-processing pass: the off-peak utilization is
// solved from the overall target, and the loan amount is sized so funding
// sources equal funding uses. Returns any solver warnings; the caller decides
// how to surface them.
func Finalize(cfg *model.Config) []string {
	var warnings []string

	primeShare := engine.PrimeShare(cfg.Facility, cfg.Prime)
	utilOff, warn := engine.SolveOffpeakUtil(cfg.OpenPlay.TargetOverallUtil, cfg.OpenPlay.UtilPrime, primeShare)
	cfg.OpenPlay.UtilOff = utilOff
	if warn != "" {
		warnings = append(warnings, warn)
	}

	cfg.Finance.LoanAmount = finance.LoanToBalance(cfg.Finance)

	return warnings
}
