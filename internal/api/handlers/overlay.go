package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"court-proforma/internal/config"
	"court-proforma/internal/model"
)

// buildConfig overlays partial JSON layers onto the compiled defaults, then
// validates and finalizes the result. Later layers win. The returned warnings
// come from finalization (solver clamps).
func buildConfig(overlays ...json.RawMessage) (*model.Config, []string, error) {
	cfg := config.Default()
	for _, raw := range overlays {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, nil, fmt.Errorf("parse config overlay: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	warnings := config.Finalize(&cfg)
	return &cfg, warnings, nil
}

// configKey is the canonical cache key for a finalized config. The whole
// pipeline is deterministic, so identical configs always produce identical
// results and results can be cached by this hash.
func configKey(cfg *model.Config) string {
	raw, err := json.Marshal(cfg)
	if err != nil {
		// Config is a plain value tree; marshalling cannot fail in practice.
		panic(fmt.Sprintf("marshal config for cache key: %v", err))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
