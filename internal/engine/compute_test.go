package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"court-proforma/internal/config"
	"court-proforma/internal/engine"
	"court-proforma/internal/model"
)

func finalizedDefaults(t *testing.T) *model.Config {
	t.Helper()
	cfg := config.Default()
	config.Finalize(&cfg)
	return &cfg
}

func TestComputeDefaults(t *testing.T) {
	cfg := finalizedDefaults(t)

	res, err := engine.Compute(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 148.0, res.PrimeCHWeek, 1e-9)
	assert.InDelta(t, 392.0, res.TotalCHWeek, 1e-9)
	assert.InDelta(t, 0.3776, res.Meta.PrimeShare, 0.0001)

	assert.Equal(t, 14, res.Weekly.LeagueBlocks)
	assert.Equal(t, 224, res.Weekly.LeagueSlots)
	assert.True(t, res.LeagueFit.Fitted)

	sum := res.Annual.CourtRev + res.Annual.LeagueRev + res.Annual.CorpRev +
		res.Annual.TourneyRev + res.Annual.RetailRev
	assert.InDelta(t, sum, res.Annual.VariableRev, 1e-6)

	assert.InDelta(t, 392.0*52.0, res.AvailableCHYear, 1e-9)
	assert.InDelta(t, res.Annual.VariableRev/res.AvailableCHYear, res.Density.RevPACH, 1e-9)
	assert.Greater(t, res.UtilizedCHYear, 0.0)
	assert.LessOrEqual(t, res.UtilizedCHYear, res.AvailableCHYear)
}

func TestComputeIsDeterministic(t *testing.T) {
	cfg := finalizedDefaults(t)

	a, err := engine.Compute(cfg)
	require.NoError(t, err)
	b, err := engine.Compute(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeSurfacesFitAdjustments(t *testing.T) {
	cfg := finalizedDefaults(t)
	cfg.League.CourtsUsed = 12 // forces the fitter to shed courts

	res, err := engine.Compute(cfg)
	require.NoError(t, err)

	require.NotEmpty(t, res.LeagueFit.Adjustments)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "league capacity auto-fit") {
			found = true
		}
	}
	assert.True(t, found, "expected an auto-fit warning, got %v", res.Warnings)
}
