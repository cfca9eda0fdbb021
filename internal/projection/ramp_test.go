package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"court-proforma/internal/config"
)

func TestRampConfigDoesNotMutateBase(t *testing.T) {
	base := config.Default()
	orig := base

	_ = RampConfig(base, 0)

	assert.Equal(t, orig, base)
}

func TestRampConfigMonthOne(t *testing.T) {
	base := config.Default()

	cfg := RampConfig(base, 0)

	// factor = 1/6 in the opening month.
	assert.Equal(t, 1, cfg.League.Weeknights)
	assert.Equal(t, 1, cfg.League.CourtsUsed)
	assert.InDelta(t, 0.65, cfg.League.FillRate, 1e-9)
	assert.Less(t, cfg.OpenPlay.UtilPrime, base.OpenPlay.UtilPrime)
}

func TestRampConfigFullStrength(t *testing.T) {
	base := config.Default()

	for _, m := range []int{5, 6, 12, 23} {
		cfg := RampConfig(base, m)
		assert.Equal(t, base.League.Weeknights, cfg.League.Weeknights, "month %d", m)
		assert.Equal(t, base.League.CourtsUsed, cfg.League.CourtsUsed, "month %d", m)
		assert.InDelta(t, base.League.FillRate, cfg.League.FillRate, 1e-9, "month %d", m)
		assert.InDelta(t, base.OpenPlay.UtilPrime, cfg.OpenPlay.UtilPrime, 1e-9, "month %d", m)
		assert.InDelta(t, base.OpenPlay.UtilOff, cfg.OpenPlay.UtilOff, 1e-9, "month %d", m)
	}
}

func TestRampConfigMonotoneLevers(t *testing.T) {
	base := config.Default()

	prev := RampConfig(base, 0)
	for m := 1; m < 6; m++ {
		cur := RampConfig(base, m)
		assert.GreaterOrEqual(t, cur.League.FillRate, prev.League.FillRate)
		assert.GreaterOrEqual(t, cur.OpenPlay.UtilPrime, prev.OpenPlay.UtilPrime)
		prev = cur
	}
}
