package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"court-proforma/internal/model"
)

func baseGrowth() model.GrowthConfig {
	return model.GrowthConfig{
		StartYear:    2026,
		StartMonth:   8,
		Months:       24,
		K:            350,
		R:            0.35,
		TMid:         8,
		StartMembers: 50,
	}
}

func TestLogisticMembersBounds(t *testing.T) {
	g := baseGrowth()

	prev := 0.0
	for m := 0; m < g.Months; m++ {
		v := LogisticMembers(m, g)
		assert.GreaterOrEqual(t, v, float64(g.StartMembers))
		assert.LessOrEqual(t, v, float64(g.K))
		assert.GreaterOrEqual(t, v, prev, "membership curve must be non-decreasing")
		prev = v
	}
}

func TestLogisticMembersMidpoint(t *testing.T) {
	g := baseGrowth()

	// At t_mid the raw curve sits at exactly half of K.
	assert.InDelta(t, float64(g.K)/2.0, LogisticMembers(g.TMid, g), 1e-9)
}

func TestLogisticMembersFloor(t *testing.T) {
	g := baseGrowth()

	// Early months sit below the floor and get pulled up to it.
	assert.Equal(t, float64(g.StartMembers), LogisticMembers(0, g))
}

func TestMemberTierCountsSumExactly(t *testing.T) {
	mix := model.TierMix{PctCommunity: 0.20, PctPlayer: 0.60, PctPro: 0.20}

	for _, members := range []int{0, 1, 7, 50, 333, 350} {
		c, p, pro := memberTierCounts(members, mix)
		assert.Equal(t, members, c+p+pro, "members=%d", members)
	}
}

func TestMemberTierCountsNeverNegative(t *testing.T) {
	// A half/half mix rounds both buckets up at odd small counts, which would
	// leave the residual pro bucket negative without the pull-back.
	mix := model.TierMix{PctCommunity: 0.50, PctPlayer: 0.50, PctPro: 0.0}

	for members := 0; members <= 25; members++ {
		c, p, pro := memberTierCounts(members, mix)
		assert.Equal(t, members, c+p+pro, "members=%d", members)
		assert.GreaterOrEqual(t, c, 0, "members=%d", members)
		assert.GreaterOrEqual(t, p, 0, "members=%d", members)
		assert.GreaterOrEqual(t, pro, 0, "members=%d", members)
	}
}
