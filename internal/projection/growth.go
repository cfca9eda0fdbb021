package projection

import (
	"math"

	"court-proforma/internal/model"
)

// LogisticMembers evaluates the membership S-curve at month t (0-based):
// K / (1 + e^(-r*(t - t_mid))), floored at the starting member count and
// capped at K. The floor and cap make the series non-decreasing in t.
func LogisticMembers(t int, g model.GrowthConfig) float64 {
	base := float64(g.K) / (1.0 + math.Exp(-g.R*float64(t-g.TMid)))
	if base < float64(g.StartMembers) {
		return float64(g.StartMembers)
	}
	if base > float64(g.K) {
		return float64(g.K)
	}
	return base
}

// memberTierCounts splits a member count across tiers, assigning rounding
// remainder to the pro tier so the counts always sum to members.
func memberTierCounts(members int, mix model.TierMix) (community, player, pro int) {
	community = int(math.Round(float64(members) * mix.PctCommunity))
	player = int(math.Round(float64(members) * mix.PctPlayer))
	pro = members - community - player
	// Round-half-away-from-zero can overshoot on small counts (3 members at a
	// 0.5/0.5 mix rounds both buckets up to 2). Pull the excess back out of
	// the larger bucket so no tier goes negative.
	for pro < 0 {
		if community >= player {
			community--
		} else {
			player--
		}
		pro++
	}
	return
}
