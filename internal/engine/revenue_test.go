package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"court-proforma/internal/model"
)

func defaultMix() model.TierMix {
	return model.TierMix{PctCommunity: 0.20, PctPlayer: 0.60, PctPro: 0.20}
}

func TestPerCourtRate(t *testing.T) {
	assert.InDelta(t, 56.0, PerCourtRate(14.0, 4), 1e-9)
	assert.InDelta(t, 44.0, PerCourtRate(11.0, 4), 1e-9)

	// Dividing back recovers the per-person rate exactly.
	assert.Equal(t, 14.0, PerCourtRate(14.0, 4)/4.0)
}

func TestTierPerCourtRates(t *testing.T) {
	mp := model.MemberPlans{
		CommunityPrimePP: 14.0,
		CommunityOffPP:   11.0,
		PlayerPrimePP:    9.0,
		PlayersPerCourt:  4,
	}

	rates := TierPerCourtRates(mp)

	assert.InDelta(t, 56.0, rates.Community.Prime, 1e-9)
	assert.InDelta(t, 44.0, rates.Community.Off, 1e-9)
	assert.InDelta(t, 36.0, rates.Player.Prime, 1e-9)
	assert.Equal(t, 0.0, rates.Player.Off) // included in dues
	assert.Equal(t, 0.0, rates.Pro.Prime)
}

func TestCourtRentalRevenueWeek(t *testing.T) {
	op := model.OpenPlay{
		UtilPrime:        0.5,
		UtilOff:          0.5,
		MemberSharePrime: 1.0,
		MemberShareOff:   0.0,
	}
	mix := model.TierMix{PctCommunity: 1.0}
	mp := model.MemberPlans{CommunityPrimePP: 14.0, CommunityOffPP: 11.0, PlayersPerCourt: 4}
	rack := model.Pricing{NMPrimePerCourt: 65.0, NMOffPerCourt: 56.0}

	total, d := CourtRentalRevenueWeek(100.0, 200.0, op, mix, mp, rack)

	// 50 member prime CH at $56 + 100 non-member off CH at $56.
	assert.InDelta(t, 50.0, d.UtilPrimeCH, 1e-9)
	assert.InDelta(t, 100.0, d.UtilOffCH, 1e-9)
	assert.InDelta(t, 2800.0, d.RevMemberPrime, 1e-9)
	assert.InDelta(t, 5600.0, d.RevNonMemberOff, 1e-9)
	assert.InDelta(t, 8400.0, total, 1e-9)
}

func TestWeightedMemberLeaguePrice(t *testing.T) {
	disc := model.LeagueDiscounts{CommunityPct: 0.0, PlayerPct: 0.15, ProPct: 0.25}

	price := WeightedMemberLeaguePrice(150.0, disc, defaultMix())

	assert.InDelta(t, 129.0, price, 1e-9)
}

func TestLeagueRevenueWeekScenario(t *testing.T) {
	lg := baseLeague()
	lp := model.LeagueParticipants{MemberShare: 0.0}

	slots := LeagueWeeklySlots(lg, 14, 4)
	assert.Equal(t, 224, slots)

	weekly, d := LeagueRevenueWeek(lg, lp, model.LeagueDiscounts{}, defaultMix(), slots)

	// 224 slots x 90% fill at $150 per 6-week slot.
	assert.InDelta(t, 201.6, d.FilledSlots, 1e-9)
	assert.InDelta(t, 150.0, d.AvgSlotPrice, 1e-9)
	assert.InDelta(t, 5040.0, weekly, 1e-6)
	assert.InDelta(t, 231840.0, weekly*46.0, 1e-3)
}

func TestLeagueRevenueDropsWithMemberShare(t *testing.T) {
	lg := baseLeague()
	disc := model.LeagueDiscounts{CommunityPct: 0.0, PlayerPct: 0.15, ProPct: 0.25}
	mix := defaultMix()
	slots := LeagueWeeklySlots(lg, 14, 4)

	low, _ := LeagueRevenueWeek(lg, model.LeagueParticipants{MemberShare: 0.30}, disc, mix, slots)
	high, _ := LeagueRevenueWeek(lg, model.LeagueParticipants{MemberShare: 0.50}, disc, mix, slots)

	assert.Less(t, high, low)
}

func TestLeagueRevenueWeekZeroSlots(t *testing.T) {
	lg := baseLeague()

	weekly, _ := LeagueRevenueWeek(lg, model.LeagueParticipants{MemberShare: 0.30}, model.LeagueDiscounts{}, defaultMix(), 0)

	assert.Equal(t, 0.0, weekly)
}

func TestFlatRevenueStreams(t *testing.T) {
	corp := model.CorpConfig{
		OffRatePerCourt:    170.0,
		EventsPerMonth:     2,
		HoursPerEvent:      6.0,
		CourtsUsed:         4,
		ExtraEventsPerYear: 8,
	}
	assert.InDelta(t, 130560.0, CorporateRevenueYear(corp), 1e-6)

	assert.InDelta(t, 14400.0, TournamentsRevenueYear(model.Tournaments{PerQuarterRevenue: 9000.0, SponsorshipShare: 0.40}), 1e-9)
	assert.InDelta(t, 2880.0, RetailRevenueYear(model.Retail{MonthlySales: 3000.0, GrossMargin: 0.20, RevenueShare: 0.40}), 1e-9)
}
