package engine

import "court-proforma/internal/model"

// PerCourtRate converts a per-person hourly rate to a per-court rate.
func PerCourtRate(ratePP float64, playersPerCourt int) float64 {
	return ratePP * float64(playersPerCourt)
}

// TierRates holds per-court hourly rates for one tier.
type TierRates struct {
	Prime float64 `json:"prime"`
	Off   float64 `json:"off"`
}

// PerCourtRateTable is the member rate card converted to per-court terms.
// A zero rate is a valid "included in membership" state.
type PerCourtRateTable struct {
	Community TierRates `json:"community"`
	Player    TierRates `json:"player"`
	Pro       TierRates `json:"pro"`
}

// TierPerCourtRates builds the per-court rate table from the per-person plan.
func TierPerCourtRates(mp model.MemberPlans) PerCourtRateTable {
	pc := mp.PlayersPerCourt
	return PerCourtRateTable{
		Community: TierRates{Prime: PerCourtRate(mp.CommunityPrimePP, pc), Off: PerCourtRate(mp.CommunityOffPP, pc)},
		Player:    TierRates{Prime: PerCourtRate(mp.PlayerPrimePP, pc), Off: PerCourtRate(mp.PlayerOffPP, pc)},
		Pro:       TierRates{Prime: PerCourtRate(mp.ProPrimePP, pc), Off: PerCourtRate(mp.ProOffPP, pc)},
	}
}

// TierHours is utilized member court-hours split by tier.
type TierHours struct {
	Community float64 `json:"community"`
	Player    float64 `json:"player"`
	Pro       float64 `json:"pro"`
}

func splitTier(total float64, mix model.TierMix) TierHours {
	return TierHours{
		Community: total * mix.PctCommunity,
		Player:    total * mix.PctPlayer,
		Pro:       total * mix.PctPro,
	}
}

// CourtRevenueDebug exposes the intermediate hour splits behind the weekly
// court-rental revenue figure.
type CourtRevenueDebug struct {
	UtilPrimeCH  float64           `json:"util_prime_ch"`
	UtilOffCH    float64           `json:"util_off_ch"`
	MemPrimeCH   float64           `json:"mem_prime_ch"`
	MemOffCH     float64           `json:"mem_off_ch"`
	NMPrimeCH    float64           `json:"nm_prime_ch"`
	NMOffCH      float64           `json:"nm_off_ch"`
	MemPrimeTier TierHours         `json:"mem_prime_tier"`
	MemOffTier   TierHours         `json:"mem_off_tier"`
	Rates        PerCourtRateTable `json:"per_court_rates"`

	RevMemberPrime    float64 `json:"rev_member_prime"`
	RevMemberOff      float64 `json:"rev_member_off"`
	RevNonMemberPrime float64 `json:"rev_nonmember_prime"`
	RevNonMemberOff   float64 `json:"rev_nonmember_off"`
}

// CourtRentalRevenueWeek prices utilized open-play hours through the tiered
// waterfall: utilization, then member/non-member split, then tier split of
// member hours at per-court tier rates, with non-members at the rack rate.
func CourtRentalRevenueWeek(openPrimeCH, openOffCH float64, op model.OpenPlay,
	mix model.TierMix, mp model.MemberPlans, rack model.Pricing) (float64, CourtRevenueDebug) {

	rates := TierPerCourtRates(mp)

	d := CourtRevenueDebug{Rates: rates}
	d.UtilPrimeCH = openPrimeCH * op.UtilPrime
	d.UtilOffCH = openOffCH * op.UtilOff

	d.MemPrimeCH = d.UtilPrimeCH * op.MemberSharePrime
	d.MemOffCH = d.UtilOffCH * op.MemberShareOff
	d.NMPrimeCH = d.UtilPrimeCH - d.MemPrimeCH
	d.NMOffCH = d.UtilOffCH - d.MemOffCH

	d.MemPrimeTier = splitTier(d.MemPrimeCH, mix)
	d.MemOffTier = splitTier(d.MemOffCH, mix)

	d.RevMemberPrime = d.MemPrimeTier.Community*rates.Community.Prime +
		d.MemPrimeTier.Player*rates.Player.Prime +
		d.MemPrimeTier.Pro*rates.Pro.Prime
	d.RevMemberOff = d.MemOffTier.Community*rates.Community.Off +
		d.MemOffTier.Player*rates.Player.Off +
		d.MemOffTier.Pro*rates.Pro.Off

	d.RevNonMemberPrime = d.NMPrimeCH * rack.NMPrimePerCourt
	d.RevNonMemberOff = d.NMOffCH * rack.NMOffPerCourt

	total := d.RevMemberPrime + d.RevMemberOff + d.RevNonMemberPrime + d.RevNonMemberOff
	return total, d
}

// WeightedMemberLeaguePrice is the tier-mix-weighted average slot price for
// member league participants after tier discounts.
func WeightedMemberLeaguePrice(basePrice float64, disc model.LeagueDiscounts, mix model.TierMix) float64 {
	return basePrice*(1.0-disc.CommunityPct)*mix.PctCommunity +
		basePrice*(1.0-disc.PlayerPct)*mix.PctPlayer +
		basePrice*(1.0-disc.ProPct)*mix.PctPro
}

// LeagueRevenueDebug exposes the slot and pricing math behind league revenue.
type LeagueRevenueDebug struct {
	SlotsWeek       int     `json:"slots_wk"`
	FilledSlots     float64 `json:"filled_slots"`
	MemberShare     float64 `json:"member_share"`
	MemberSlots     float64 `json:"member_slots"`
	NonMemberSlots  float64 `json:"nonmember_slots"`
	DiscMemberPrice float64 `json:"disc_member_price"`
	AvgSlotPrice    float64 `json:"avg_slot_price"`
}

// LeagueWeeklySlots is total player slots across the week's blocks.
func LeagueWeeklySlots(lg model.LeagueConfig, weeklyBlocks, courtsUsed int) int {
	return weeklyBlocks * courtsUsed * lg.PlayersPerCourt
}

// LeagueRevenueWeek prices the week's filled league slots. Slot prices are for
// 6-week sessions, so one week recognizes a sixth of the blended slot price.
func LeagueRevenueWeek(lg model.LeagueConfig, lp model.LeagueParticipants,
	disc model.LeagueDiscounts, mix model.TierMix, weeklySlots int) (float64, LeagueRevenueDebug) {

	d := LeagueRevenueDebug{
		SlotsWeek:   weeklySlots,
		MemberShare: lp.MemberShare,
	}
	d.FilledSlots = float64(weeklySlots) * lg.FillRate
	d.MemberSlots = d.FilledSlots * lp.MemberShare
	d.NonMemberSlots = d.FilledSlots - d.MemberSlots
	d.DiscMemberPrice = WeightedMemberLeaguePrice(lg.PricePrimeSlot6Wk, disc, mix)

	base := lg.PricePrimeSlot6Wk
	denom := d.FilledSlots
	if denom < 1e-9 {
		denom = 1e-9
	}
	d.AvgSlotPrice = (d.MemberSlots*d.DiscMemberPrice + d.NonMemberSlots*base) / denom

	return d.FilledSlots * (d.AvgSlotPrice / 6.0), d
}

// CorporateRevenueYear prices the year's corporate events. All events,
// including the extra annual ones, bill at the off-peak rate.
func CorporateRevenueYear(corp model.CorpConfig) float64 {
	chPerEvent := float64(corp.CourtsUsed) * corp.HoursPerEvent
	events := float64(corp.EventsPerMonth*12 + corp.ExtraEventsPerYear)
	return events * chPerEvent * corp.OffRatePerCourt
}

// TournamentsRevenueYear is the facility's take of quarterly tournament revenue.
func TournamentsRevenueYear(t model.Tournaments) float64 {
	return 4.0 * t.PerQuarterRevenue * t.SponsorshipShare
}

// RetailRevenueYear is the facility's share of pro-shop gross margin.
func RetailRevenueYear(r model.Retail) float64 {
	return 12.0 * r.MonthlySales * r.GrossMargin * r.RevenueShare
}
