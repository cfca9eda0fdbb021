package model

import (
	"errors"
	"fmt"
)

// Pricing holds non-member (rack) per-court hourly rates. Members rent at the
// tiered MemberPlans rates instead.
type Pricing struct {
	NMPrimePerCourt float64 `yaml:"nm_prime_per_court" json:"nm_prime_per_court"`
	NMOffPerCourt   float64 `yaml:"nm_off_per_court" json:"nm_off_per_court"`
}

// MemberPlans is the per-person hourly rate table by tier and time of day,
// plus monthly dues. A rate of 0 means court time is included in membership.
type MemberPlans struct {
	CommunityPrimePP float64 `yaml:"community_prime_pp" json:"community_prime_pp"`
	CommunityOffPP   float64 `yaml:"community_off_pp" json:"community_off_pp"`
	PlayerPrimePP    float64 `yaml:"player_prime_pp" json:"player_prime_pp"`
	PlayerOffPP      float64 `yaml:"player_off_pp" json:"player_off_pp"`
	ProPrimePP       float64 `yaml:"pro_prime_pp" json:"pro_prime_pp"`
	ProOffPP         float64 `yaml:"pro_off_pp" json:"pro_off_pp"`

	// PlayersPerCourt converts per-person rates to per-court rates.
	PlayersPerCourt int `yaml:"players_per_court" json:"players_per_court"`

	CommunityMonthlyFee float64 `yaml:"community_monthly_fee" json:"community_monthly_fee"`
	PlayerMonthlyFee    float64 `yaml:"player_monthly_fee" json:"player_monthly_fee"`
	ProMonthlyFee       float64 `yaml:"pro_monthly_fee" json:"pro_monthly_fee"`
}

func (p MemberPlans) Validate() error {
	if p.PlayersPerCourt <= 0 {
		return errors.New("member_plans.players_per_court must be > 0")
	}
	return nil
}

// TierMix is a fractional tier composition. The fractions must sum to 1.
type TierMix struct {
	PctCommunity float64 `yaml:"pct_community" json:"pct_community"`
	PctPlayer    float64 `yaml:"pct_player" json:"pct_player"`
	PctPro       float64 `yaml:"pct_pro" json:"pct_pro"`
}

func (m TierMix) Validate() error {
	sum := m.PctCommunity + m.PctPlayer + m.PctPro
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("tier mix must sum to 1.0, got %.4f", sum)
	}
	if m.PctCommunity < 0 || m.PctPlayer < 0 || m.PctPro < 0 {
		return errors.New("tier mix fractions must be >= 0")
	}
	return nil
}

// LeagueDiscounts are percentage discounts off the league slot price by tier.
type LeagueDiscounts struct {
	CommunityPct float64 `yaml:"community_pct" json:"community_pct"`
	PlayerPct    float64 `yaml:"player_pct" json:"player_pct"`
	ProPct       float64 `yaml:"pro_pct" json:"pro_pct"`
}

// LeagueParticipants splits league players into members vs non-members, with
// an optional tier mix override for the member portion.
type LeagueParticipants struct {
	MemberShare float64 `yaml:"member_share" json:"member_share"`
	// UseOverallMemberMix reuses Config.MemberMix for league participants.
	UseOverallMemberMix bool    `yaml:"use_overall_member_mix" json:"use_overall_member_mix"`
	Mix                 TierMix `yaml:"mix" json:"mix"`
}

// OpenPlay holds open-play utilization and member-share fractions.
// UtilOff is derived by the utilization solver during config finalization and
// should not be set directly.
type OpenPlay struct {
	UtilPrime        float64 `yaml:"util_prime" json:"util_prime"`
	UtilOff          float64 `yaml:"util_off" json:"util_off"`
	MemberSharePrime float64 `yaml:"member_share_prime" json:"member_share_prime"`
	MemberShareOff   float64 `yaml:"member_share_off" json:"member_share_off"`
	// TargetOverallUtil is the overall utilization the solver inverts for.
	TargetOverallUtil float64 `yaml:"target_overall_util" json:"target_overall_util"`
}

func (o OpenPlay) Validate() error {
	if o.UtilPrime < 0 || o.UtilPrime > 1 {
		return errors.New("openplay.util_prime must be in [0, 1]")
	}
	if o.MemberSharePrime < 0 || o.MemberSharePrime > 1 {
		return errors.New("openplay.member_share_prime must be in [0, 1]")
	}
	if o.MemberShareOff < 0 || o.MemberShareOff > 1 {
		return errors.New("openplay.member_share_off must be in [0, 1]")
	}
	if o.TargetOverallUtil < 0 || o.TargetOverallUtil > 1 {
		return errors.New("openplay.target_overall_util must be in [0, 1]")
	}
	return nil
}
