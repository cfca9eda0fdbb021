package model

import "fmt"

// Config is the full input tree for one engine run. It is built once, finalized
// once (off-peak utilization solved, loan sized to balance sources and uses),
// and then treated as read-only by the compute/projection/statement pipeline.
type Config struct {
	Facility Facility    `yaml:"facility" json:"facility"`
	Prime    PrimeWindow `yaml:"prime" json:"prime"`
	Pricing  Pricing     `yaml:"pricing" json:"pricing"`

	League   LeagueConfig `yaml:"league" json:"league"`
	Corp     CorpConfig   `yaml:"corp" json:"corp"`
	Tourneys Tournaments  `yaml:"tourneys" json:"tourneys"`
	Retail   Retail       `yaml:"retail" json:"retail"`

	MemberPlans        MemberPlans        `yaml:"member_plans" json:"member_plans"`
	LeagueDiscounts    LeagueDiscounts    `yaml:"league_discounts" json:"league_discounts"`
	LeagueParticipants LeagueParticipants `yaml:"league_participants" json:"league_participants"`
	MemberMix          TierMix            `yaml:"member_mix" json:"member_mix"`
	OpenPlay           OpenPlay           `yaml:"openplay" json:"openplay"`

	Growth      GrowthConfig  `yaml:"growth" json:"growth"`
	Seasonality Seasonality   `yaml:"seasonality" json:"seasonality"`
	Costs       CostsConfig   `yaml:"costs" json:"costs"`
	Finance     FinanceConfig `yaml:"finance" json:"finance"`
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	checks := []struct {
		name string
		err  error
	}{
		{"facility", c.Facility.Validate()},
		{"league", c.League.Validate()},
		{"member_plans", c.MemberPlans.Validate()},
		{"member_mix", c.MemberMix.Validate()},
		{"openplay", c.OpenPlay.Validate()},
		{"growth", c.Growth.Validate()},
		{"seasonality", c.Seasonality.Validate()},
		{"costs", c.Costs.Validate()},
		{"finance", c.Finance.Validate()},
	}
	for _, ch := range checks {
		if ch.err != nil {
			return fmt.Errorf("%s config invalid: %w", ch.name, ch.err)
		}
	}
	if !c.LeagueParticipants.UseOverallMemberMix {
		if err := c.LeagueParticipants.Mix.Validate(); err != nil {
			return fmt.Errorf("league_participants config invalid: %w", err)
		}
	}
	if c.LeagueParticipants.MemberShare < 0 || c.LeagueParticipants.MemberShare > 1 {
		return fmt.Errorf("league_participants.member_share must be in [0, 1]")
	}
	return nil
}

// LeagueTierMix returns the tier mix applied to member league participants.
func (c *Config) LeagueTierMix() TierMix {
	if c.LeagueParticipants.UseOverallMemberMix {
		return c.MemberMix
	}
	return c.LeagueParticipants.Mix
}
