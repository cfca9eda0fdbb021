package config

import "court-proforma/internal/model"

// Default returns the baseline facility model: a 4-court building open 14
// hours a day with an aggressive ~38% prime share, tiered membership, and the
// lease/capital assumptions the pro-forma was underwritten on. Loaded YAML
// overlays onto this tree, so configs only need to state what differs.
func Default() model.Config {
	return model.Config{
		Facility: model.Facility{
			Courts:      4,
			HoursPerDay: 14.0, // 8a-10p
		},
		Prime: model.PrimeWindow{
			MonThuStart:         16.0,
			MonThuEnd:           22.0,
			FriStart:            16.0,
			FriEnd:              21.0,
			WeekendMorningHours: 4.0,
		},
		Pricing: model.Pricing{
			NMPrimePerCourt: 65.0,
			NMOffPerCourt:   56.0,
		},
		League: model.LeagueConfig{
			SessionLenH:       1.5,
			BufferMin:         10,
			Weeknights:        4,
			WeekendMorns:      1,
			CourtsUsed:        4,
			PlayersPerCourt:   4,
			FillRate:          0.90,
			ActiveWeeks:       46,
			PricePrimeSlot6Wk: 150.0,
			PriceOffSlot6Wk:   100.0,
		},
		Corp: model.CorpConfig{
			PrimeRatePerCourt:  200.0,
			OffRatePerCourt:    170.0,
			EventsPerMonth:     2,
			HoursPerEvent:      6.0,
			CourtsUsed:         4,
			ExtraEventsPerYear: 8,
		},
		Tourneys: model.Tournaments{
			PerQuarterRevenue: 9000.0,
			SponsorshipShare:  0.40,
		},
		Retail: model.Retail{
			MonthlySales: 3000.0,
			GrossMargin:  0.20,
			RevenueShare: 0.40,
		},
		MemberPlans: model.MemberPlans{
			CommunityPrimePP:    14.0,
			CommunityOffPP:      11.0,
			PlayerPrimePP:       9.0,
			PlayerOffPP:         0.0, // included in dues
			ProPrimePP:          0.0, // included in dues
			ProOffPP:            0.0, // included in dues
			PlayersPerCourt:     4,
			CommunityMonthlyFee: 0.0,
			PlayerMonthlyFee:    99.0,
			ProMonthlyFee:       189.0,
		},
		LeagueDiscounts: model.LeagueDiscounts{
			CommunityPct: 0.00,
			PlayerPct:    0.15,
			ProPct:       0.25,
		},
		LeagueParticipants: model.LeagueParticipants{
			MemberShare:         0.30,
			UseOverallMemberMix: true,
			Mix: model.TierMix{
				PctCommunity: 0.20,
				PctPlayer:    0.60,
				PctPro:       0.20,
			},
		},
		MemberMix: model.TierMix{
			PctCommunity: 0.20,
			PctPlayer:    0.60,
			PctPro:       0.20,
		},
		OpenPlay: model.OpenPlay{
			UtilPrime:         0.95,
			UtilOff:           0.0, // solved during finalization
			MemberSharePrime:  0.60,
			MemberShareOff:    0.60,
			TargetOverallUtil: 0.73,
		},
		Growth: model.GrowthConfig{
			StartYear:    2026,
			StartMonth:   8,
			Months:       24,
			K:            350,
			R:            0.35,
			TMid:         8,
			StartMembers: 50,
		},
		Seasonality: model.Seasonality{
			WeeksPerMonth: [12]float64{
				4.35, 4.0, 4.35, 4.35, 4.35, 4.35,
				4.35, 4.35, 4.35, 4.35, 4.35, 4.0,
			},
			LeagueWeekFractions: [12]float64{
				0.083, 0.083, 0.083, 0.083, 0.083, 0.080,
				0.080, 0.080, 0.083, 0.083, 0.083, 0.063,
			},
		},
		Costs: model.CostsConfig{
			FixedMonthlyBase:      60000.0,
			FixedInflationAnnual:  0.03,
			VariablePctOfRevenue:  0.15,
			StaffCostPerUtilizedH: 5.0,
			BaseRentPSF:           22.50,
			CAMPSF:                3.43,
			SquareFeet:            17139.0,
			RentAbatementMonths:   0,
			RentEscalatorAnnual:   0.03,
		},
		Finance: model.FinanceConfig{
			LoanAmount:                 0.0, // sized during finalization
			APR:                        0.09,
			TermYears:                  10,
			LeaseholdImprovements:      994000.0,
			Equipment:                  220000.0,
			FFESignage:                 0.0,
			PreOpening:                 50000.0,
			WCReserveStart:             200000.0,
			ContingencyPct:             0.10,
			TIAllowancePSF:             25.0,
			SquareFeet:                 17139.0,
			OwnerEquity:                200000.0,
			DepreciationYearsLeasehold: 10,
			DepreciationYearsEquipment: 7,
			CorporateTaxRate:           0.21,
			NOLCarryforwardStart:       0.0,
		},
	}
}
