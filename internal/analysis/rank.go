package analysis

import (
	"sort"

	"court-proforma/internal/engine"
)

// ScenarioPotential is a scenario-level summary used for ranking config
// variations against each other. It carries the headline economics rather
// than the full result so comparisons stay cheap to serialize.
type ScenarioPotential struct {
	Name string `json:"name"`

	VariableRevYear float64 `json:"variable_rev_year"`
	RevPACH         float64 `json:"rev_pach"`
	RevPerUtilHr    float64 `json:"rev_per_util_hr"`
	OverallUtil     float64 `json:"overall_util"`
	LeagueFitted    bool    `json:"league_fitted"`
}

// Potential distills one compute result into its ranking summary.
func Potential(name string, res *engine.Result) ScenarioPotential {
	return ScenarioPotential{
		Name:            name,
		VariableRevYear: res.Annual.VariableRev,
		RevPACH:         res.Density.RevPACH,
		RevPerUtilHr:    res.Density.RevPerUtilHr,
		OverallUtil:     res.Meta.OverallUtil,
		LeagueFitted:    res.LeagueFit.Fitted,
	}
}

// RankByRevPACH sorts scenario potentials descending by revenue density.
// RevPACH normalizes for facility size, so a 6-court scenario does not win
// just by being bigger.
func RankByRevPACH(potentials []ScenarioPotential) []ScenarioPotential {
	out := make([]ScenarioPotential, len(potentials))
	copy(out, potentials)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RevPACH > out[j].RevPACH
	})
	return out
}
