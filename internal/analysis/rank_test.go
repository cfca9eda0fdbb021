package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"court-proforma/internal/config"
	"court-proforma/internal/engine"
)

func TestPotentialAndRanking(t *testing.T) {
	base := config.Default()
	config.Finalize(&base)
	baseRes, err := engine.Compute(&base)
	require.NoError(t, err)

	// A bigger building with the same demand assumptions dilutes density.
	big := config.Default()
	big.Facility.Courts = 8
	big.League.CourtsUsed = 8
	config.Finalize(&big)
	bigRes, err := engine.Compute(&big)
	require.NoError(t, err)

	potentials := []ScenarioPotential{
		Potential("eight courts", bigRes),
		Potential("baseline", baseRes),
	}
	ranked := RankByRevPACH(potentials)

	require.Len(t, ranked, 2)
	assert.GreaterOrEqual(t, ranked[0].RevPACH, ranked[1].RevPACH)

	// Input order is preserved in the original slice.
	assert.Equal(t, "eight courts", potentials[0].Name)
}
