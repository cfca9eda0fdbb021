package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveOffpeakUtilExact(t *testing.T) {
	share := 148.0 / 392.0

	off, warn := SolveOffpeakUtil(0.73, 0.95, share)

	assert.Empty(t, warn)
	assert.InDelta(t, 0.73, OverallUtilization(0.95, off, share), 1e-9)
}

func TestSolveOffpeakUtilPrimeShareOne(t *testing.T) {
	off, warn := SolveOffpeakUtil(0.73, 0.95, 1.0)

	assert.Equal(t, 0.0, off)
	assert.NotEmpty(t, warn)
}

func TestSolveOffpeakUtilClampsLow(t *testing.T) {
	share := 148.0 / 392.0

	off, warn := SolveOffpeakUtil(0.30, 0.95, share)

	assert.Equal(t, MinOffpeakUtil, off)
	assert.Contains(t, warn, "below minimum")
}

func TestSolveOffpeakUtilClampsHigh(t *testing.T) {
	share := 148.0 / 392.0

	off, warn := SolveOffpeakUtil(0.90, 0.50, share)

	assert.Equal(t, MaxOffpeakUtil, off)
	assert.Contains(t, warn, "exceeds maximum")
}
