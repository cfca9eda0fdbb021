package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	fac, win := baseFacility()

	alloc, err := Allocate(fac, win, 93.33, 10.0, 20.0, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 148.0, alloc.PrimeCH, 1e-9)
	assert.InDelta(t, 244.0, alloc.OffCH, 1e-9)
	assert.InDelta(t, 148.0-93.33-10.0, alloc.OpenPrimeCH, 1e-9)
	assert.InDelta(t, 244.0-20.0, alloc.OpenOffCH, 1e-9)
}

func TestAllocateLeagueOverbooksPrime(t *testing.T) {
	fac, win := baseFacility()

	_, err := Allocate(fac, win, 149.0, 0, 0, 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds prime")
}

func TestAllocateNegativeOpenTime(t *testing.T) {
	fac, win := baseFacility()

	_, err := Allocate(fac, win, 100.0, 60.0, 0, 0, 0)
	require.Error(t, err)

	_, err = Allocate(fac, win, 0, 0, 250.0, 0, 0)
	require.Error(t, err)
}

func TestAllocateClampsFloatNoise(t *testing.T) {
	fac, win := baseFacility()

	alloc, err := Allocate(fac, win, 148.0+1e-9, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, alloc.OpenPrimeCH)
}
