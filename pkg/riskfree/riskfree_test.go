package riskfree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYieldCurve_Rate(t *testing.T) {
	curve := YieldCurve{
		Rates: map[int]float64{
			1:   0.0148,
			12:  0.0159,
			120: 0.0192,
			360: 0.0239,
		},
	}

	t.Run("exact tenor", func(t *testing.T) {
		rate, err := curve.Rate(12)
		require.NoError(t, err)
		require.Equal(t, 0.0159, rate)
	})

	t.Run("interpolated tenor", func(t *testing.T) {
		rate, err := curve.Rate(60)
		require.NoError(t, err)
		require.InDelta(t, (0.0159+0.0192)/2, rate, 1e-9)
	})

	t.Run("clamps below curve", func(t *testing.T) {
		rate, err := curve.Rate(0)
		require.NoError(t, err)
		require.Equal(t, 0.0148, rate)
	})

	t.Run("clamps above curve", func(t *testing.T) {
		rate, err := curve.Rate(600)
		require.NoError(t, err)
		require.Equal(t, 0.0239, rate)
	})

	t.Run("empty curve errors", func(t *testing.T) {
		_, err := YieldCurve{}.Rate(12)
		require.Error(t, err)
	})
}

func TestTenorMonths(t *testing.T) {
	months, err := tenorMonths("yield_3m")
	require.NoError(t, err)
	require.Equal(t, 3, months)

	months, err = tenorMonths("yield_10y")
	require.NoError(t, err)
	require.Equal(t, 120, months)

	_, err = tenorMonths("yield_xy")
	require.Error(t, err)
}
