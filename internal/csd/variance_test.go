package csd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/crashwatch/internal/series"
)

func TestRollingVarianceFirstDefinedIndex(t *testing.T) {
	const window = 20
	rng := rand.New(rand.NewSource(2))
	residuals := make(series.Series, 50)
	for i := range residuals {
		residuals[i] = rng.NormFloat64()
	}

	variance, err := RollingVariance(residuals, window)
	require.NoError(t, err)
	require.Len(t, variance, len(residuals))

	for i := 0; i < window; i++ {
		assert.True(t, math.IsNaN(variance[i]), "index %d should be undefined", i)
	}
	assert.False(t, math.IsNaN(variance[window]))
}

func TestRollingVarianceMatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	residuals := make(series.Series, 80)
	for i := range residuals {
		residuals[i] = rng.NormFloat64() * 3
	}

	const window = 15
	variance, err := RollingVariance(residuals, window)
	require.NoError(t, err)

	for _, i := range []int{window, 40, len(residuals) - 1} {
		want := residuals[i-window : i].SampleVariance()
		assert.InDelta(t, want, variance[i], 1e-12, "index %d", i)
	}
}

func TestRollingVarianceInvalidWindow(t *testing.T) {
	_, err := RollingVariance(series.Series{1, 2}, 0)
	assert.ErrorIs(t, err, series.ErrWindow)
}
