package csd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/crashwatch/internal/series"
)

func TestKendallTauStrictlyIncreasing(t *testing.T) {
	values := make(series.Series, 20)
	for i := range values {
		values[i] = float64(i) * 0.01
	}

	tau, err := KendallTau(values, 20)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tau)
}

func TestKendallTauStrictlyDecreasing(t *testing.T) {
	values := make(series.Series, 15)
	for i := range values {
		values[i] = -float64(i)
	}

	tau, err := KendallTau(values, 15)
	require.NoError(t, err)
	assert.Equal(t, -1.0, tau)
}

func TestKendallTauTiesAreNeutral(t *testing.T) {
	// All equal: every pair is tied, tau is 0.
	values := make(series.Series, 12)
	for i := range values {
		values[i] = 0.5
	}

	tau, err := KendallTau(values, 12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tau)
}

func TestKendallTauTooFewPoints(t *testing.T) {
	values := series.Series{1, 2, 3, 4, 5, 6, 7, 8, 9}

	tau, err := KendallTau(values, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tau)
}

func TestKendallTauFiltersUndefined(t *testing.T) {
	// NaN prefix plus 10 increasing values: the undefined entries are
	// filtered before the lookback is applied.
	values := series.Undefined(30)
	for i := 20; i < 30; i++ {
		values[i] = float64(i)
	}

	tau, err := KendallTau(values, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tau)
}

func TestKendallTauLookbackTrims(t *testing.T) {
	// Decreasing early values fall outside the lookback; only the
	// increasing tail counts.
	values := make(series.Series, 40)
	for i := 0; i < 20; i++ {
		values[i] = 100 - float64(i)
	}
	for i := 20; i < 40; i++ {
		values[i] = float64(i)
	}

	tau, err := KendallTau(values, 20)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tau)
}

func TestKendallTauInvalidLookback(t *testing.T) {
	_, err := KendallTau(series.Series{1, 2, 3}, 0)
	assert.ErrorIs(t, err, series.ErrLookback)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ar1  float64
		want Status
	}{
		{0.0, StatusNormal},
		{0.6, StatusNormal},
		{0.61, StatusRising},
		{0.7, StatusRising},
		{0.75, StatusElevated},
		{0.8, StatusElevated},
		{0.81, StatusCritical},
		{math.Inf(1), StatusCritical},
		{-0.5, StatusNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.ar1), "ar1=%v", tt.ar1)
	}
}
