package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/crashwatch/internal/config"
	"github.com/san-kum/crashwatch/internal/csd"
	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/series"
	"github.com/san-kum/crashwatch/internal/synth"
)

func scenarioConfig() *config.Config {
	return &config.Config{
		DetrendBandwidth: 30,
		CSDWindow:        50,
		TauLookback:      100,
	}
}

func TestRunCSDCriticalSlowingDownScenario(t *testing.T) {
	// 260 observations with AR(1) persistence ramping from 0.4 to 0.95
	// over the last 150 steps by construction: the indicators must pick
	// up the loss of resilience.
	prices := synth.CSDRamp(260, 150, 100.0, 0.4, 0.95, 1.0, 17)
	cfg := scenarioConfig()

	result, err := engine.RunCSD(prices, cfg)
	require.NoError(t, err)

	require.Len(t, result.Trend, len(prices))
	require.Len(t, result.Residuals, len(prices))
	require.Len(t, result.AR1, len(prices))
	require.Len(t, result.Variance, len(prices))

	// Early window: persistence still low.
	early := result.AR1[:cfg.CSDWindow+40].LastDefined()
	earlyStatus := csd.Classify(early)
	assert.Contains(t, []csd.Status{csd.StatusNormal, csd.StatusRising}, earlyStatus)

	// By the end the status has left NORMAL and the AR(1) trend over
	// the lookback is clearly positive.
	assert.Greater(t, result.CurrentAR1, 0.6)
	assert.NotEqual(t, csd.StatusNormal, result.Status)
	assert.Greater(t, result.KendallTau, 0.3)
	assert.Greater(t, result.CurrentAR1, early)
}

func TestRunCSDShortSeriesDegrades(t *testing.T) {
	prices := series.Series{100, 101, 99, 100, 102}

	result, err := engine.RunCSD(prices, config.DefaultConfig())
	require.NoError(t, err)

	// Too short for any window: NaN indicator series, neutral values.
	assert.Equal(t, 0.0, result.CurrentAR1)
	assert.Equal(t, 0.0, result.CurrentVariance)
	assert.Equal(t, 0.0, result.KendallTau)
	assert.Equal(t, csd.StatusNormal, result.Status)
	for _, v := range result.AR1 {
		assert.True(t, math.IsNaN(v))
	}
}

func TestRunCSDInvalidConfig(t *testing.T) {
	prices := synth.RandomWalk(100, 0, 0.01, 1)

	_, err := engine.RunCSD(prices, &config.Config{DetrendBandwidth: 0, CSDWindow: 10, TauLookback: 5})
	assert.ErrorIs(t, err, series.ErrBandwidth)

	_, err = engine.RunCSD(prices, &config.Config{DetrendBandwidth: 10, CSDWindow: 1, TauLookback: 5})
	assert.ErrorIs(t, err, series.ErrWindow)

	_, err = engine.RunCSD(prices, &config.Config{DetrendBandwidth: 10, CSDWindow: 10, TauLookback: 0})
	assert.ErrorIs(t, err, series.ErrLookback)
}

func TestAnalyzeIdempotent(t *testing.T) {
	prices := synth.CSDRamp(260, 100, 100.0, 0.4, 0.85, 1.0, 4)
	original := prices.Clone()
	cfg := scenarioConfig()
	ctx := context.Background()

	first, err := engine.Analyze(ctx, prices, cfg)
	require.NoError(t, err)
	second, err := engine.Analyze(ctx, prices, cfg)
	require.NoError(t, err)

	// reflect.DeepEqual treats NaN != NaN, so the NaN-bearing series
	// are compared entry by entry.
	assertSameSeries(t, first.CSD.Trend, second.CSD.Trend)
	assertSameSeries(t, first.CSD.Residuals, second.CSD.Residuals)
	assertSameSeries(t, first.CSD.AR1, second.CSD.AR1)
	assertSameSeries(t, first.CSD.Variance, second.CSD.Variance)
	assert.Equal(t, first.CSD.CurrentAR1, second.CSD.CurrentAR1)
	assert.Equal(t, first.CSD.CurrentVariance, second.CSD.CurrentVariance)
	assert.Equal(t, first.CSD.KendallTau, second.CSD.KendallTau)
	assert.Equal(t, first.CSD.Status, second.CSD.Status)
	assert.Equal(t, first.LPPL, second.LPPL)
	assert.Equal(t, first.Provenance, second.Provenance)

	assert.Equal(t, original, prices, "input must not be mutated")
}

func assertSameSeries(t *testing.T, want, got series.Series) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d", i)
			continue
		}
		assert.Equal(t, want[i], got[i], "index %d", i)
	}
}

func TestAnalyzeProvenance(t *testing.T) {
	prices := synth.RandomWalk(120, 0, 0.02, 8)
	cfg := scenarioConfig()

	result, err := engine.Analyze(context.Background(), prices, cfg)
	require.NoError(t, err)

	assert.Equal(t, 120, result.Provenance.Observations)
	assert.Equal(t, *cfg, result.Provenance.Config)
	require.NotNil(t, result.CSD)
}
