// Package engine exposes the two analysis entry points and merges
// their outputs. It is a pure function of its inputs: identical prices
// and configuration always produce identical results, input slices are
// never mutated, and no state survives between calls.
package engine

import (
	"context"

	"github.com/san-kum/crashwatch/internal/config"
	"github.com/san-kum/crashwatch/internal/csd"
	"github.com/san-kum/crashwatch/internal/detrend"
	"github.com/san-kum/crashwatch/internal/lppl"
	"github.com/san-kum/crashwatch/internal/series"
)

// CSDResult bundles the detrending output with the rolling indicators.
// The four series are all the same length as the input; entries without
// enough history are NaN.
type CSDResult struct {
	Trend           series.Series
	Residuals       series.Series
	AR1             series.Series
	Variance        series.Series
	CurrentAR1      float64
	CurrentVariance float64
	KendallTau      float64
	Status          csd.Status
}

// Provenance records what an analysis ran over, so a caller merging
// results from several sources can attribute them.
type Provenance struct {
	Observations int
	Config       config.Config
}

// Result is the merged output of both detectors.
type Result struct {
	CSD        *CSDResult
	LPPL       lppl.Result
	Provenance Provenance
}

// RunCSD detrends the prices and computes the critical-slowing-down
// indicators. Configuration errors fail fast; a series too short for
// the windows degrades to NaN-filled indicator series, a neutral tau
// and zero current values, never an error.
func RunCSD(prices series.Series, cfg *config.Config) (*CSDResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	trend, residuals, err := detrend.Detrend(prices.Clone(), cfg.DetrendBandwidth)
	if err != nil {
		return nil, err
	}

	ar1, err := csd.RollingAR1(residuals, cfg.CSDWindow)
	if err != nil {
		return nil, err
	}

	variance, err := csd.RollingVariance(residuals, cfg.CSDWindow)
	if err != nil {
		return nil, err
	}

	tau, err := csd.KendallTau(ar1, cfg.TauLookback)
	if err != nil {
		return nil, err
	}

	currentAR1 := ar1.LastDefined()

	return &CSDResult{
		Trend:           trend,
		Residuals:       residuals,
		AR1:             ar1,
		Variance:        variance,
		CurrentAR1:      currentAR1,
		CurrentVariance: variance.LastDefined(),
		KendallTau:      tau,
		Status:          csd.Classify(currentAR1),
	}, nil
}

// RunLPPL fits the bubble model to the prices with the canonical grid.
func RunLPPL(ctx context.Context, prices series.Series) lppl.Result {
	return lppl.Optimize(ctx, prices.Clone())
}

// Analyze runs both detectors and merges their outputs with provenance.
func Analyze(ctx context.Context, prices series.Series, cfg *config.Config) (*Result, error) {
	csdResult, err := RunCSD(prices, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		CSD:        csdResult,
		LPPL:       RunLPPL(ctx, prices),
		Provenance: Provenance{Observations: len(prices), Config: *cfg},
	}, nil
}
