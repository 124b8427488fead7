package detrend

import (
	"math"

	"github.com/san-kum/crashwatch/internal/series"
)

// Detrend separates a price series into a smooth trend and a residual
// series using a Nadaraya-Watson estimator with a Gaussian kernel.
//
// For every index i the trend is a kernel-weighted average over all
// points j, weighted by the Gaussian density of (i-j) with standard
// deviation bandwidth. Points near the edges still get a valid local
// mean, so no boundary special-casing is needed. Cost is O(n^2).
func Detrend(prices series.Series, bandwidth float64) (trend, residuals series.Series, err error) {
	if bandwidth <= 0 {
		return nil, nil, series.ErrBandwidth
	}

	n := len(prices)
	trend = make(series.Series, n)
	residuals = make(series.Series, n)

	norm := bandwidth * math.Sqrt(2*math.Pi)

	for i := 0; i < n; i++ {
		weightSum := 0.0
		weighted := 0.0
		for j := 0; j < n; j++ {
			d := float64(i-j) / bandwidth
			w := math.Exp(-0.5*d*d) / norm
			weightSum += w
			weighted += w * prices[j]
		}
		trend[i] = weighted / weightSum
		residuals[i] = prices[i] - trend[i]
	}

	return trend, residuals, nil
}
