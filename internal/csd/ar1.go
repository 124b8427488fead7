package csd

import (
	"math"

	"github.com/san-kum/crashwatch/internal/series"
)

// RollingAR1 computes the lag-1 autocorrelation of the residual series
// over a trailing window. For each index i with i >= window+1 it
// correlates residuals[i-window..i-1] against the same window shifted
// back one step, residuals[i-window-1..i-2]. Earlier indices are NaN.
//
// The first defined index is window+1, one later than RollingVariance,
// because the lagged window needs one extra point of history.
//
// Rising values signal critical slowing down: the system takes longer
// to recover from perturbations. Output is clamped to [-1, 1].
func RollingAR1(residuals series.Series, window int) (series.Series, error) {
	if window <= 1 {
		return nil, series.ErrWindow
	}

	out := series.Undefined(len(residuals))
	for i := window + 1; i < len(residuals); i++ {
		current := residuals[i-window : i]
		lagged := residuals[i-window-1 : i-1]
		out[i] = clamp(pearson(current, lagged), -1, 1)
	}
	return out, nil
}

// pearson returns the Pearson correlation of two equal-length windows,
// or 0 when either window has zero variance.
func pearson(x, y series.Series) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	meanX := x.Mean()
	meanY := y.Mean()

	cov, varX, varY := 0.0, 0.0, 0.0
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
