package csd

import "github.com/san-kum/crashwatch/internal/series"

// RollingVariance computes the sample variance (denominator window-1) of
// the trailing window [i-window, i) for each index i >= window. Earlier
// indices are NaN.
func RollingVariance(residuals series.Series, window int) (series.Series, error) {
	if window <= 1 {
		return nil, series.ErrWindow
	}

	out := series.Undefined(len(residuals))
	for i := window; i < len(residuals); i++ {
		out[i] = residuals[i-window : i].SampleVariance()
	}
	return out, nil
}
