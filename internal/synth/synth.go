// Package synth generates deterministic synthetic price series with
// known properties, for demos and for exercising the detectors against
// ground truth. Every generator is seeded explicitly; the same seed
// always reproduces the same series.
package synth

import (
	"math"
	"math/rand"

	"github.com/san-kum/crashwatch/internal/lppl"
	"github.com/san-kum/crashwatch/internal/series"
)

// LPPL builds an n-point price series from the bubble model with the
// given parameters, plus Gaussian noise of the given standard deviation
// on the log price. fit.TC must exceed n or the curve hits its
// singularity inside the observed window.
func LPPL(fit lppl.Fit, n int, noise float64, seed int64) series.Series {
	rng := rand.New(rand.NewSource(seed))

	prices := make(series.Series, n)
	for i := 0; i < n; i++ {
		y := fit.Eval(float64(i)) + noise*rng.NormFloat64()
		prices[i] = math.Exp(y)
	}
	return prices
}

// CSDRamp builds an n-point series whose residual process is AR(1)
// noise around a flat base price. The autoregressive coefficient holds
// at ar1Start and then ramps linearly to ar1End over the final rampLen
// steps, injecting critical slowing down by construction.
func CSDRamp(n, rampLen int, base, ar1Start, ar1End, shockStd float64, seed int64) series.Series {
	rng := rand.New(rand.NewSource(seed))

	prices := make(series.Series, n)
	x := 0.0
	for i := 0; i < n; i++ {
		phi := ar1Start
		if i >= n-rampLen {
			progress := float64(i-(n-rampLen)) / float64(rampLen-1)
			phi = ar1Start + progress*(ar1End-ar1Start)
		}
		x = phi*x + shockStd*rng.NormFloat64()
		prices[i] = base + x
	}
	return prices
}

// RandomWalk builds an n-point geometric random walk: no singularity,
// no oscillation, just drift and volatility on the log price.
func RandomWalk(n int, drift, vol float64, seed int64) series.Series {
	rng := rand.New(rand.NewSource(seed))

	prices := make(series.Series, n)
	y := math.Log(100.0)
	for i := 0; i < n; i++ {
		prices[i] = math.Exp(y)
		y += drift + vol*rng.NormFloat64()
	}
	return prices
}
