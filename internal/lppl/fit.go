package lppl

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/crashwatch/internal/linalg"
	"github.com/san-kum/crashwatch/internal/series"
)

// Optimize fits the log-periodic power law to a price series using the
// canonical grid and one worker per CPU. See OptimizeGrid.
func Optimize(ctx context.Context, prices series.Series) Result {
	return OptimizeGrid(ctx, prices, DefaultGrid(), runtime.NumCPU())
}

// OptimizeGrid runs a nested grid search over the nonlinear parameters
// (tc, m, omega, phi); for each grid point the linear parameters
// (A, B, C) are recovered exactly by a closed-form 3x3 least-squares
// solve. Candidates must satisfy B < 0 (finite-time singularity) and
// |C| <= |B| (oscillation subordinate to the power law); the best
// R-squared among valid candidates is tracked across the whole grid.
//
// The input is truncated to its most recent 500 observations. Fewer
// than 100 observations yields the zero-confidence sentinel result.
//
// Grid points are independent, so the search is chunked across workers
// by tc candidate. Cancelling ctx stops the search early and returns
// the best candidate found so far; partial results are always valid.
// The outcome is deterministic for a given input and grid regardless of
// worker count: ties on R-squared resolve to the earlier grid point.
func OptimizeGrid(ctx context.Context, prices series.Series, grid Grid, workers int) Result {
	if len(prices) < minObservations {
		return Result{}
	}

	y := prices.Tail(maxObservations).Log()
	n := len(y)

	// Total sum of squares of the log prices, shared by every R-squared
	// computation. Zero variance means no grid point can be viable.
	meanY := y.Mean()
	ssTot := 0.0
	for _, v := range y {
		d := v - meanY
		ssTot += d * d
	}
	if ssTot == 0 {
		return Result{}
	}

	tcs := grid.tcCandidates(n)
	if workers < 1 {
		workers = 1
	}
	if workers > len(tcs) {
		workers = len(tcs)
	}

	chunk := (len(tcs) + workers - 1) / workers
	locals := make([]candidate, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(tcs) {
			end = len(tcs)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			best := noCandidate()
			for ti := start; ti < end; ti++ {
				if ctx.Err() != nil {
					break
				}
				searchTC(y, ssTot, tcs[ti], ti*grid.comboCount(), grid, &best)
			}
			locals[w] = best
		}(w, start, end)
	}
	wg.Wait()

	best := noCandidate()
	for _, c := range locals {
		best = better(best, c)
	}

	return assemble(best, n)
}

// candidate is a grid point that passed the validity constraints, plus
// its flattened grid index for deterministic tie-breaking.
type candidate struct {
	fit Fit
	idx int
}

func noCandidate() candidate {
	return candidate{fit: Fit{R2: math.Inf(-1)}, idx: -1}
}

func (c candidate) found() bool { return c.idx >= 0 }

// better prefers higher R-squared, breaking exact ties toward the
// earlier grid point so results do not depend on goroutine scheduling.
func better(a, b candidate) candidate {
	switch {
	case !b.found():
		return a
	case !a.found():
		return b
	case b.fit.R2 > a.fit.R2:
		return b
	case b.fit.R2 == a.fit.R2 && b.idx < a.idx:
		return b
	default:
		return a
	}
}

// searchTC evaluates every (m, omega, phi) combination for one critical
// time, updating best in place. baseIdx is the flattened index of this
// tc's first combination.
func searchTC(y series.Series, ssTot, tc float64, baseIdx int, grid Grid, best *candidate) {
	n := len(y)

	// dt and ln(dt) depend only on tc. tc sits beyond the observed
	// window, but keep the positivity guard: the model is undefined at
	// or past the singularity.
	dt := make([]float64, n)
	logDt := make([]float64, n)
	for i := 0; i < n; i++ {
		dt[i] = tc - float64(i)
		if dt[i] <= 0 {
			return
		}
		logDt[i] = math.Log(dt[i])
	}

	pow := make([]float64, n)
	osc := make([]float64, n)

	idx := baseIdx
	for _, m := range grid.M {
		for i := 0; i < n; i++ {
			pow[i] = math.Exp(m * logDt[i])
		}
		for _, omega := range grid.Omega {
			for _, phi := range grid.Phi {
				for i := 0; i < n; i++ {
					osc[i] = pow[i] * math.Cos(omega*logDt[i]+phi)
				}

				if fit, ok := solveLinear(y, pow, osc, ssTot); ok {
					fit.TC = tc
					fit.M = m
					fit.Omega = omega
					fit.Phi = phi
					*best = better(*best, candidate{fit: fit, idx: idx})
				}
				idx++
			}
		}
	}
}

// solveLinear recovers (A, B, C) for design columns [1, pow, osc] by
// solving the 3x3 normal equations, then applies the model-validity
// constraints and computes R-squared. Singular systems and constraint
// violations report ok=false and the grid point is skipped silently.
func solveLinear(y series.Series, pow, osc []float64, ssTot float64) (Fit, bool) {
	n := len(y)

	var sF, sG, sFF, sFG, sGG, sY, sFY, sGY float64
	for i := 0; i < n; i++ {
		f, g := pow[i], osc[i]
		sF += f
		sG += g
		sFF += f * f
		sFG += f * g
		sGG += g * g
		sY += y[i]
		sFY += f * y[i]
		sGY += g * y[i]
	}

	coeffs, err := linalg.Solve3(linalg.Mat3{
		{float64(n), sF, sG},
		{sF, sFF, sFG},
		{sG, sFG, sGG},
	}, linalg.Vec3{sY, sFY, sGY})
	if err != nil {
		return Fit{}, false
	}

	a, b, c := coeffs[0], coeffs[1], coeffs[2]
	if b >= 0 || math.Abs(c) > math.Abs(b) {
		return Fit{}, false
	}

	ssRes := 0.0
	for i := 0; i < n; i++ {
		d := y[i] - (a + b*pow[i] + c*osc[i])
		ssRes += d * d
	}

	return Fit{A: a, B: b, C: c, R2: 1 - ssRes/ssTot}, true
}

// assemble turns the best grid candidate into the public result.
func assemble(best candidate, n int) Result {
	if !best.found() {
		return Result{}
	}

	if best.fit.R2 <= acceptR2 {
		// A best fit exists but nothing usable: report its R-squared so
		// callers can see how close the series came.
		return Result{R2: best.fit.R2}
	}

	fit := best.fit
	confidence := clamp((fit.R2-acceptR2)/confidenceSpan, 0, 1)
	tcDays := int(math.Round(fit.TC - float64(n) + 1))

	return Result{
		IsBubble:   confidence > minBubbleConfidence && tcDays > minTCDays && tcDays < maxTCDays,
		Confidence: confidence,
		TCDays:     tcDays,
		R2:         fit.R2,
		Fit:        &fit,
	}
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
