package lppl

import "math"

// Fit holds the parameters of a log-periodic power law curve
//
//	ln p(t) = A + B*(tc-t)^m + C*(tc-t)^m * cos(omega*ln(tc-t) + phi)
//
// valid for t < tc. TC is the critical time, an index beyond the end of
// the observed series; M controls the power-law singularity rate; Omega
// is the log-periodic oscillation frequency; Phi the phase; A, B and C
// are the linear amplitude parameters.
type Fit struct {
	TC    float64
	A     float64
	B     float64
	C     float64
	M     float64
	Omega float64
	Phi   float64
	R2    float64
}

// Eval returns the modeled log price at time index t. Only meaningful
// for t < TC.
func (f Fit) Eval(t float64) float64 {
	dt := f.TC - t
	pow := math.Pow(dt, f.M)
	return f.A + f.B*pow + f.C*pow*math.Cos(f.Omega*math.Log(dt)+f.Phi)
}

// Result is the outcome of a fitting run. Fit is nil when no candidate
// cleared the acceptance threshold; R2 still carries the best value
// found (0 when nothing valid was seen). TCDays is only meaningful when
// Fit is non-nil.
type Result struct {
	IsBubble   bool
	Confidence float64
	TCDays     int
	R2         float64
	Fit        *Fit
}

const (
	// minObservations is the shortest series the fit accepts; shorter
	// input yields the zero-confidence sentinel result, not an error.
	minObservations = 100

	// maxObservations truncates the input to its most recent window.
	// Bubble dynamics are a recent phenomenon; older history dilutes
	// the fit.
	maxObservations = 500

	// acceptR2 is the minimum coefficient of determination for a
	// candidate to count as a usable fit.
	acceptR2 = 0.75

	// confidenceSpan rescales R2 in [acceptR2, acceptR2+span] onto
	// confidence [0, 1].
	confidenceSpan = 0.20

	// A bubble call additionally needs confidence above this and a
	// predicted critical time neither too near-term nor too far out.
	minBubbleConfidence = 0.3
	minTCDays           = 5
	maxTCDays           = 200
)
