package lppl

import "math"

// Grid describes the search densities for the nonlinear parameters.
// The defaults are the canonical grid; the values are deliberately
// explicit constants rather than magic numbers scattered through the
// search loop, so a caller tuning density changes exactly one place.
type Grid struct {
	// Critical-time candidates run from n+TCMin to n+TCMax stepped by
	// TCStep, where n is the length of the (truncated) series.
	TCMin  int
	TCMax  int
	TCStep int

	M     []float64
	Omega []float64
	Phi   []float64
}

// DefaultGrid returns the canonical search grid.
func DefaultGrid() Grid {
	return Grid{
		TCMin:  5,
		TCMax:  200,
		TCStep: 10,
		M:      []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
		Omega:  []float64{5, 7, 9, 11, 13},
		Phi:    []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2},
	}
}

// tcCandidates lists the absolute critical-time values for a series of
// length n.
func (g Grid) tcCandidates(n int) []float64 {
	var tcs []float64
	for off := g.TCMin; off <= g.TCMax; off += g.TCStep {
		tcs = append(tcs, float64(n+off))
	}
	return tcs
}

// comboCount returns the number of (m, omega, phi) combinations per tc
// candidate.
func (g Grid) comboCount() int {
	return len(g.M) * len(g.Omega) * len(g.Phi)
}
