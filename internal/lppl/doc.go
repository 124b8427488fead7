// Package lppl fits the log-periodic power law bubble model to a price
// series.
//
// The model describes super-exponential growth toward a finite-time
// singularity at critical time tc, decorated with log-periodic
// oscillations:
//
//	ln p(t) = A + B*(tc-t)^m + C*(tc-t)^m * cos(omega*ln(tc-t) + phi)
//
// Fitting is a nested search: the nonlinear parameters (tc, m, omega,
// phi) come from a fixed grid, and for each grid point the linear
// parameters (A, B, C) are solved exactly in closed form. A candidate
// counts as a proper bubble signature only when B < 0 and |C| <= |B|.
//
// The grid search dominates the cost of the whole engine. Grid points
// are independent and read-only over the input, so [OptimizeGrid]
// parallelizes across workers and honors context cancellation by
// returning the best candidate found so far.
package lppl
