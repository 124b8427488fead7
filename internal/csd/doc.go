// Package csd computes critical-slowing-down indicators over a residual
// series.
//
// Critical slowing down is the pre-transition phenomenon where a
// dynamical system recovers more slowly from perturbations. It shows up
// in observational data as rising lag-1 autocorrelation and variance of
// the detrended residuals:
//
//   - [RollingAR1]: trailing-window lag-1 autocorrelation
//   - [RollingVariance]: trailing-window sample variance
//   - [KendallTau]: rank test for a monotonic AR(1) trend
//   - [Classify]: maps the latest AR(1) value to a status band
//
// # Window alignment
//
// RollingAR1 produces its first value at index window+1 while
// RollingVariance produces its first at index window; the AR(1) lagged
// window needs one extra point of history. Entries before the first
// valid index are NaN, never zero.
package csd
