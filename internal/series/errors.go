package series

import "errors"

// Configuration errors. These indicate caller bugs and are distinct from
// the insufficient-data sentinels, which are ordinary results.
var (
	// ErrBandwidth indicates a non-positive detrend bandwidth.
	ErrBandwidth = errors.New("series: bandwidth must be positive")

	// ErrWindow indicates a rolling window too small to produce a statistic.
	ErrWindow = errors.New("series: window must be greater than 1")

	// ErrLookback indicates a non-positive trend-test lookback.
	ErrLookback = errors.New("series: lookback must be positive")

	// ErrEmpty indicates an empty input series where one is required.
	ErrEmpty = errors.New("series: empty price series")
)
