package csd

import "github.com/san-kum/crashwatch/internal/series"

// minTauPoints is the smallest number of defined AR(1) values for which
// a rank trend is meaningful; below it the test reports neutral.
const minTauPoints = 10

// KendallTau measures the monotonic trend of the trailing AR(1) values
// against time. Undefined entries are filtered first, then the last
// lookback defined values are ranked. Because time strictly increases,
// a pair (i<j) is concordant when values[j] > values[i], discordant
// when smaller, and ties count toward neither.
//
// Returns 0 (neutral, not an error) when fewer than 10 defined values
// remain. A value near +1 means the AR(1) series is steadily rising.
func KendallTau(ar1 series.Series, lookback int) (float64, error) {
	if lookback <= 0 {
		return 0, series.ErrLookback
	}

	values := ar1.Defined().Tail(lookback)
	k := len(values)
	if k < minTauPoints {
		return 0, nil
	}

	concordant, discordant := 0, 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			switch {
			case values[j] > values[i]:
				concordant++
			case values[j] < values[i]:
				discordant++
			}
		}
	}

	totalPairs := k * (k - 1) / 2
	return float64(concordant-discordant) / float64(totalPairs), nil
}
