package series

import "math"

// Series is an ordered sequence of observations, one per time step.
// Rolling statistics use NaN to mark entries with insufficient history;
// NaN is distinguishable from a genuine zero value.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every entry is a finite number.
func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AllPositive reports whether every entry is strictly positive.
func (s Series) AllPositive() bool {
	for _, v := range s {
		if v <= 0 {
			return false
		}
	}
	return true
}

func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// SampleVariance returns the variance with denominator n-1.
func (s Series) SampleVariance() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	sum := 0.0
	for _, v := range s {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(s)-1)
}

// Log returns a new series of natural logs. Entries must be positive.
func (s Series) Log() Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = math.Log(v)
	}
	return out
}

// Tail returns the last n entries, or the whole series when shorter.
func (s Series) Tail(n int) Series {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Defined filters out NaN entries, preserving order.
func (s Series) Defined() Series {
	out := make(Series, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// LastDefined returns the last non-NaN entry, or 0 when none exists.
func (s Series) LastDefined() float64 {
	for i := len(s) - 1; i >= 0; i-- {
		if !math.IsNaN(s[i]) {
			return s[i]
		}
	}
	return 0
}

// Undefined builds a series of the given length with every entry NaN.
func Undefined(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
