package csd

// Status classifies the current resilience of the series from its
// latest defined AR(1) value.
type Status string

const (
	StatusNormal   Status = "NORMAL"
	StatusRising   Status = "RISING"
	StatusElevated Status = "ELEVATED"
	StatusCritical Status = "CRITICAL"
)

// Fixed design thresholds, not configurable.
const (
	risingThreshold   = 0.6
	elevatedThreshold = 0.7
	criticalThreshold = 0.8
)

// Classify maps an AR(1) value to a status band.
func Classify(ar1 float64) Status {
	switch {
	case ar1 > criticalThreshold:
		return StatusCritical
	case ar1 > elevatedThreshold:
		return StatusElevated
	case ar1 > risingThreshold:
		return StatusRising
	default:
		return StatusNormal
	}
}
