package analysis

import "tidewatch/model"

// Risk level tiers. The four tiers partition [0,100] with no gaps:
// Critical >= 80 > High >= 60 > Medium >= 40 > Low.
const (
	RiskCritical = "Critical"
	RiskHigh     = "High"
	RiskMedium   = "Medium"
	RiskLow      = "Low"
)

// RiskLevelFor assigns the tier for a clamped risk score.
func RiskLevelFor(score float64) string {
	switch {
	case score >= 80:
		return RiskCritical
	case score >= 60:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// SeverityScore is the risk contribution of a disruption severity.
// Unknown severities contribute 5.
func SeverityScore(s model.Severity) float64 {
	switch s {
	case model.SeverityCritical:
		return 25
	case model.SeverityHigh:
		return 15
	case model.SeverityMedium:
		return 8
	case model.SeverityLow:
		return 3
	default:
		return 5
	}
}

// clampScore bounds a risk score into [0,100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
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
