package fraudcheck

import "math"

// Classify maps a delivery history to a risk level. A phone with no parcels
// has unknown risk.
func Classify(total, success int) (float64, Risk) {
	if total <= 0 {
		return 0, RiskUnknown
	}
	ratio := math.Round(float64(success)/float64(total)*10000) / 100
	switch {
	case ratio >= 80:
		return ratio, RiskLow
	case ratio >= 50:
		return ratio, RiskMedium
	default:
		return ratio, RiskHigh
	}
}
