package adjustment

import "math"

// FactorPrecision is the number of decimal places factors are kept at.
const FactorPrecision = 4

// DisplayPrecision is used for per-season adjusted goals in reports.
const DisplayPrecision = 2

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// roundGoals rounds half away from zero.
func roundGoals(v float64) int {
	return int(math.Round(v))
}
