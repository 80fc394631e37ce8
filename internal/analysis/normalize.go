package analysis

import "math"

// DefaultScore is the neutral score used when a metric is missing or its
// range is degenerate.
const DefaultScore = 50

// Normalize maps value into an integer 0-100 score by min-max scaling.
// A nil or NaN value yields DefaultScore. When higherIsBetter is false the
// scale is inverted, so the two orientations are complementary: for any
// in-range value they sum to 100 (within rounding).
//
// A degenerate range (min == max) carries no ranking information and also
// yields DefaultScore.
func Normalize(value *float64, min, max float64, higherIsBetter bool) int {
	if value == nil || math.IsNaN(*value) {
		return DefaultScore
	}
	if min == max {
		return DefaultScore
	}

	v := math.Min(math.Max(*value, min), max)
	ratio := (v - min) / (max - min)
	if !higherIsBetter {
		ratio = 1 - ratio
	}
	return int(math.Round(ratio * 100))
}

// clampScore bounds a weighted sum into [0,100] and rounds to an integer.
func clampScore(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), 100)))
}
