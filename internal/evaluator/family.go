package evaluator

import (
	"math"
	"strconv"
)

// The five coarse color families used as a proxy for visually distinct
// colors.
const (
	FamilyPink   = "pink"
	FamilyBrown  = "brown"
	FamilyGreen  = "green"
	FamilyBlue   = "blue"
	FamilyPurple = "purple"
)

// ClassifyHue buckets a normalized hue in [0,1) into one of the five color
// families. The mapping is a pure function of the hue alone: identical hue
// always yields the identical family.
//
// The families partition the rounded hue scale r in [0,1000], with pink
// wrapping across the 0/1000 boundary. For hue outside the [0,1) contract
// the decimal string of r is returned instead of a family name; that branch
// is unreachable for in-contract input and exists only so an out-of-range
// hue still maps to a deterministic tag.
func ClassifyHue(hue float64) string {
	r := int(math.Round(hue * 1000))

	switch {
	case (r > 900 && r <= 1000) || (r >= 0 && r <= 50):
		return FamilyPink
	case r > 50 && r <= 140:
		return FamilyBrown
	case r > 140 && r <= 490:
		return FamilyGreen
	case r > 490 && r <= 600:
		return FamilyBlue
	case r > 600 && r <= 900:
		return FamilyPurple
	}

	return strconv.Itoa(r)
}
