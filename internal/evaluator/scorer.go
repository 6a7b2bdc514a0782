package evaluator

import (
	"math"
)

// Score envelope: palettes with more swatches or more distinct families
// than these are never flagged as monochrome.
const (
	maxScoredSwatches = 20
	maxScoredFamilies = 3
)

// Linear scales for the two diversity estimates.
const (
	swatchCountScale = 15.0
	familyCountScale = 5.0
)

// MonochromeScore computes the 0-100 likely-monochrome score from the
// filtered swatch count and the distinct family count. Higher means more
// likely the image is near-grayscale or single-hue.
//
// Two independent confidence-of-diversity estimates are blended: the swatch
// count on a 15-swatch scale and the family count on a 5-family scale.
// Abundant (n > 20) or sufficiently varied (d > 3) palettes score 0
// regardless of the blend.
func MonochromeScore(swatchCount, familyCount int) int {
	if swatchCount > maxScoredSwatches || familyCount > maxScoredFamilies {
		return 0
	}

	countScore := float64(swatchCount) * 100 / swatchCountScale
	familyScore := float64(familyCount) * 100 / familyCountScale
	blend := int(math.Floor(math.Abs((countScore+familyScore)/2 - 100)))

	// Bounded by construction within the envelope; clamped so the 0-100
	// output contract holds even for out-of-envelope input.
	if blend < 0 {
		return 0
	}
	if blend > 100 {
		return 100
	}
	return blend
}
