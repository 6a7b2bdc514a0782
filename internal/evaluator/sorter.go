package evaluator

import (
	"sort"

	"go-palette-triage/internal/palette"
)

// SortSwatches orders classified swatches by ascending perceptual hue,
// breaking ties by ascending perceptual lightness, then ascending perceptual
// chroma. Swatches equal on all three keep their original relative order.
// The input slice is not mutated.
func SortSwatches(swatches []ClassifiedSwatch) []ClassifiedSwatch {
	sorted := make([]ClassifiedSwatch, len(swatches))
	copy(sorted, swatches)

	sort.SliceStable(sorted, func(i, j int) bool {
		li, ci, hi := palette.LCh(sorted[i].ColorSwatch)
		lj, cj, hj := palette.LCh(sorted[j].ColorSwatch)

		if hi != hj {
			return hi < hj
		}
		if li != lj {
			return li < lj
		}
		return ci < cj
	})

	return sorted
}
