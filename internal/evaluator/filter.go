package evaluator

import (
	"go-palette-triage/internal/palette"
)

// FilterSwatches keeps the swatches whose perceptual lightness and chroma
// both meet the configured floors, preserving the original relative order.
// Raising either threshold can only shrink the kept set for a fixed input.
func FilterSwatches(swatches []palette.ColorSwatch, darkThreshold, grayThreshold float64) []palette.ColorSwatch {
	kept := make([]palette.ColorSwatch, 0, len(swatches))
	for _, s := range swatches {
		lightness, chroma, _ := palette.LCh(s)
		if lightness >= darkThreshold && chroma >= grayThreshold {
			kept = append(kept, s)
		}
	}
	return kept
}
