package evaluator

import (
	"go-palette-triage/internal/palette"
)

// ImageEvaluator defines the interface for the palette-evaluation pipeline
type ImageEvaluator interface {
	// Evaluate runs the pipeline over the whole batch under one immutable
	// config, returning results in the batch's input order. Ranking is a
	// separate, caller-selected concern.
	Evaluate(palettes []palette.ImagePalette, cfg Config) []EvaluatedImage

	// EvaluateOne runs the pipeline for a single image palette.
	EvaluateOne(p palette.ImagePalette, cfg Config) EvaluatedImage
}

// imageEvaluator implements ImageEvaluator. It is stateless: every
// evaluation is a pure function of the (palettes, config) pair, so
// recomputation with unchanged inputs yields an identical result.
type imageEvaluator struct{}

// NewImageEvaluator creates a new pipeline evaluator
func NewImageEvaluator() ImageEvaluator {
	return &imageEvaluator{}
}

func (e *imageEvaluator) Evaluate(palettes []palette.ImagePalette, cfg Config) []EvaluatedImage {
	results := make([]EvaluatedImage, len(palettes))
	for i, p := range palettes {
		results[i] = e.EvaluateOne(p, cfg)
	}
	return results
}

// EvaluateOne filters the raw swatches, classifies each survivor into a
// color family, sorts the classified palette, and derives the distinct
// family set, validity flag and monochrome score from the filtered list.
func (e *imageEvaluator) EvaluateOne(p palette.ImagePalette, cfg Config) EvaluatedImage {
	filtered := FilterSwatches(p.Swatches, cfg.DarkThreshold, cfg.GrayThreshold)

	classified := make([]ClassifiedSwatch, len(filtered))
	for i, s := range filtered {
		classified[i] = ClassifiedSwatch{
			ColorSwatch: s,
			ColorFamily: ClassifyHue(s.Hue),
		}
	}

	sorted := SortSwatches(classified)
	distinct := distinctFamilies(sorted)

	n := len(sorted)
	d := len(distinct)

	return EvaluatedImage{
		ImageRef:        p.ImageRef,
		Colors:          sorted,
		DistinctColors:  distinct,
		Valid:           d >= cfg.MinDistinctColorsRequired && n >= cfg.MinColorsRequired,
		MonochromeScore: MonochromeScore(n, d),
	}
}

// distinctFamilies collects the unique family tags in first-appearance
// order over the sorted palette, so the set is deterministic for a fixed
// input.
func distinctFamilies(swatches []ClassifiedSwatch) []string {
	seen := make(map[string]bool, len(swatches))
	families := make([]string, 0, len(swatches))
	for _, s := range swatches {
		if !seen[s.ColorFamily] {
			families = append(families, s.ColorFamily)
			seen[s.ColorFamily] = true
		}
	}
	return families
}
