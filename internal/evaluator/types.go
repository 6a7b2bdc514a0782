package evaluator

import (
	"go-palette-triage/internal/palette"
)

// ClassifiedSwatch is a color swatch augmented with its color family tag.
// It is a derived value, recomputed on every pipeline run and never
// persisted.
type ClassifiedSwatch struct {
	palette.ColorSwatch
	ColorFamily string `json:"color_family"`
}

// EvaluatedImage is the pipeline output for a single image. It is created
// fresh on every recomputation and never mutated after construction; the
// next recomputation supersedes it wholesale.
type EvaluatedImage struct {
	ImageRef        string             `json:"image_ref"`
	Colors          []ClassifiedSwatch `json:"colors"`
	DistinctColors  []string           `json:"distinct_colors"`
	Valid           bool               `json:"valid"`
	MonochromeScore int                `json:"monochrome_score"`
}
