package services

import (
	"fmt"
	"image"

	"go-palette-triage/internal/evaluator"
	"go-palette-triage/internal/palette"
)

const defaultSwatchCount = 10

// PaletteTriageService evaluates already-decoded images in process. It runs
// the same extraction and evaluation pipeline as the HTTP API, for callers
// embedding the triage logic directly instead of going through a server.
type PaletteTriageService struct {
	extractor   palette.SwatchExtractor
	evaluator   evaluator.ImageEvaluator
	swatchCount int
}

// NewPaletteTriageService creates a new in-process triage service.
// swatchCount <= 0 selects the default palette size.
func NewPaletteTriageService(extractor palette.SwatchExtractor, imageEvaluator evaluator.ImageEvaluator, swatchCount int) *PaletteTriageService {
	if swatchCount <= 0 {
		swatchCount = defaultSwatchCount
	}
	return &PaletteTriageService{
		extractor:   extractor,
		evaluator:   imageEvaluator,
		swatchCount: swatchCount,
	}
}

// NewDefaultPaletteTriageService creates an in-process triage service with
// the default extractor and evaluator.
func NewDefaultPaletteTriageService() *PaletteTriageService {
	return NewPaletteTriageService(palette.NewKMeansExtractor(), evaluator.NewImageEvaluator(), defaultSwatchCount)
}

// EvaluateImage extracts the image's palette and evaluates it under cfg.
// imageRef is a caller-chosen label carried through to the result.
func (s *PaletteTriageService) EvaluateImage(img image.Image, imageRef string, cfg evaluator.Config) (evaluator.EvaluatedImage, error) {
	swatches, err := s.extractor.Extract(img, s.swatchCount)
	if err != nil {
		return evaluator.EvaluatedImage{}, fmt.Errorf("failed to extract palette: %w", err)
	}
	p := palette.ImagePalette{ImageRef: imageRef, Swatches: swatches}
	return s.evaluator.EvaluateOne(p, cfg), nil
}

// EvaluatePalette evaluates an already-extracted palette under cfg.
func (s *PaletteTriageService) EvaluatePalette(p palette.ImagePalette, cfg evaluator.Config) evaluator.EvaluatedImage {
	return s.evaluator.EvaluateOne(p, cfg)
}
