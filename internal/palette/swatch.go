package palette

// ColorSwatch represents one representative color extracted from an image.
// Swatches are immutable once produced by extraction; perceptual values are
// derived on demand (see LCh) and never stored on the swatch.
type ColorSwatch struct {
	Hex        string  `json:"hex"`
	Red        int     `json:"red"`
	Green      int     `json:"green"`
	Blue       int     `json:"blue"`
	Hue        float64 `json:"hue"`        // normalized hue in [0,1)
	Saturation float64 `json:"saturation"` // HSL saturation in [0,1]
	Lightness  float64 `json:"lightness"`  // HSL lightness in [0,1]
	Intensity  float64 `json:"intensity"`  // mean channel intensity in [0,1]
	Area       float64 `json:"area"`       // fraction of image covered in [0,1]
}

// ImagePalette pairs an image reference with the ordered swatches extracted
// from it. It is read-only input to the evaluation pipeline.
type ImagePalette struct {
	ImageRef string        `json:"image_ref"`
	Swatches []ColorSwatch `json:"swatches"`
}

// EmptyPalette returns the placeholder palette substituted when an image
// cannot be fetched or decoded. It flows through the pipeline normally and
// evaluates as an invalid, fully monochrome result.
func EmptyPalette(imageRef string) ImagePalette {
	return ImagePalette{
		ImageRef: imageRef,
		Swatches: []ColorSwatch{},
	}
}
