package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LCh converts a swatch's RGB channels to CIELCh coordinates via the
// standard sRGB → CIELAB → LCh transform (D65 reference white).
// Lightness is returned on the 0-100 CIE scale, chroma on the matching
// 0-~130 scale, and hue in degrees [0,360).
//
// The conversion is recomputed from RGB on every call so that threshold
// changes always see consistent values; callers must not cache the result
// across pipeline runs.
func LCh(s ColorSwatch) (lightness, chroma, hue float64) {
	c := colorful.Color{
		R: float64(s.Red) / 255.0,
		G: float64(s.Green) / 255.0,
		B: float64(s.Blue) / 255.0,
	}

	// go-colorful reports L and C on a 0-1 scale; the pipeline thresholds
	// are expressed on the conventional 0-100 CIE scale. The transform can
	// return values a few ulps below zero for pure black, which would break
	// the L >= threshold contract at threshold 0, so both axes are floored.
	h, cc, ll := c.Hcl()
	return math.Max(ll*100, 0), math.Max(cc*100, 0), h
}
