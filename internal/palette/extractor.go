package palette

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
)

// SwatchExtractor defines the interface for palette extraction algorithms.
type SwatchExtractor interface {
	// Extract clusters the image's pixels into at most count representative
	// swatches, ordered by descending area of coverage.
	Extract(img image.Image, count int) ([]ColorSwatch, error)
}

// KMeansExtractor implements swatch extraction using k-means clustering in
// RGB space over a downscaled copy of the image.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	thumbSize     int
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		thumbSize:     128, // clustering input, keeps pixel counts bounded
	}
}

type point3D struct {
	R, G, B float64
}

// Extract clusters the image's pixels into representative color swatches.
// Initial centroids are chosen deterministically so that repeated extraction
// from the same image yields identical swatches.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]ColorSwatch, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("swatch count must be at least 1, got %d", count)
	}
	if count > 64 {
		return nil, fmt.Errorf("swatch count too large: %d (maximum: 64)", count)
	}

	thumb := imaging.Fit(img, e.thumbSize, e.thumbSize, imaging.Lanczos)
	pixels := samplePixels(thumb)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniquePoints(pixels)
	if count >= len(unique) {
		// Fewer distinct colors than requested swatches: each unique color
		// becomes its own cluster.
		return e.swatchesFromClusters(unique, assignAll(pixels, unique)), nil
	}

	centroids := e.initialCentroids(unique, count)
	centroids, assignment := e.kmeans(pixels, centroids)

	return e.swatchesFromClusters(centroids, countAssignments(assignment, len(centroids))), nil
}

// samplePixels collects every pixel of the (already downscaled) image.
func samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	pixels := make([]point3D, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			pixels = append(pixels, point3D{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}
	return pixels
}

func uniquePoints(pixels []point3D) []point3D {
	seen := make(map[point3D]bool, len(pixels))
	unique := make([]point3D, 0, len(pixels))
	for _, p := range pixels {
		if !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}
	return unique
}

// initialCentroids picks count seed centroids evenly spaced across the
// unique colors ordered by luminance. Deterministic by construction, which
// keeps extraction idempotent for a fixed image.
func (e *KMeansExtractor) initialCentroids(unique []point3D, count int) []point3D {
	ordered := make([]point3D, len(unique))
	copy(ordered, unique)
	sort.Slice(ordered, func(i, j int) bool {
		li := 0.299*ordered[i].R + 0.587*ordered[i].G + 0.114*ordered[i].B
		lj := 0.299*ordered[j].R + 0.587*ordered[j].G + 0.114*ordered[j].B
		if li != lj {
			return li < lj
		}
		if ordered[i].R != ordered[j].R {
			return ordered[i].R < ordered[j].R
		}
		if ordered[i].G != ordered[j].G {
			return ordered[i].G < ordered[j].G
		}
		return ordered[i].B < ordered[j].B
	})

	centroids := make([]point3D, count)
	step := float64(len(ordered)) / float64(count)
	for i := 0; i < count; i++ {
		idx := int(float64(i)*step + step/2)
		if idx >= len(ordered) {
			idx = len(ordered) - 1
		}
		centroids[i] = ordered[idx]
	}
	return centroids
}

// kmeans iterates assignment and centroid updates until movement falls
// below the convergence distance or the iteration budget is exhausted.
func (e *KMeansExtractor) kmeans(pixels []point3D, centroids []point3D) ([]point3D, []int) {
	assignment := make([]int, len(pixels))

	for iter := 0; iter < e.maxIterations; iter++ {
		for i, p := range pixels {
			assignment[i] = nearestCentroid(p, centroids)
		}

		moved := 0.0
		sums := make([]point3D, len(centroids))
		counts := make([]int, len(centroids))
		for i, p := range pixels {
			c := assignment[i]
			sums[c].R += p.R
			sums[c].G += p.G
			sums[c].B += p.B
			counts[c]++
		}

		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			next := point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
			moved += distance(centroids[i], next)
			centroids[i] = next
		}

		if moved < e.convergence {
			break
		}
	}

	for i, p := range pixels {
		assignment[i] = nearestCentroid(p, centroids)
	}
	return centroids, assignment
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		if d := distance(p, c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func distance(a, b point3D) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func assignAll(pixels []point3D, centroids []point3D) []int {
	counts := make([]int, len(centroids))
	for _, p := range pixels {
		counts[nearestCentroid(p, centroids)]++
	}
	return counts
}

func countAssignments(assignment []int, clusters int) []int {
	counts := make([]int, clusters)
	for _, c := range assignment {
		counts[c]++
	}
	return counts
}

// swatchesFromClusters converts cluster centroids and sizes into swatch
// records ordered by descending area.
func (e *KMeansExtractor) swatchesFromClusters(centroids []point3D, counts []int) []ColorSwatch {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return []ColorSwatch{}
	}

	swatches := make([]ColorSwatch, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		r := int(math.Round(c.R))
		g := int(math.Round(c.G))
		b := int(math.Round(c.B))
		hue, sat, light := rgbToHSL(c.R/255, c.G/255, c.B/255)

		swatches = append(swatches, ColorSwatch{
			Hex:        fmt.Sprintf("#%02x%02x%02x", r, g, b),
			Red:        r,
			Green:      g,
			Blue:       b,
			Hue:        hue,
			Saturation: sat,
			Lightness:  light,
			Intensity:  (c.R + c.G + c.B) / 3 / 255,
			Area:       float64(counts[i]) / float64(total),
		})
	}

	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Area > swatches[j].Area
	})
	return swatches
}

// rgbToHSL converts unit-range RGB to HSL with the hue normalized to [0,1).
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min

	l = (max + min) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	switch max {
	case r:
		h = (g - b) / delta
		if h < 0 {
			h += 6
		}
	case g:
		h = 2 + (b-r)/delta
	case b:
		h = 4 + (r-g)/delta
	}
	h /= 6
	if h >= 1 {
		h = 0
	}
	return h, s, l
}
