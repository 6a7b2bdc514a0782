package evaluator

// Config holds the user-adjustable thresholds for one pipeline run.
// A Config is immutable per recomputation; any change to it triggers a full
// re-evaluation of the batch by the caller.
type Config struct {
	// Validity requirements
	MinColorsRequired         int
	MinDistinctColorsRequired int

	// Perceptual filter floors (CIELCh scale)
	DarkThreshold float64 // minimum lightness, 0-88
	GrayThreshold float64 // minimum chroma, 0-12
}

// DefaultConfig returns the default pipeline configuration
func DefaultConfig() Config {
	return Config{
		MinColorsRequired:         3,
		MinDistinctColorsRequired: 2,
		DarkThreshold:             20.0,
		GrayThreshold:             5.0,
	}
}

// StrictConfig returns a configuration for strict triage, requiring a
// richer palette before an image passes
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.MinColorsRequired = 5
	cfg.MinDistinctColorsRequired = 3
	cfg.DarkThreshold = 30.0
	cfg.GrayThreshold = 8.0
	return cfg
}

// LenientConfig returns a configuration that only rejects near-empty
// palettes
func LenientConfig() Config {
	cfg := DefaultConfig()
	cfg.MinColorsRequired = 1
	cfg.MinDistinctColorsRequired = 1
	cfg.DarkThreshold = 5.0
	cfg.GrayThreshold = 2.0
	return cfg
}

// WithMinimums returns a copy of the config with updated validity
// requirements
func (c Config) WithMinimums(minColors, minDistinct int) Config {
	c.MinColorsRequired = minColors
	c.MinDistinctColorsRequired = minDistinct
	return c
}

// WithThresholds returns a copy of the config with updated filter floors
func (c Config) WithThresholds(dark, gray float64) Config {
	c.DarkThreshold = dark
	c.GrayThreshold = gray
	return c
}
