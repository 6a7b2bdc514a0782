package validation

import (
	"fmt"

	apperrors "go-palette-triage/internal/errors"
)

// ConfigBounds defines the acceptable ranges for user-adjustable pipeline
// thresholds
type ConfigBounds struct {
	MaxMinDistinctColors int
	MaxDarkThreshold     float64
	MaxGrayThreshold     float64
}

// DefaultConfigBounds returns the default threshold bounds
func DefaultConfigBounds() ConfigBounds {
	return ConfigBounds{
		MaxMinDistinctColors: 6,
		MaxDarkThreshold:     88.0,
		MaxGrayThreshold:     12.0,
	}
}

// ConfigValidator validates pipeline configurations before a run
type ConfigValidator struct {
	bounds ConfigBounds
}

// NewConfigValidator creates a config validator with default bounds
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		bounds: DefaultConfigBounds(),
	}
}

// NewConfigValidatorWithBounds creates a config validator with custom bounds
func NewConfigValidatorWithBounds(bounds ConfigBounds) *ConfigValidator {
	return &ConfigValidator{
		bounds: bounds,
	}
}

// ValidateConfig checks every threshold against its bound. Out-of-bounds
// requests are rejected before the pipeline runs.
func (v *ConfigValidator) ValidateConfig(minColors, minDistinctColors int, darkThreshold, grayThreshold float64) error {
	if minColors < 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("min colors required must be >= 0 (got %d)", minColors), nil)
	}
	if minDistinctColors < 0 || minDistinctColors > v.bounds.MaxMinDistinctColors {
		return apperrors.NewValidationError(
			fmt.Sprintf("min distinct colors required must be in [0,%d] (got %d)",
				v.bounds.MaxMinDistinctColors, minDistinctColors), nil)
	}
	if darkThreshold < 0 || darkThreshold > v.bounds.MaxDarkThreshold {
		return apperrors.NewValidationError(
			fmt.Sprintf("dark threshold must be in [0,%.0f] (got %g)",
				v.bounds.MaxDarkThreshold, darkThreshold), nil)
	}
	if grayThreshold < 0 || grayThreshold > v.bounds.MaxGrayThreshold {
		return apperrors.NewValidationError(
			fmt.Sprintf("gray threshold must be in [0,%.0f] (got %g)",
				v.bounds.MaxGrayThreshold, grayThreshold), nil)
	}
	return nil
}
