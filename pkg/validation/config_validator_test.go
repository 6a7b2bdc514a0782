package validation

import (
	"testing"

	apperrors "go-palette-triage/internal/errors"
)

type thresholdSet struct {
	minColors         int
	minDistinctColors int
	darkThreshold     float64
	grayThreshold     float64
}

func TestValidateConfig_Valid(t *testing.T) {
	validator := NewConfigValidator()

	configs := []thresholdSet{
		{3, 2, 20, 5},    // service defaults
		{5, 3, 30, 8},    // strict preset
		{1, 1, 5, 2},     // lenient preset
		{0, 0, 0, 0},     // floors disabled
		{100, 6, 88, 12}, // every bound at its limit
	}

	for i, cfg := range configs {
		err := validator.ValidateConfig(cfg.minColors, cfg.minDistinctColors, cfg.darkThreshold, cfg.grayThreshold)
		if err != nil {
			t.Errorf("Expected config %d to pass validation, got error: %v", i, err)
		}
	}
}

func TestValidateConfig_OutOfBounds(t *testing.T) {
	validator := NewConfigValidator()

	tests := []struct {
		name string
		cfg  thresholdSet
	}{
		{"negative min colors", thresholdSet{-1, 2, 20, 5}},
		{"negative min distinct colors", thresholdSet{3, -1, 20, 5}},
		{"min distinct colors above bound", thresholdSet{3, 7, 20, 5}},
		{"negative dark threshold", thresholdSet{3, 2, -1, 5}},
		{"dark threshold above bound", thresholdSet{3, 2, 88.5, 5}},
		{"negative gray threshold", thresholdSet{3, 2, 20, -0.5}},
		{"gray threshold above bound", thresholdSet{3, 2, 20, 12.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateConfig(tt.cfg.minColors, tt.cfg.minDistinctColors, tt.cfg.darkThreshold, tt.cfg.grayThreshold)
			if err == nil {
				t.Fatal("Expected out-of-bounds config to fail validation")
			}
			if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
				t.Errorf("Expected validation error, got: %v", err)
			}
		})
	}
}

func TestValidateConfig_CustomBounds(t *testing.T) {
	validator := NewConfigValidatorWithBounds(ConfigBounds{
		MaxMinDistinctColors: 4,
		MaxDarkThreshold:     50,
		MaxGrayThreshold:     8,
	})

	if err := validator.ValidateConfig(3, 4, 20, 5); err != nil {
		t.Errorf("Expected config within custom bounds to pass, got error: %v", err)
	}
	if err := validator.ValidateConfig(3, 5, 20, 5); err == nil {
		t.Error("Expected config above custom distinct bound to fail validation")
	}
	if err := validator.ValidateConfig(3, 2, 60, 5); err == nil {
		t.Error("Expected config above custom dark bound to fail validation")
	}
}
