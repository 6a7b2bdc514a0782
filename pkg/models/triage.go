package models

// TriageRequest is the inbound request for a batch triage run
type TriageRequest struct {
	Images  []string        `json:"images" binding:"required,min=1"`
	Config  *PipelineConfig `json:"config,omitempty"`
	Ranking string          `json:"ranking,omitempty"` // "monochrome_score" (default) or "distinct_colors"
}

// PipelineConfig carries the user-adjustable thresholds. Omitted fields
// fall back to the service defaults.
type PipelineConfig struct {
	MinColorsRequired         *int     `json:"min_colors_required,omitempty"`
	MinDistinctColorsRequired *int     `json:"min_distinct_colors_required,omitempty"`
	DarkThreshold             *float64 `json:"dark_threshold,omitempty"`
	GrayThreshold             *float64 `json:"gray_threshold,omitempty"`
}

// AppliedConfig echoes the thresholds the pipeline actually ran with
type AppliedConfig struct {
	MinColorsRequired         int     `json:"min_colors_required"`
	MinDistinctColorsRequired int     `json:"min_distinct_colors_required"`
	DarkThreshold             float64 `json:"dark_threshold"`
	GrayThreshold             float64 `json:"gray_threshold"`
}

// ClassifiedSwatch is one filtered, family-tagged color in an image's
// evaluated palette
type ClassifiedSwatch struct {
	Hex         string  `json:"hex"`
	Red         int     `json:"red"`
	Green       int     `json:"green"`
	Blue        int     `json:"blue"`
	Hue         float64 `json:"hue"`
	Saturation  float64 `json:"saturation"`
	Lightness   float64 `json:"lightness"`
	Intensity   float64 `json:"intensity"`
	Area        float64 `json:"area"`
	ColorFamily string  `json:"color_family"`
}

// EvaluatedImage is the per-image triage result exposed to callers
type EvaluatedImage struct {
	ImageRef        string             `json:"image_ref"`
	Colors          []ClassifiedSwatch `json:"colors"`
	DistinctColors  []string           `json:"distinct_colors"`
	Valid           bool               `json:"valid"`
	MonochromeScore int                `json:"monochrome_score"`
}

// TriageResponse is the ranked batch result
type TriageResponse struct {
	BatchID           string           `json:"batch_id"`
	Timestamp         string           `json:"timestamp"`
	ProcessingTimeSec float64          `json:"processing_time_sec"`
	Ranking           string           `json:"ranking"`
	AppliedConfig     AppliedConfig    `json:"applied_config"`
	Images            []EvaluatedImage `json:"images"`
}
