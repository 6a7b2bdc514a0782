package service

import (
	"context"
	"time"

	apperrors "go-palette-triage/internal/errors"
	"go-palette-triage/internal/evaluator"
	"go-palette-triage/internal/observer"
	"go-palette-triage/internal/palette"
	"go-palette-triage/internal/repository"
	"go-palette-triage/internal/strategy"
	"go-palette-triage/pkg/models"
	"go-palette-triage/pkg/validation"

	"github.com/google/uuid"
)

// RankingResolver resolves a ranking strategy by its request name
type RankingResolver interface {
	CreateRanking(name string) (strategy.RankingStrategy, error)
}

// TriageService defines the interface for batch palette triage
type TriageService interface {
	// TriageBatch materializes the batch, evaluates every palette under the
	// request's thresholds, and returns the ranked result. All-or-nothing:
	// an invalid request yields an error, never a partial batch.
	TriageBatch(ctx context.Context, request models.TriageRequest) (*models.TriageResponse, error)

	// ValidateImageRef validates a single image reference
	ValidateImageRef(imageRef string) error
}

// triageService implements TriageService
type triageService struct {
	imageRepo       repository.ImageRepository
	loader          palette.Loader
	evaluator       evaluator.ImageEvaluator
	rankings        RankingResolver
	configValidator *validation.ConfigValidator
	defaults        evaluator.Config
	events          observer.Subject
}

// NewTriageService creates a new triage service
func NewTriageService(
	imageRepo repository.ImageRepository,
	loader palette.Loader,
	imageEvaluator evaluator.ImageEvaluator,
	rankings RankingResolver,
	defaults evaluator.Config,
	events observer.Subject,
) TriageService {
	return &triageService{
		imageRepo:       imageRepo,
		loader:          loader,
		evaluator:       imageEvaluator,
		rankings:        rankings,
		configValidator: validation.NewConfigValidator(),
		defaults:        defaults,
		events:          events,
	}
}

func (s *triageService) TriageBatch(ctx context.Context, request models.TriageRequest) (*models.TriageResponse, error) {
	start := time.Now()
	batchID := uuid.NewString()

	s.notify(ctx, observer.TriageEvent{
		EventType: observer.TriageStarted,
		Timestamp: start,
		BatchID:   batchID,
		Success:   true,
		Metadata:  map[string]interface{}{"batch_size": len(request.Images)},
	})

	cfg := s.resolveConfig(request.Config)
	if err := s.configValidator.ValidateConfig(
		cfg.MinColorsRequired, cfg.MinDistinctColorsRequired,
		cfg.DarkThreshold, cfg.GrayThreshold,
	); err != nil {
		s.notifyFailure(ctx, batchID, start, err)
		return nil, err
	}

	for _, ref := range request.Images {
		if err := s.ValidateImageRef(ref); err != nil {
			s.notifyFailure(ctx, batchID, start, err)
			return nil, apperrors.NewValidationError("invalid image reference in batch", err)
		}
	}

	ranking, err := s.rankings.CreateRanking(request.Ranking)
	if err != nil {
		s.notifyFailure(ctx, batchID, start, err)
		return nil, apperrors.NewValidationError("unknown ranking strategy", err)
	}

	// Fan-out fetch+extract, then one synchronous pipeline pass over the
	// fully materialized batch.
	palettes := s.loader.LoadBatch(ctx, request.Images)
	results := s.evaluator.Evaluate(palettes, cfg)
	ranked := strategy.NewRankingContext(ranking).ExecuteRanking(results)

	response := &models.TriageResponse{
		BatchID:           batchID,
		Timestamp:         start.Format("2006-01-02T15:04:05Z07:00"),
		ProcessingTimeSec: time.Since(start).Seconds(),
		Ranking:           ranking.GetStrategyName(),
		AppliedConfig: models.AppliedConfig{
			MinColorsRequired:         cfg.MinColorsRequired,
			MinDistinctColorsRequired: cfg.MinDistinctColorsRequired,
			DarkThreshold:             cfg.DarkThreshold,
			GrayThreshold:             cfg.GrayThreshold,
		},
		Images: convertResults(ranked),
	}

	s.notify(ctx, observer.TriageEvent{
		EventType:      observer.TriageCompleted,
		Timestamp:      time.Now(),
		BatchID:        batchID,
		ProcessingTime: time.Since(start),
		Success:        true,
		Metadata:       map[string]interface{}{"batch_size": len(ranked)},
	})

	return response, nil
}

// ValidateImageRef validates a single image reference
func (s *triageService) ValidateImageRef(imageRef string) error {
	return s.imageRepo.ValidateImageRef(imageRef)
}

// resolveConfig overlays the request's thresholds onto the service defaults
func (s *triageService) resolveConfig(requested *models.PipelineConfig) evaluator.Config {
	cfg := s.defaults
	if requested == nil {
		return cfg
	}
	if requested.MinColorsRequired != nil {
		cfg.MinColorsRequired = *requested.MinColorsRequired
	}
	if requested.MinDistinctColorsRequired != nil {
		cfg.MinDistinctColorsRequired = *requested.MinDistinctColorsRequired
	}
	if requested.DarkThreshold != nil {
		cfg.DarkThreshold = *requested.DarkThreshold
	}
	if requested.GrayThreshold != nil {
		cfg.GrayThreshold = *requested.GrayThreshold
	}
	return cfg
}

func (s *triageService) notify(ctx context.Context, event observer.TriageEvent) {
	if s.events != nil {
		s.events.NotifyObservers(ctx, event)
	}
}

func (s *triageService) notifyFailure(ctx context.Context, batchID string, start time.Time, err error) {
	s.notify(ctx, observer.TriageEvent{
		EventType:      observer.TriageFailed,
		Timestamp:      time.Now(),
		BatchID:        batchID,
		ProcessingTime: time.Since(start),
		Success:        false,
		ErrorMessage:   err.Error(),
	})
}

// convertResults maps pipeline results to response models
func convertResults(results []evaluator.EvaluatedImage) []models.EvaluatedImage {
	images := make([]models.EvaluatedImage, len(results))
	for i, r := range results {
		colors := make([]models.ClassifiedSwatch, len(r.Colors))
		for j, c := range r.Colors {
			colors[j] = models.ClassifiedSwatch{
				Hex:         c.Hex,
				Red:         c.Red,
				Green:       c.Green,
				Blue:        c.Blue,
				Hue:         c.Hue,
				Saturation:  c.Saturation,
				Lightness:   c.Lightness,
				Intensity:   c.Intensity,
				Area:        c.Area,
				ColorFamily: c.ColorFamily,
			}
		}
		images[i] = models.EvaluatedImage{
			ImageRef:        r.ImageRef,
			Colors:          colors,
			DistinctColors:  r.DistinctColors,
			Valid:           r.Valid,
			MonochromeScore: r.MonochromeScore,
		}
	}
	return images
}
