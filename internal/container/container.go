package container

import (
	"fmt"
	"net/http"

	"go-palette-triage/internal/config"
	"go-palette-triage/internal/evaluator"
	"go-palette-triage/internal/factory"
	"go-palette-triage/internal/logger"
	"go-palette-triage/internal/observer"
	"go-palette-triage/internal/palette"
	"go-palette-triage/internal/repository"
	"go-palette-triage/internal/service"
	"go-palette-triage/internal/storage"
	"go-palette-triage/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config        *config.Config
	imageFetcher  storage.ImageFetcher
	imageRepo     repository.ImageRepository
	loader        palette.Loader
	evaluator     evaluator.ImageEvaluator
	triageService service.TriageService
	events        observer.Subject
	handler       http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Build dependency graph
	storageFactory := factory.NewStorageFactory()
	imageFetcher, err := storageFactory.CreateStorage(factory.StorageType(cfg.StorageBackend), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}

	events := observer.NewEventPublisher()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(observer.NewMetricsObserver())

	imageRepo := repository.NewFetcherImageRepository(imageFetcher)
	extractor := palette.NewKMeansExtractor()
	loader := palette.NewBatchLoader(imageRepo, extractor, cfg.SwatchCount, cfg.FetchWorkers, events)
	imageEvaluator := evaluator.NewImageEvaluator()

	defaults := evaluator.Config{
		MinColorsRequired:         cfg.MinColorsRequired,
		MinDistinctColorsRequired: cfg.MinDistinctColorsRequired,
		DarkThreshold:             cfg.DarkThreshold,
		GrayThreshold:             cfg.GrayThreshold,
	}

	triageService := service.NewTriageService(
		imageRepo,
		loader,
		imageEvaluator,
		factory.NewRankingFactory(),
		defaults,
		events,
	)
	handler := transport.NewHandler(triageService, cfg)

	return &Container{
		config:        cfg,
		imageFetcher:  imageFetcher,
		imageRepo:     imageRepo,
		loader:        loader,
		evaluator:     imageEvaluator,
		triageService: triageService,
		events:        events,
		handler:       handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
