package palette

import (
	"context"
	"sync"
	"time"

	"go-palette-triage/internal/logger"
	"go-palette-triage/internal/observer"
	"go-palette-triage/internal/repository"

	"github.com/sirupsen/logrus"
)

// Loader defines the interface for materializing a batch of image palettes
type Loader interface {
	// LoadBatch fetches every referenced image and extracts its swatches,
	// preserving the input order. The returned batch is fully materialized
	// before the caller runs the evaluation pipeline over it.
	LoadBatch(ctx context.Context, imageRefs []string) []ImagePalette
}

// batchLoader implements Loader with concurrent fan-out over the batch
type batchLoader struct {
	repo        repository.ImageRepository
	extractor   SwatchExtractor
	pool        *WorkerPool
	swatchCount int
	events      observer.Subject
}

// NewBatchLoader creates a loader that fetches and extracts concurrently.
// workers <= 0 selects the default worker count. events may be nil.
func NewBatchLoader(repo repository.ImageRepository, extractor SwatchExtractor, swatchCount, workers int, events observer.Subject) Loader {
	pool := NewWorkerPool(workers)
	pool.Start()

	return &batchLoader{
		repo:        repo,
		extractor:   extractor,
		pool:        pool,
		swatchCount: swatchCount,
		events:      events,
	}
}

// LoadBatch fans out fetch+extract work across the pool and joins before
// returning. Completion is tracked per batch, so concurrent calls sharing
// the pool do not wait on each other. A fetch or decode failure substitutes
// an empty placeholder palette rather than propagating the error; the
// pipeline downstream sees only a degenerate empty palette.
func (l *batchLoader) LoadBatch(ctx context.Context, imageRefs []string) []ImagePalette {
	palettes := make([]ImagePalette, len(imageRefs))

	var wg sync.WaitGroup
	wg.Add(len(imageRefs))
	for i, ref := range imageRefs {
		i, ref := i, ref
		l.pool.Submit(func() {
			defer wg.Done()
			palettes[i] = l.loadOne(ctx, ref)
		})
	}
	wg.Wait()

	return palettes
}

func (l *batchLoader) loadOne(ctx context.Context, imageRef string) ImagePalette {
	start := time.Now()

	img, err := l.repo.FetchImage(ctx, imageRef)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"image_ref": imageRef,
		}).Warn("Image fetch failed, substituting empty palette")
		l.notifyFailure(ctx, imageRef, start, err)
		return EmptyPalette(imageRef)
	}

	swatches, err := l.extractor.Extract(img, l.swatchCount)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"image_ref": imageRef,
		}).Warn("Swatch extraction failed, substituting empty palette")
		l.notifyFailure(ctx, imageRef, start, err)
		return EmptyPalette(imageRef)
	}

	if l.events != nil {
		l.events.NotifyObservers(ctx, observer.TriageEvent{
			EventType:      observer.PaletteLoaded,
			Timestamp:      time.Now(),
			ImageRef:       imageRef,
			ProcessingTime: time.Since(start),
			Success:        true,
			Metadata:       map[string]interface{}{"swatch_count": len(swatches)},
		})
	}
	return ImagePalette{ImageRef: imageRef, Swatches: swatches}
}

func (l *batchLoader) notifyFailure(ctx context.Context, imageRef string, start time.Time, err error) {
	if l.events == nil {
		return
	}
	l.events.NotifyObservers(ctx, observer.TriageEvent{
		EventType:      observer.PaletteLoadFailed,
		Timestamp:      time.Now(),
		ImageRef:       imageRef,
		ProcessingTime: time.Since(start),
		Success:        false,
		ErrorMessage:   err.Error(),
	})
}
