package repository

import (
	"context"
	"fmt"
	"image"

	"go-palette-triage/internal/storage"
	"go-palette-triage/pkg/validation"
)

// FetcherImageRepository implements ImageRepository on top of a storage
// fetcher (HTTP or Azure blob)
type FetcherImageRepository struct {
	fetcher   storage.ImageFetcher
	validator *validation.URLValidator
}

// NewFetcherImageRepository creates a repository backed by the given fetcher
func NewFetcherImageRepository(fetcher storage.ImageFetcher) ImageRepository {
	return &FetcherImageRepository{
		fetcher:   fetcher,
		validator: validation.NewURLValidator(),
	}
}

// FetchImage retrieves an image by its reference
func (r *FetcherImageRepository) FetchImage(ctx context.Context, imageRef string) (image.Image, error) {
	if err := r.ValidateImageRef(imageRef); err != nil {
		return nil, err
	}
	return r.fetcher.FetchImage(ctx, imageRef)
}

// ValidateImageRef validates if the provided reference is acceptable
func (r *FetcherImageRepository) ValidateImageRef(imageRef string) error {
	if err := r.validator.ValidateImageURL(imageRef); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImageRef, err)
	}
	return nil
}
