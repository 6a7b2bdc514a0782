package repository

import (
	"context"
	"image"
)

// ImageRepository defines the interface for image data access operations
type ImageRepository interface {
	// FetchImage retrieves and decodes an image by its reference
	FetchImage(ctx context.Context, imageRef string) (image.Image, error)

	// ValidateImageRef validates if the provided reference is acceptable
	ValidateImageRef(imageRef string) error
}
