package repository

import "errors"

// ErrInvalidImageRef indicates an image reference that failed validation
var ErrInvalidImageRef = errors.New("invalid image reference")
