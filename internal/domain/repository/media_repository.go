package repository

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrMediaNotFound is returned when no object exists under a media key.
var ErrMediaNotFound = errors.New("media not found")

// MediaRepository stores uploaded product images for the development gateway.
type MediaRepository interface {
	// Save stores content under a fresh key derived from filename.
	Save(ctx context.Context, filename string, content io.Reader) (StoredImage, error)
	// Open returns the object stored under key and its content type. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
