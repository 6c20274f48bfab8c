package blobstore

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const (
	mediaPrefix = "products/"
	// MediaURLPrefix is where the development gateway serves stored media from.
	MediaURLPrefix = "/media/"
)

type mediaRepository struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewMediaRepository opens devGateway.mediaBucketUrl and closes it on shutdown.
func NewMediaRepository(params Params) (repository.MediaRepository, error) {
	if params.Config.DevGateway == nil {
		return nil, errors.New("devGateway configuration must be provided")
	}
	bucketURL := params.Config.DevGateway.MediaBucketURL

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open media bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewMediaRepositoryWithBucket(bucket, params.Logger), nil
}

// NewMediaRepositoryWithBucket uses an already opened bucket.
func NewMediaRepositoryWithBucket(bucket *blob.Bucket, logger *slog.Logger) repository.MediaRepository {
	return &mediaRepository{bucket: bucket, logger: logger}
}

func (repo *mediaRepository) Save(ctx context.Context, filename string, content io.Reader) (repository.StoredImage, error) {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	key := mediaPrefix + uuid.NewString() + ext

	w, err := repo.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return repository.StoredImage{}, errors.Wrap(err, "open media writer")
	}
	written, err := io.Copy(w, content)
	if err != nil {
		_ = w.Close()

		return repository.StoredImage{}, errors.Wrap(err, "write media")
	}
	// Close commits the object; the content type is sniffed from the first bytes.
	if err := w.Close(); err != nil {
		return repository.StoredImage{}, errors.Wrap(err, "commit media")
	}

	repo.logger.Debug("Media stored", slog.String("key", key), slog.Int64("bytes", written))

	return repository.StoredImage{Filename: filename, URL: MediaURLPrefix + key}, nil
}

func (repo *mediaRepository) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(key, mediaPrefix) || strings.Contains(key, "..") {
		return nil, "", repository.ErrMediaNotFound
	}

	r, err := repo.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", repository.ErrMediaNotFound
		}

		return nil, "", errors.Wrap(err, "open media")
	}

	return r, r.ContentType(), nil
}
