// Package blobstore persists client-side state in a gocloud.dev bucket (a local directory by default).
package blobstore

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const openTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by session.bucketUrl and closes it on shutdown.
func New(params Params) (*blob.Bucket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Session.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open session bucket %s", params.Config.Session.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Debug("Session bucket opened", slog.String("url", params.Config.Session.BucketURL))

	return bucket, nil
}
