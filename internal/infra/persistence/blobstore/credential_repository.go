package blobstore

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// credentialRepository keeps the token pair in memory and mirrors it to the bucket.
type credentialRepository struct {
	bucket *blob.Bucket
	logger *slog.Logger

	// saveMu serializes writers so a rollback restores the pair it replaced.
	saveMu  sync.Mutex
	mu      sync.RWMutex
	current entity.Session
}

// NewCredentialRepository loads any persisted token pair from bucket.
func NewCredentialRepository(bucket *blob.Bucket, logger *slog.Logger) (repository.CredentialRepository, error) {
	repo := &credentialRepository{bucket: bucket, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	access, err := repo.read(ctx, repository.AccessTokenKey)
	if err != nil {
		return nil, err
	}
	refresh, err := repo.read(ctx, repository.RefreshTokenKey)
	if err != nil {
		return nil, err
	}
	repo.current = entity.Session{AccessToken: access, RefreshToken: refresh}

	if !repo.current.IsZero() {
		logger.Debug("Restored persisted session")
	}

	return repo, nil
}

func (repo *credentialRepository) Current() entity.Session {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.current
}

// Save writes both tokens before swapping them in. If the refresh token cannot be
// written, the previous access token is put back so the bucket never pairs a new
// access token with an old refresh token.
func (repo *credentialRepository) Save(ctx context.Context, session entity.Session) error {
	repo.saveMu.Lock()
	defer repo.saveMu.Unlock()

	previous := repo.Current()

	if err := repo.bucket.WriteAll(ctx, repository.AccessTokenKey, []byte(session.AccessToken), nil); err != nil {
		return errors.Wrap(err, "persist access token")
	}

	if err := repo.writeRefresh(ctx, session.RefreshToken); err != nil {
		if rollbackErr := repo.restoreAccess(ctx, previous.AccessToken); rollbackErr != nil {
			repo.logger.Error("Failed to restore previous access token", slog.Any("error", rollbackErr))

			return errors.Join(err, rollbackErr)
		}

		return err
	}

	repo.mu.Lock()
	repo.current = session
	repo.mu.Unlock()

	return nil
}

func (repo *credentialRepository) writeRefresh(ctx context.Context, token string) error {
	if token == "" {
		return repo.remove(ctx, repository.RefreshTokenKey)
	}
	if err := repo.bucket.WriteAll(ctx, repository.RefreshTokenKey, []byte(token), nil); err != nil {
		return errors.Wrap(err, "persist refresh token")
	}

	return nil
}

func (repo *credentialRepository) restoreAccess(ctx context.Context, token string) error {
	if token == "" {
		return repo.remove(ctx, repository.AccessTokenKey)
	}
	if err := repo.bucket.WriteAll(ctx, repository.AccessTokenKey, []byte(token), nil); err != nil {
		return errors.Wrap(err, "restore access token")
	}

	return nil
}

func (repo *credentialRepository) Delete(ctx context.Context) error {
	repo.saveMu.Lock()
	defer repo.saveMu.Unlock()

	repo.mu.Lock()
	repo.current = entity.Session{}
	repo.mu.Unlock()

	return errors.Join(
		repo.remove(ctx, repository.AccessTokenKey),
		repo.remove(ctx, repository.RefreshTokenKey),
	)
}

func (repo *credentialRepository) read(ctx context.Context, key string) (string, error) {
	data, err := repo.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "read %s", key)
	}

	return string(data), nil
}

func (repo *credentialRepository) remove(ctx context.Context, key string) error {
	err := repo.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "delete %s", key)
}
