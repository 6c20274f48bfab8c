package blobstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCredentialRepository_EmptyBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	repo, err := NewCredentialRepository(bucket, discardLogger())
	require.NoError(t, err)
	assert.True(t, repo.Current().IsZero())
}

func TestCredentialRepository_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	repo, err := NewCredentialRepository(bucket, discardLogger())
	require.NoError(t, err)

	session := entity.Session{AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, session, repo.Current())

	stored, err := bucket.ReadAll(ctx, repository.AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "access", string(stored))

	require.NoError(t, repo.Delete(ctx))
	assert.True(t, repo.Current().IsZero())

	exists, err := bucket.Exists(ctx, repository.RefreshTokenKey)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an already empty store is not an error.
	require.NoError(t, repo.Delete(ctx))
}

func TestCredentialRepository_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	open := func() *blob.Bucket {
		bucket, err := fileblob.OpenBucket(dir, nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = bucket.Close() })

		return bucket
	}

	first, err := NewCredentialRepository(open(), discardLogger())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, entity.Session{AccessToken: "a1", RefreshToken: "r1"}))

	second, err := NewCredentialRepository(open(), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, entity.Session{AccessToken: "a1", RefreshToken: "r1"}, second.Current())
}

func TestCredentialRepository_SaveWithoutRefreshDropsStaleRefresh(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	repo, err := NewCredentialRepository(bucket, discardLogger())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, entity.Session{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, repo.Save(ctx, entity.Session{AccessToken: "a2"}))

	exists, err := bucket.Exists(ctx, repository.RefreshTokenKey)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "a2", repo.Current().AccessToken)
}

func TestCredentialRepository_FailedRefreshWriteKeepsPreviousPair(t *testing.T) {
	ctx := context.Background()

	// blockRefresh puts a directory where the refresh token file goes, so writing it fails.
	blockRefresh := func(t *testing.T, dir string) {
		t.Helper()
		path := filepath.Join(dir, repository.RefreshTokenKey)
		require.NoError(t, os.RemoveAll(path))
		require.NoError(t, os.MkdirAll(filepath.Join(path, "blocker"), 0o755))
	}

	openRepo := func(t *testing.T) (repository.CredentialRepository, *blob.Bucket, string) {
		t.Helper()
		dir := t.TempDir()
		bucket, err := fileblob.OpenBucket(dir, nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = bucket.Close() })

		repo, err := NewCredentialRepository(bucket, discardLogger())
		require.NoError(t, err)

		return repo, bucket, dir
	}

	t.Run("previous access token is restored", func(t *testing.T) {
		repo, bucket, dir := openRepo(t)
		previous := entity.Session{AccessToken: "old-access", RefreshToken: "old-refresh"}
		require.NoError(t, repo.Save(ctx, previous))

		blockRefresh(t, dir)
		err := repo.Save(ctx, entity.Session{AccessToken: "new-access", RefreshToken: "new-refresh"})
		require.Error(t, err)
		assert.Equal(t, previous, repo.Current())

		stored, err := bucket.ReadAll(ctx, repository.AccessTokenKey)
		require.NoError(t, err)
		assert.Equal(t, "old-access", string(stored))
	})

	t.Run("first save leaves no access token behind", func(t *testing.T) {
		repo, bucket, dir := openRepo(t)

		blockRefresh(t, dir)
		err := repo.Save(ctx, entity.Session{AccessToken: "new-access", RefreshToken: "new-refresh"})
		require.Error(t, err)
		assert.True(t, repo.Current().IsZero())

		exists, err := bucket.Exists(ctx, repository.AccessTokenKey)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
