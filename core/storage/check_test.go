package storage_test

import (
	"context"
	"errors"
	"testing"

	"backend-doctor/core/storage"
	"backend-doctor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(true, nil)
		client.On("ListObjects", mock.Anything, "files", mock.Anything).Return(objects(minio.ObjectInfo{Key: "logo.png"}))

		assert.NoError(t, storage.CheckBucket(ctx, client, "files"))
		client.AssertExpectations(t)
	})

	t.Run("Empty Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(true, nil)
		client.On("ListObjects", mock.Anything, "files", mock.Anything).Return(objects())

		assert.NoError(t, storage.CheckBucket(ctx, client, "files"))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(false, nil)

		err := storage.CheckBucket(ctx, client, "files")
		assert.ErrorIs(t, err, storage.ErrBucketMissing)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(false, errors.New("dial tcp: refused"))

		err := storage.CheckBucket(ctx, client, "files")
		assert.ErrorContains(t, err, "failed to check bucket existence")
	})

	t.Run("List Denied", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(true, nil)
		client.On("ListObjects", mock.Anything, "files", mock.Anything).Return(objects(minio.ObjectInfo{Err: errors.New("access denied")}))

		err := storage.CheckBucket(ctx, client, "files")
		assert.ErrorContains(t, err, "access denied")
	})
}
