package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ErrBucketMissing is returned by CheckBucket when the bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// CheckBucket verifies the bucket exists and can be listed.
func CheckBucket(ctx context.Context, client Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	// Stopping after the first object must also stop the listing goroutine
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{Recursive: false, MaxKeys: 1}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		break
	}
	return nil
}
