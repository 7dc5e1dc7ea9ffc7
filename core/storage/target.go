package storage

import (
	"context"

	"backend-doctor/core/report"

	"go.uber.org/zap"
)

// Target is a bucket on a storage client. A nil Client means no storage is configured.
type Target struct {
	Client Client
	Bucket string
}

// RecordBucketCheck runs CheckBucket against t and records the outcome. Storage
// problems are warnings: uploads break, but the backend still boots.
func RecordBucketCheck(ctx context.Context, rec *report.Recorder, t Target) {
	if t.Client == nil {
		rec.Info("storage", "File storage check skipped, no endpoint configured")
		return
	}
	if err := CheckBucket(ctx, t.Client, t.Bucket); err != nil {
		rec.Warn("storage", "File storage bucket is not usable", zap.String("bucket", t.Bucket), zap.Error(err))
		return
	}
	rec.Info("storage", "File storage bucket is reachable", zap.String("bucket", t.Bucket))
}
