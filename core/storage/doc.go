// Package storage checks the object storage used by the backend's file module.
//
// It wraps the MinIO Go client behind a small Client interface (mocked in
// core/storage/mocks) and provides CheckBucket, which the admin diagnostic and the
// predeploy validator use to confirm the upload bucket exists and is listable.
// Both S3 and self-hosted MinIO endpoints work.
package storage
