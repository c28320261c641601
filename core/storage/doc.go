// Package storage wraps the Minio S3 client behind a small interface so the
// bucket-backed feed source can be tested against a mock. Only the operations
// the feed layer actually needs are exposed.
package storage
