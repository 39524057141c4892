// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations this tool needs: fetching source export files (Alma CSV,
// FileMaker JSON, tracking sheet TSV) from a bucket and publishing report
// output back to it. The abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	r, err := storage.Fetch(ctx, client, "ftva-data", "exports/ftva_holdings.csv")
package storage
