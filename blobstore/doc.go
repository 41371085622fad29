// Package blobstore provides read access to input files regardless of where
// they live.
//
// BlobStore is the interface for listing and opening immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local file system, memory-mapped
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with ranged reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Reading Whole Blobs
//
// Sequence files are parsed front to back, so most callers want either a
// streaming reader or the full content:
//
//	blob, _ := store.Open(ctx, "reads.fq.gz")
//	defer blob.Close()
//	r := blobstore.NewReader(ctx, blob)
//
//	data, _ := blobstore.ReadAll(ctx, store, "vector.json")
//
// ReadAll uses a store's Downloader fast path when it has one.
package blobstore
