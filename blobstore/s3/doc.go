// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("samples/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	blob, err := store.Open(ctx, "reads.fq.gz")
//
// # Features
//
//   - Range reads for streaming parses
//   - Parallel whole-object downloads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable key prefix
package s3
