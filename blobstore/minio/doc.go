// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object store. This package uses the official
// MinIO Go client, which also works against Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	client, err := minio.NewClient("localhost:9000", "minioadmin", "minioadmin", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minio.NewStore(client, "samples", "")
//	data, err := blobstore.ReadAll(ctx, store, "reads.fq.gz")
package minio
