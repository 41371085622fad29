package blobstore

import (
	"context"
	"fmt"
	"io"
	"slices"
)

const readChunk = 1 << 20

// Reader reads a Blob sequentially.
type Reader struct {
	ctx  context.Context
	blob Blob
	off  int64
}

// NewReader returns an io.Reader over blob starting at offset zero.
// Each Read issues one ReadAt of at most 1 MiB.
func NewReader(ctx context.Context, blob Blob) *Reader {
	return &Reader{ctx: ctx, blob: blob}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	if len(p) > readChunk {
		p = p[:readChunk]
	}

	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadAll returns the full content of the named blob.
//
// Stores implementing Downloader are asked directly. Otherwise mappable
// blobs are copied out and the rest are read in chunks.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	if d, ok := store.(Downloader); ok {
		return d.Download(ctx, name)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	if m, ok := blob.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return slices.Clone(data), nil
	}

	data := make([]byte, 0, blob.Size())
	buf := make([]byte, min(blob.Size(), readChunk))
	var off int64
	for off < blob.Size() {
		n, err := blob.ReadAt(ctx, buf, off)
		data = append(data, buf[:n]...)
		off += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("blobstore: read %s at %d: %w", name, off, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("blobstore: read %s at %d: %w", name, off, io.ErrNoProgress)
		}
	}
	return data, nil
}
