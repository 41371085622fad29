package resource

import (
	"context"
	"io"
)

// RateLimitedReader wraps an io.Reader with rate limiting.
type RateLimitedReader struct {
	ctx context.Context
	r   io.Reader
	rc  *Controller
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		ctx: ctx,
		r:   r,
		rc:  rc,
	}
}

// Read waits for tokens covering len(p) before reading. Reads are capped at
// the limiter burst so a large buffer cannot stall on a single wait.
func (r *RateLimitedReader) Read(p []byte) (n int, err error) {
	if r.rc != nil && r.rc.ioBurst > 0 && len(p) > r.rc.ioBurst {
		p = p[:r.rc.ioBurst]
	}
	if err := r.rc.AcquireIO(r.ctx, len(p)); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
