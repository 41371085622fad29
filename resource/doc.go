// Package resource bounds the resources a distance computation may use.
//
// The Controller manages three resource types:
//
//   - Workers: Limit concurrent pair evaluations (semaphore)
//   - Memory: Budget the merge buffers of in-flight pairs (semaphore + counter)
//   - IO: Rate-limit reads of remote input blobs (token bucket)
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:         4,
//	    MemoryLimitBytes:   1 << 30,
//	    IOLimitBytesPerSec: 50 << 20,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
//	reader := resource.NewRateLimitedReader(ctx, body, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
