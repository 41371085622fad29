package jsd

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/jsd/sparse"
)

// Calculator evaluates Jensen-Shannon distances over sparse.Vector values
// with optional validation, logging, metrics and bounded concurrency.
//
// A Calculator is safe for concurrent use. It never mutates its inputs.
type Calculator struct {
	opts options
}

// New creates a Calculator.
func New(optFns ...Option) *Calculator {
	return &Calculator{opts: applyOptions(optFns)}
}

// Distance returns the distance between x and y.
//
// Operands whose index and value slices differ in length always fail with
// ErrInvalidInput; other invalid operands only with validation enabled.
// A negative divergence always fails with ErrNumericDomain.
func (c *Calculator) Distance(ctx context.Context, x, y sparse.Vector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return math.NaN(), err
	}

	if c.opts.validate {
		if err := validateOperand("x", x); err != nil {
			return math.NaN(), err
		}
		if err := validateOperand("y", y); err != nil {
			return math.NaN(), err
		}
	}

	return c.pair(ctx, x, y)
}

// OneToMany returns the distance from query to every target.
//
// A pair whose divergence is negative yields NaN in the result rather than
// failing the whole call. The call fails on invalid input, as Distance
// does, or when ctx is canceled.
func (c *Calculator) OneToMany(ctx context.Context, query sparse.Vector, targets []sparse.Vector) ([]float64, error) {
	if c.opts.validate {
		if err := validateOperand("query", query); err != nil {
			return nil, err
		}
		if err := c.validateAll("targets", targets); err != nil {
			return nil, err
		}
	}

	log := c.opts.logger.WithOperation("one_to_many").WithCount(len(targets))
	start := time.Now()

	out := make([]float64, len(targets))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.workers)

	for i := range targets {
		g.Go(func() error {
			d, err := c.pair(gctx, query, targets[i])
			if err != nil {
				if !errors.Is(err, ErrNumericDomain) {
					return err
				}
				failed.Add(1)
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	c.opts.metricsCollector.RecordBatch(len(targets), int(failed.Load()), elapsed)
	log.LogBatch(ctx, "one_to_many", len(targets), int(failed.Load()), elapsed)

	return out, nil
}

// Pairwise returns the symmetric distance matrix of vectors.
//
// The upper triangle and the diagonal are computed, so m.At(i, i) equals
// Distance(vectors[i], vectors[i]): zero for a distribution, one for a
// vector without mass. Pairs with a negative divergence are stored as NaN,
// as in OneToMany.
func (c *Calculator) Pairwise(ctx context.Context, vectors []sparse.Vector) (*Matrix, error) {
	if c.opts.validate {
		if err := c.validateAll("vectors", vectors); err != nil {
			return nil, err
		}
	}

	n := len(vectors)
	pairs := n * (n + 1) / 2
	log := c.opts.logger.WithOperation("pairwise").WithCount(n)
	start := time.Now()

	m := newMatrix(n)
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.workers)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			g.Go(func() error {
				d, err := c.pair(gctx, vectors[i], vectors[j])
				if err != nil {
					if !errors.Is(err, ErrNumericDomain) {
						return err
					}
					failed.Add(1)
				}
				m.set(i, j, d)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	c.opts.metricsCollector.RecordBatch(pairs, int(failed.Load()), elapsed)
	log.LogBatch(ctx, "pairwise", pairs, int(failed.Load()), elapsed)

	return m, nil
}

func (c *Calculator) validateAll(name string, vs []sparse.Vector) error {
	for i, v := range vs {
		if err := validateOperand(fmt.Sprintf("%s[%d]", name, i), v); err != nil {
			return err
		}
	}
	return nil
}

// pair evaluates a single pair under the resource controller.
func (c *Calculator) pair(ctx context.Context, x, y sparse.Vector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return math.NaN(), err
	}

	if err := checkShape("x", x); err != nil {
		return math.NaN(), err
	}
	if err := checkShape("y", y); err != nil {
		return math.NaN(), err
	}

	rc := c.opts.resources
	if err := rc.AcquireWorker(ctx); err != nil {
		return math.NaN(), err
	}
	defer rc.ReleaseWorker()

	mem := mergeBytes(x, y)
	if err := rc.AcquireMemory(ctx, mem); err != nil {
		return math.NaN(), err
	}
	defer rc.ReleaseMemory(mem)

	start := time.Now()
	d, err := checkedDistance(x, y)
	c.opts.metricsCollector.RecordDistance(time.Since(start), err)
	c.opts.logger.LogDistance(ctx, x.Len(), y.Len(), d, err)

	return d, err
}

// mergeBytes is the size of the intersection buffer allocated for x and y.
func mergeBytes(x, y sparse.Vector) int64 {
	return int64(max(x.Len(), y.Len())) * 16
}
