package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/jsd"
	"github.com/hupe1980/jsd/blobstore"
	"github.com/hupe1980/jsd/blobstore/minio"
	"github.com/hupe1980/jsd/blobstore/s3"
	"github.com/hupe1980/jsd/codec"
	"github.com/hupe1980/jsd/internal/config"
	"github.com/hupe1980/jsd/kmer"
	"github.com/hupe1980/jsd/resource"
	"github.com/hupe1980/jsd/seqio"
	"github.com/hupe1980/jsd/sparse"
)

type app struct {
	cfg      *config.Config
	logger   *jsd.Logger
	validate bool
	rc       *resource.Controller
	metrics  *jsd.BasicMetricsCollector

	mu     sync.Mutex
	stores map[string]blobstore.BlobStore
}

func newApp(cfg *config.Config, logger *jsd.Logger, validate bool) *app {
	return &app{
		cfg:      cfg,
		logger:   logger,
		validate: validate,
		rc: resource.NewController(resource.Config{
			MaxWorkers:         int64(cfg.Limits.Workers),
			MemoryLimitBytes:   cfg.Limits.MemoryBytes,
			IOLimitBytesPerSec: cfg.Limits.IOBytesPerSec,
		}),
		metrics: &jsd.BasicMetricsCollector{},
		stores:  make(map[string]blobstore.BlobStore),
	}
}

func (a *app) run(ctx context.Context, inputs []string, format string, stats bool, w io.Writer) error {
	start := time.Now()
	vectors, err := a.loadAll(ctx, inputs)
	if err != nil {
		return err
	}
	a.logger.Info("inputs loaded", "count", len(inputs), "k", a.cfg.Kmer.Size, "elapsed", time.Since(start))

	calc := jsd.New(
		jsd.WithLogger(a.logger),
		jsd.WithMetricsCollector(a.metrics),
		jsd.WithValidation(a.validate),
		jsd.WithWorkers(a.cfg.Limits.Workers),
		jsd.WithResourceController(a.rc),
	)

	report := codec.Report{Inputs: inputs}
	if a.hasSequences(inputs) {
		report.K = a.cfg.Kmer.Size
	}

	if len(vectors) == 2 {
		d, err := calc.Distance(ctx, vectors[0], vectors[1])
		if err != nil {
			return err
		}
		report.Distance = codec.Float(d)
	} else {
		m, err := calc.Pairwise(ctx, vectors)
		if err != nil {
			return err
		}
		report.Matrix = make([][]*float64, m.N)
		for i := range m.N {
			row := make([]*float64, m.N)
			for j, d := range m.Row(i) {
				row[j] = codec.Float(d)
			}
			report.Matrix[i] = row
		}
	}

	if stats {
		report.Overlaps = overlaps(vectors)
	}

	s := a.metrics.GetStats()
	a.logger.Debug("distances computed", "pairs", s.DistanceCount, "avg_ns", s.DistanceAvgNanos)

	if format == "json" {
		return writeJSON(w, report)
	}
	return writeText(w, report)
}

func (a *app) hasSequences(inputs []string) bool {
	for _, in := range inputs {
		if !isVectorFile(in) {
			return true
		}
	}
	return false
}

func overlaps(vectors []sparse.Vector) []codec.OverlapDoc {
	var out []codec.OverlapDoc
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			o := sparse.SupportOverlap(vectors[i], vectors[j])
			out = append(out, codec.OverlapDoc{
				I:            i,
				J:            j,
				SizeI:        o.X,
				SizeJ:        o.Y,
				Intersection: o.Intersection,
				Union:        o.Union,
				Jaccard:      o.Jaccard(),
			})
		}
	}
	return out
}

func (a *app) loadAll(ctx context.Context, inputs []string) ([]sparse.Vector, error) {
	out := make([]sparse.Vector, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if n := a.cfg.Limits.Workers; n > 0 {
		g.SetLimit(n)
	}
	for i, in := range inputs {
		g.Go(func() error {
			v, err := a.load(gctx, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func isVectorFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}

// load turns one input into a normalized distribution.
func (a *app) load(ctx context.Context, input string) (sparse.Vector, error) {
	store, name, err := a.resolve(ctx, input)
	if err != nil {
		return sparse.Vector{}, err
	}

	if isVectorFile(name) {
		return a.loadVector(ctx, store, name)
	}
	return a.loadSequences(ctx, store, name)
}

func (a *app) loadVector(ctx context.Context, store blobstore.BlobStore, name string) (sparse.Vector, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return sparse.Vector{}, err
	}
	if err := a.rc.AcquireIO(ctx, len(data)); err != nil {
		return sparse.Vector{}, err
	}

	v, err := codec.DecodeVector(codec.Default, data)
	if err != nil {
		return sparse.Vector{}, err
	}
	if !v.Normalize() {
		a.logger.Warn("vector has zero mass", "name", name)
	}
	return v, nil
}

func (a *app) loadSequences(ctx context.Context, store blobstore.BlobStore, name string) (sparse.Vector, error) {
	format, compression, err := seqio.Detect(name)
	if err != nil {
		return sparse.Vector{}, err
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return sparse.Vector{}, err
	}
	defer blob.Close()

	src := resource.NewRateLimitedReader(ctx, blobstore.NewReader(ctx, blob), a.rc)
	r, err := seqio.NewReader(src, format, compression)
	if err != nil {
		return sparse.Vector{}, err
	}
	defer r.Close()

	counter, err := kmer.NewCounter(a.cfg.Kmer.Size)
	if err != nil {
		return sparse.Vector{}, err
	}

	records := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sparse.Vector{}, err
		}
		counter.Add(rec.Seq)
		records++
	}

	a.logger.Debug("sequences counted",
		"name", name,
		"format", format,
		"compression", compression,
		"records", records,
		"kmers", counter.Total(),
	)
	if counter.Total() == 0 {
		a.logger.Warn("no k-mers found", "name", name, "k", counter.K())
	}
	return counter.Distribution(), nil
}

// resolve maps an input to a store and the blob name inside it.
func (a *app) resolve(ctx context.Context, input string) (blobstore.BlobStore, string, error) {
	scheme, rest, ok := strings.Cut(input, "://")
	if !ok {
		store, err := a.store("file", "", func() (blobstore.BlobStore, error) {
			return blobstore.NewLocalStore(""), nil
		})
		if err != nil {
			return nil, "", err
		}
		return store, input, nil
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return nil, "", fmt.Errorf("input %q must be %s://bucket/key", input, scheme)
	}

	var (
		store blobstore.BlobStore
		err   error
	)
	switch scheme {
	case "s3":
		store, err = a.store("s3", bucket, func() (blobstore.BlobStore, error) {
			st, err := s3.New(ctx, bucket, s3.WithRegion(a.cfg.S3.Region))
			if err != nil {
				return nil, err
			}
			return st, nil
		})
	case "minio":
		store, err = a.store("minio", bucket, func() (blobstore.BlobStore, error) {
			mc := a.cfg.Minio
			if mc.Endpoint == "" {
				return nil, fmt.Errorf("minio.endpoint is not configured")
			}
			client, err := minio.NewClient(mc.Endpoint, mc.AccessKey, mc.SecretKey, mc.Secure)
			if err != nil {
				return nil, err
			}
			return minio.NewStore(client, bucket, ""), nil
		})
	default:
		return nil, "", fmt.Errorf("unsupported scheme %q", scheme)
	}
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}

// store returns the cached store for scheme and bucket, creating it once.
func (a *app) store(scheme, bucket string, mk func() (blobstore.BlobStore, error)) (blobstore.BlobStore, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := scheme + "://" + bucket
	if s, ok := a.stores[id]; ok {
		return s, nil
	}
	s, err := mk()
	if err != nil {
		return nil, err
	}
	a.stores[id] = s
	return s, nil
}
