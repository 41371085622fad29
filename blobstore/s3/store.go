package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/jsd/blobstore"
)

// Client is the subset of the S3 API used by Store.
// *s3.Client satisfies it.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type options struct {
	prefix      string
	region      string
	partSize    int64
	concurrency int
}

// Option configures a Store.
type Option func(*options)

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithRegion sets the AWS region used by New. It has no effect on NewStore.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithPartSize sets the ranged-GET size used by Download.
func WithPartSize(n int64) Option {
	return func(o *options) { o.partSize = n }
}

// WithConcurrency sets the number of parallel part downloads.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

func applyOptions(optFns []Option) options {
	o := options{
		partSize:    manager.DefaultDownloadPartSize,
		concurrency: manager.DefaultDownloadConcurrency,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Store implements blobstore.BlobStore and blobstore.Downloader for S3.
type Store struct {
	client Client
	bucket string
	opts   options
}

// New loads the default AWS configuration and creates a Store for bucket.
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	o := applyOptions(optFns)

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	return NewStore(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

// NewStore creates a Store on an existing client.
func NewStore(client Client, bucket string, optFns ...Option) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		opts:   applyOptions(optFns),
	}
}

func (s *Store) key(name string) string {
	if s.opts.prefix == "" {
		return name
	}
	return path.Join(s.opts.prefix, name)
}

// Open checks that the object exists and returns a ranged-read handle.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)
	size, err := s.head(ctx, key)
	if err != nil {
		return nil, err
	}
	return &blob{client: s.client, bucket: s.bucket, key: key, size: size}, nil
}

func (s *Store) head(ctx context.Context, key string) (int64, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, mapError(err)
	}
	return aws.ToInt64(head.ContentLength), nil
}

// Download fetches the whole object with parallel ranged GETs.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	size, err := s.head(ctx, key)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}

	dl := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.PartSize = s.opts.partSize
		d.Concurrency = s.opts.concurrency
	})

	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	n, err := dl.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: download %s: %w", key, mapError(err))
	}
	return buf.Bytes()[:n], nil
}

// List returns the names below prefix, relative to the store prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.opts.prefix
	if prefix != "" {
		fullPrefix = s.key(prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.opts.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" && strings.HasPrefix(name, prefix) {
				names = append(names, name)
			}
		}
	}

	slices.Sort(names)
	return names, nil
}

func mapError(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return blobstore.ErrNotFound
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return blobstore.ErrNotFound
	}
	return err
}
