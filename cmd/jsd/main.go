// Command jsd prints the Jensen-Shannon distance between sequence files or
// sparse vectors.
//
// Usage:
//
//	jsd [flags] INPUT INPUT [INPUT...]
//
// Inputs are local paths, s3://bucket/key or minio://bucket/key. Files
// ending in .json hold a sparse vector ({"indices": [...], "values": [...]})
// and are normalized before use. Everything else is read as FASTA or FASTQ,
// optionally gzip, zstd or lz4 compressed, and counted into a k-mer
// distribution.
//
// With two inputs the distance is printed. With more, the pairwise matrix.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/jsd"
	"github.com/hupe1980/jsd/internal/config"
)

type flags struct {
	k          int
	configPath string
	format     string
	stats      bool
	workers    int
	ioLimit    int64
	logLevel   string
	validate   bool
	inputs     []string
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("jsd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: jsd [flags] INPUT INPUT [INPUT...]")
		fs.PrintDefaults()
	}

	f := &flags{}
	fs.IntVar(&f.k, "k", 0, "k-mer size (default kmer.size from config, else 15)")
	fs.StringVar(&f.configPath, "config", "", "Path to config file")
	fs.StringVar(&f.format, "format", "text", "Output format: text or json")
	fs.BoolVar(&f.stats, "stats", false, "Report support overlap of each pair")
	fs.IntVar(&f.workers, "workers", 0, "Concurrent workers (default limits.workers, else GOMAXPROCS)")
	fs.Int64Var(&f.ioLimit, "io-limit", 0, "Input read limit in bytes per second (0 = unlimited)")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.validate, "validate", false, "Validate every vector before computing distances")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.inputs = fs.Args()
	if len(f.inputs) < 2 {
		fs.Usage()
		return nil, errors.New("at least two inputs are required")
	}
	if f.format != "text" && f.format != "json" {
		return nil, fmt.Errorf("format %q is invalid (must be text or json)", f.format)
	}
	if f.k < 0 || f.workers < 0 || f.ioLimit < 0 {
		return nil, errors.New("-k, -workers and -io-limit must not be negative")
	}
	return f, nil
}

// loadConfig applies: -config flag > JSD_CONFIG env > default path > built-in defaults.
func loadConfig(f *flags) (*config.Config, error) {
	if f.configPath != "" {
		return config.Load(f.configPath)
	}

	path := config.Resolve()
	if _, err := os.Stat(path); err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

// merge lets flags override the configuration.
func merge(cfg *config.Config, f *flags) {
	if f.k != 0 {
		cfg.Kmer.Size = f.k
	}
	if f.workers != 0 {
		cfg.Limits.Workers = f.workers
	}
	if f.ioLimit != 0 {
		cfg.Limits.IOBytesPerSec = f.ioLimit
	}
}

func newLogger(level string) (*jsd.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q is invalid", level)
	}
	return jsd.NewTextLogger(l), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	merge(cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := newApp(cfg, logger, f.validate)
	return a.run(ctx, f.inputs, f.format, f.stats, stdout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("jsd failed", "error", err)
		os.Exit(1)
	}
}
