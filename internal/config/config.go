// Package config loads the TOML configuration of the jsd command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultK is the k-mer size used when none is configured.
const DefaultK = 15

type Config struct {
	Kmer   KmerConfig   `toml:"kmer"`
	S3     S3Config     `toml:"s3"`
	Minio  MinioConfig  `toml:"minio"`
	Limits LimitsConfig `toml:"limits"`
}

type KmerConfig struct {
	Size int `toml:"size"`
}

type S3Config struct {
	Region string `toml:"region"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

type LimitsConfig struct {
	Workers       int   `toml:"workers"`
	IOBytesPerSec int64 `toml:"io_bytes_per_sec"`
	MemoryBytes   int64 `toml:"memory_bytes"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{Kmer: KmerConfig{Size: DefaultK}}
}

// Load decodes the file at path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if cfg.Kmer.Size == 0 {
		cfg.Kmer.Size = DefaultK
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first out-of-range setting.
func (cfg *Config) Validate() error {
	if cfg.Kmer.Size < 1 || cfg.Kmer.Size > 32 {
		return fmt.Errorf("kmer.size %d is invalid (must be between 1 and 32)", cfg.Kmer.Size)
	}
	if cfg.Limits.Workers < 0 {
		return fmt.Errorf("limits.workers %d must not be negative", cfg.Limits.Workers)
	}
	if cfg.Limits.IOBytesPerSec < 0 {
		return fmt.Errorf("limits.io_bytes_per_sec %d must not be negative", cfg.Limits.IOBytesPerSec)
	}
	if cfg.Limits.MemoryBytes < 0 {
		return fmt.Errorf("limits.memory_bytes %d must not be negative", cfg.Limits.MemoryBytes)
	}
	if cfg.Minio.Endpoint != "" && (cfg.Minio.AccessKey == "") != (cfg.Minio.SecretKey == "") {
		return fmt.Errorf("minio.access_key and minio.secret_key must be set together")
	}
	return nil
}

// Resolve returns the config file path from the JSD_CONFIG env var,
// falling back to ~/.config/jsd/config.toml.
// The -config CLI flag is handled separately in main.go.
func Resolve() string {
	path := os.Getenv("JSD_CONFIG")
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".config", "jsd", "config.toml")
	}
	path = os.ExpandEnv(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
