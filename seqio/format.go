package seqio

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Format identifies the record layout of a sequence file.
type Format uint8

const (
	// FormatFASTA is '>'-prefixed headers followed by sequence lines.
	FormatFASTA Format = iota
	// FormatFASTQ is four-line records with per-base qualities.
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "fasta"
	case FormatFASTQ:
		return "fastq"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Compression identifies the stream compression of a sequence file.
type Compression uint8

const (
	// CompressionNone indicates plain text.
	CompressionNone Compression = iota
	// CompressionGzip indicates a gzip stream (.gz).
	CompressionGzip
	// CompressionZstd indicates a zstd stream (.zst).
	CompressionZstd
	// CompressionLZ4 indicates an lz4 frame stream (.lz4).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ErrUnknownFormat is returned by Detect for unrecognized file names.
var ErrUnknownFormat = errors.New("seqio: unknown file format")

var compressionExt = map[string]Compression{
	".gz":  CompressionGzip,
	".zst": CompressionZstd,
	".lz4": CompressionLZ4,
}

var formatExt = map[string]Format{
	".fa":    FormatFASTA,
	".fasta": FormatFASTA,
	".fna":   FormatFASTA,
	".fq":    FormatFASTQ,
	".fastq": FormatFASTQ,
}

// Detect derives format and compression from the extension(s) of name.
func Detect(name string) (Format, Compression, error) {
	name = strings.ToLower(name)

	c := CompressionNone
	if cc, ok := compressionExt[path.Ext(name)]; ok {
		c = cc
		name = strings.TrimSuffix(name, path.Ext(name))
	}

	f, ok := formatExt[path.Ext(name)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, c, nil
}

// IsSequenceFile reports whether Detect recognizes name.
func IsSequenceFile(name string) bool {
	_, _, err := Detect(name)
	return err == nil
}
