package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrMalformed is matched by errors for input that violates the format.
var ErrMalformed = errors.New("seqio: malformed input")

// Record is a single sequence entry.
type Record struct {
	// ID is the header up to the first whitespace.
	ID string
	// Description is the remainder of the header, if any.
	Description string
	Seq         []byte
	// Qual holds FASTQ quality scores; nil for FASTA.
	Qual []byte
}

// Reader yields records from a sequence stream.
// A Reader is not safe for concurrent use.
type Reader struct {
	format Format
	br     *bufio.Reader
	line   int
	close  func() error
}

// Open detects format and compression from name and returns a Reader on r.
func Open(r io.Reader, name string) (*Reader, error) {
	f, c, err := Detect(name)
	if err != nil {
		return nil, err
	}
	return NewReader(r, f, c)
}

// NewReader returns a Reader decoding r with the given compression.
func NewReader(r io.Reader, f Format, c Compression) (*Reader, error) {
	src, closeFn, err := decompress(r, c)
	if err != nil {
		return nil, err
	}
	return &Reader{
		format: f,
		br:     bufio.NewReaderSize(src, 64*1024),
		close:  closeFn,
	}, nil
}

func decompress(r io.Reader, c Compression) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch c {
	case CompressionNone:
		return r, noop, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("seqio: open gzip stream: %w", err)
		}
		return zr, zr.Close, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("seqio: open zstd stream: %w", err)
		}
		return dec, func() error { dec.Close(); return nil }, nil
	case CompressionLZ4:
		return lz4.NewReader(r), noop, nil
	default:
		return nil, nil, fmt.Errorf("seqio: unsupported compression %s", c)
	}
}

// Format returns the record format being read.
func (r *Reader) Format() Format { return r.format }

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	if r.format == FormatFASTQ {
		return r.nextFASTQ()
	}
	return r.nextFASTA()
}

// Close releases the decompressor. It does not close the underlying reader.
func (r *Reader) Close() error {
	return r.close()
}

func (r *Reader) nextFASTA() (Record, error) {
	rec, err := r.header('>')
	if err != nil {
		return Record{}, err
	}

	for {
		next, err := r.br.Peek(1)
		if errors.Is(err, io.EOF) || (err == nil && next[0] == '>') {
			return rec, nil
		}
		if err != nil {
			return Record{}, err
		}

		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return Record{}, err
		}
		rec.Seq = append(rec.Seq, line...)
	}
}

func (r *Reader) nextFASTQ() (Record, error) {
	rec, err := r.header('@')
	if err != nil {
		return Record{}, err
	}

	seq, err := r.requireLine("sequence")
	if err != nil {
		return Record{}, err
	}

	plus, err := r.requireLine("separator")
	if err != nil {
		return Record{}, err
	}
	if len(plus) == 0 || plus[0] != '+' {
		return Record{}, r.malformed("expected '+' separator")
	}

	qual, err := r.requireLine("quality")
	if err != nil {
		return Record{}, err
	}
	if len(qual) != len(seq) {
		return Record{}, r.malformed(fmt.Sprintf("quality length %d does not match sequence length %d", len(qual), len(seq)))
	}

	rec.Seq = seq
	rec.Qual = qual
	return rec, nil
}

// header skips blank lines and parses a header line starting with marker.
func (r *Reader) header(marker byte) (Record, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != marker {
			return Record{}, r.malformed(fmt.Sprintf("expected header starting with %q", marker))
		}

		h := line[1:]
		if i := bytes.IndexAny(h, " \t"); i >= 0 {
			return Record{ID: string(h[:i]), Description: string(bytes.TrimSpace(h[i+1:]))}, nil
		}
		return Record{ID: string(h)}, nil
	}
}

func (r *Reader) requireLine(what string) ([]byte, error) {
	line, err := r.readLine()
	if errors.Is(err, io.EOF) {
		return nil, r.malformed("truncated record, missing " + what)
	}
	return line, err
}

// readLine returns the next line without its terminator. It returns io.EOF
// only when no bytes remain.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(line) == 0 && err != nil {
		return nil, io.EOF
	}
	r.line++
	line = bytes.TrimRight(line, "\r\n")
	return line, nil
}

func (r *Reader) malformed(msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.line, msg)
}
