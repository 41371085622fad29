package kmer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/jsd/sparse"
)

// MaxK is the largest k whose codes fit into a uint64.
const MaxK = 32

// ErrInvalidK is returned for k outside [1, MaxK].
var ErrInvalidK = errors.New("kmer: k out of range")

const invalidBase = 0xff

var baseCode = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidBase
	}
	for _, p := range []struct {
		b    byte
		code byte
	}{{'A', 0}, {'C', 1}, {'G', 2}, {'T', 3}} {
		t[p.b] = p.code
		t[p.b+'a'-'A'] = p.code
	}
	return t
}()

const bases = "ACGT"

func checkK(k int) error {
	if k < 1 || k > MaxK {
		return fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	return nil
}

func mask(k int) uint64 {
	if k == MaxK {
		return ^uint64(0)
	}
	return 1<<(2*uint(k)) - 1
}

// Encode returns an iterator over the code of every valid k-mer in seq, in
// order of occurrence.
func Encode(seq []byte, k int) (iter.Seq[uint64], error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	return encode(seq, k), nil
}

func encode(seq []byte, k int) iter.Seq[uint64] {
	m := mask(k)
	return func(yield func(uint64) bool) {
		var code uint64
		valid := 0
		for _, b := range seq {
			c := baseCode[b]
			if c == invalidBase {
				valid = 0
				code = 0
				continue
			}
			code = (code<<2 | uint64(c)) & m
			if valid < k {
				valid++
			}
			if valid == k && !yield(code) {
				return
			}
		}
	}
}

// Decode returns the k-mer string for code.
func Decode(code uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bases[code&3]
		code >>= 2
	}
	return string(buf)
}

// Counter accumulates k-mer occurrences across sequences.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	k     int
	codes []uint64
}

// NewCounter creates a Counter for k-mers of length k.
func NewCounter(k int) (*Counter, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	return &Counter{k: k}, nil
}

// K returns the k-mer length.
func (c *Counter) K() int { return c.k }

// Add counts every valid k-mer of seq.
func (c *Counter) Add(seq []byte) {
	for code := range encode(seq, c.k) {
		c.codes = append(c.codes, code)
	}
}

// Total returns the number of k-mers counted so far.
func (c *Counter) Total() int { return len(c.codes) }

// Vector returns the raw counts keyed by k-mer code, in ascending code order.
func (c *Counter) Vector() sparse.Vector {
	slices.Sort(c.codes)

	v := sparse.New(0)
	for i := 0; i < len(c.codes); {
		j := i + 1
		for j < len(c.codes) && c.codes[j] == c.codes[i] {
			j++
		}
		v.Append(c.codes[i], float64(j-i))
		i = j
	}
	return v
}

// Distribution returns the counts normalized to unit mass. It is empty if
// nothing was counted.
func (c *Counter) Distribution() sparse.Vector {
	v := c.Vector()
	v.Normalize()
	return v
}

// Reset discards all counts and keeps the allocated buffer.
func (c *Counter) Reset() {
	c.codes = c.codes[:0]
}
