// Package kmer counts fixed-length nucleotide substrings (k-mers) and turns
// the counts into sparse probability distributions.
//
// Each k-mer over {A, C, G, T} is packed into a uint64 with two bits per
// base (A=0, C=1, G=2, T=3), most significant base first, so k is limited
// to 32. Windows containing any other symbol (N, gaps, IUPAC codes) are
// skipped. Lower-case bases are accepted.
package kmer
