// Package seqio reads nucleotide sequence records from FASTA and FASTQ
// files, transparently decompressing gzip, zstd and lz4 input.
//
// Format and compression are detected from the file name:
//
//	reads.fastq.gz   FASTQ, gzip
//	genome.fa.zst    FASTA, zstd
//	contigs.fna.lz4  FASTA, lz4
//
// FASTA sequences may span any number of lines. FASTQ records must use
// the four-line layout.
package seqio
