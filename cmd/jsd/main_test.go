package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/jsd/codec"
	"github.com/hupe1980/jsd/testutil"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("JSD_CONFIG", filepath.Join(dir, "absent.toml"))
	return dir
}

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gz(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Vectors(t *testing.T) {
	dir := setup(t)
	x := write(t, dir, "x.json", []byte(`{"indices":[1,2],"values":[0.5,0.5]}`))
	y := write(t, dir, "y.json", []byte(`{"indices":[2,3],"values":[0.5,0.5]}`))
	z := write(t, dir, "z.json", []byte(`{"indices":[9],"values":[4]}`))

	t.Run("PartialOverlap", func(t *testing.T) {
		out, err := runCLI(t, x, y)
		require.NoError(t, err)
		assert.Equal(t, "0.7071067811865476\n", out)
	})

	t.Run("NormalizesInput", func(t *testing.T) {
		out, err := runCLI(t, x, z)
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})

	t.Run("Matrix", func(t *testing.T) {
		out, err := runCLI(t, x, y, z)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "\t"+strings.Join([]string{x, y, z}, "\t"), lines[0])
		assert.Equal(t, x+"\t0\t0.7071067811865476\t1", lines[1])
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := runCLI(t, "-format", "json", "-stats", x, y)
		require.NoError(t, err)

		var report codec.Report
		require.NoError(t, codec.JSON{}.Unmarshal([]byte(out), &report))
		require.NotNil(t, report.Distance)
		assert.InDelta(t, 0.70710678, *report.Distance, 1e-8)
		assert.Zero(t, report.K)
		require.Len(t, report.Overlaps, 1)
		assert.Equal(t, uint64(1), report.Overlaps[0].Intersection)
		assert.Equal(t, uint64(3), report.Overlaps[0].Union)
	})

	t.Run("StatsText", func(t *testing.T) {
		out, err := runCLI(t, "-stats", x, y)
		require.NoError(t, err)
		assert.Contains(t, out, "intersection=1 union=3 jaccard=0.333333")
	})
}

func TestRun_Sequences(t *testing.T) {
	dir := setup(t)
	rng := testutil.NewRNG(3)

	seq := rng.DNA(2000)
	fasta := append([]byte(">a\n"), seq...)
	fasta = append(fasta, '\n')

	a := write(t, dir, "a.fa", fasta)
	b := write(t, dir, "b.fa.gz", gz(t, fasta))
	c := write(t, dir, "c.fastq", []byte("@c\n"+string(rng.DNA(50))+"\n+\n"+strings.Repeat("I", 50)+"\n"))

	t.Run("SameContentDifferentCompression", func(t *testing.T) {
		out, err := runCLI(t, "-k", "5", a, b)
		require.NoError(t, err)

		d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-6)
	})

	t.Run("JSONMatrix", func(t *testing.T) {
		out, err := runCLI(t, "-k", "7", "-workers", "2", "-validate", "-format", "json", a, b, c)
		require.NoError(t, err)

		var report codec.Report
		require.NoError(t, codec.JSON{}.Unmarshal([]byte(out), &report))
		assert.Equal(t, 7, report.K)
		require.Len(t, report.Matrix, 3)
		for i := range 3 {
			for j := range 3 {
				require.NotNil(t, report.Matrix[i][j])
				assert.Equal(t, *report.Matrix[i][j], *report.Matrix[j][i])
			}
		}
		assert.Greater(t, *report.Matrix[0][2], 0.5)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		cfg := write(t, dir, "jsd.toml", []byte("[kmer]\nsize = 3\n[limits]\nio_bytes_per_sec = 1048576\n"))
		out, err := runCLI(t, "-config", cfg, "-format", "json", a, c)
		require.NoError(t, err)

		var report codec.Report
		require.NoError(t, codec.JSON{}.Unmarshal([]byte(out), &report))
		assert.Equal(t, 3, report.K)
	})
}

func TestRun_Errors(t *testing.T) {
	dir := setup(t)
	x := write(t, dir, "x.json", []byte(`{"indices":[1],"values":[1]}`))
	bad := write(t, dir, "bad.json", []byte(`{"indices":[2,1],"values":[0.5,0.5]}`))
	txt := write(t, dir, "notes.txt", []byte("hello"))

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"OneInput", []string{x}, "at least two inputs"},
		{"BadFormat", []string{"-format", "xml", x, x}, "format"},
		{"BadLogLevel", []string{"-log-level", "loud", x, x}, "log level"},
		{"BadK", []string{"-k", "40", x, x}, "kmer.size"},
		{"UnsortedVector", []string{x, bad}, "unsorted"},
		{"UnknownFormat", []string{x, txt}, "unknown file format"},
		{"Missing", []string{x, filepath.Join(dir, "missing.fa")}, "missing.fa"},
		{"Scheme", []string{x, "ftp://host/file.fa"}, "unsupported scheme"},
		{"BucketOnly", []string{x, "s3://bucket"}, "bucket/key"},
		{"MinioUnconfigured", []string{x, "minio://bucket/file.fa"}, "minio.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
