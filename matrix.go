package jsd

import "fmt"

// Matrix is a dense symmetric N×N distance matrix.
type Matrix struct {
	N    int
	data []float64
}

func newMatrix(n int) *Matrix {
	return &Matrix{N: n, data: make([]float64, n*n)}
}

// set stores d at (i, j) and (j, i).
func (m *Matrix) set(i, j int, d float64) {
	m.data[i*m.N+j] = d
	m.data[j*m.N+i] = d
}

// At returns the distance between vectors i and j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.N || j >= m.N {
		panic(fmt.Sprintf("jsd: matrix index (%d, %d) out of range [0, %d)", i, j, m.N))
	}
	return m.data[i*m.N+j]
}

// Row returns the distances from vector i to all vectors. The returned
// slice aliases the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.N : (i+1)*m.N]
}
