package codec

import "math"

// Report is the machine-readable result of a CLI run.
type Report struct {
	Inputs []string `json:"inputs"`
	// K is the k-mer size used for sequence inputs, zero if none were read.
	K int `json:"k,omitempty"`
	// Distance is set for a two-input run.
	Distance *float64 `json:"distance,omitempty"`
	// Matrix is set for runs with more than two inputs.
	Matrix [][]*float64 `json:"matrix,omitempty"`
	// Overlaps holds support statistics, one per evaluated pair.
	Overlaps []OverlapDoc `json:"overlaps,omitempty"`
}

// OverlapDoc describes how the supports of two inputs intersect.
type OverlapDoc struct {
	I            int     `json:"i"`
	J            int     `json:"j"`
	SizeI        uint64  `json:"size_i"`
	SizeJ        uint64  `json:"size_j"`
	Intersection uint64  `json:"intersection"`
	Union        uint64  `json:"union"`
	Jaccard      float64 `json:"jaccard"`
}

// Float returns a pointer to f, or nil if f is NaN or infinite, which JSON
// cannot represent.
func Float(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
