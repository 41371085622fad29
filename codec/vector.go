package codec

import (
	"fmt"

	"github.com/hupe1980/jsd/sparse"
)

// VectorDoc is the wire form of a sparse vector:
//
//	{"indices": [1, 5, 9], "values": [0.2, 0.3, 0.5]}
type VectorDoc struct {
	Indices []uint64  `json:"indices"`
	Values  []float64 `json:"values"`
}

// EncodeVector marshals v with c (Default if nil).
func EncodeVector(c Codec, v sparse.Vector) ([]byte, error) {
	if c == nil {
		c = Default
	}
	return c.Marshal(VectorDoc{Indices: v.Indices, Values: v.Values})
}

// DecodeVector unmarshals a VectorDoc with c (Default if nil) and validates
// the result.
func DecodeVector(c Codec, data []byte) (sparse.Vector, error) {
	if c == nil {
		c = Default
	}

	var doc VectorDoc
	if err := c.Unmarshal(data, &doc); err != nil {
		return sparse.Vector{}, fmt.Errorf("codec: decode vector: %w", err)
	}

	v := sparse.FromSlices(doc.Indices, doc.Values)
	if err := v.Validate(); err != nil {
		return sparse.Vector{}, fmt.Errorf("codec: decode vector: %w", err)
	}
	return v, nil
}
