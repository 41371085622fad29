package sparse

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Support returns the set of indices stored in v.
func (v Vector) Support() *roaring64.Bitmap {
	rb := roaring64.New()
	rb.AddMany(v.Indices[:v.Len()])
	return rb
}

// Overlap summarizes how the supports of two vectors relate.
type Overlap struct {
	X            uint64
	Y            uint64
	Intersection uint64
	Union        uint64
}

// Jaccard returns |x∩y| / |x∪y|, or 0 when both supports are empty.
func (o Overlap) Jaccard() float64 {
	if o.Union == 0 {
		return 0
	}
	return float64(o.Intersection) / float64(o.Union)
}

// SupportOverlap compares the supports of x and y.
func SupportOverlap(x, y Vector) Overlap {
	xs, ys := x.Support(), y.Support()
	return Overlap{
		X:            xs.GetCardinality(),
		Y:            ys.GetCardinality(),
		Intersection: xs.AndCardinality(ys),
		Union:        xs.OrCardinality(ys),
	}
}
