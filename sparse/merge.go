package sparse

// Combiner merges the two values found at a shared index.
type Combiner func(a, b float64) float64

// exhausted marks a retired cursor. It can never alias a valid position.
const exhausted = -1

// MergeIntersect walks x and y in lockstep and returns, in ascending index
// order, (k, f(x[k], y[k])) for every index k present in both vectors.
// Indices present in only one input are skipped.
//
// Runs in O(|x|+|y|) time. The result has at most min(|x|, |y|) entries.
// Unsorted or duplicated indices produce an unspecified but deterministic
// result.
func MergeIntersect(x, y Vector, f Combiner) Vector {
	return mergeIntersect(x, y, f, nil)
}

// mergeIntersect is MergeIntersect with an optional hook invoked once per
// loop iteration. Every iteration advances at least one cursor.
func mergeIntersect(x, y Vector, f Combiner, onStep func()) Vector {
	xn, yn := x.Len(), y.Len()
	result := New(max(xn, yn))

	i, j := first(xn), first(yn)
	for i != exhausted || j != exhausted {
		if onStep != nil {
			onStep()
		}

		switch {
		case i != exhausted && j != exhausted && x.Indices[i] == y.Indices[j]:
			result.Append(x.Indices[i], f(x.Values[i], y.Values[j]))
			i = advance(i, xn)
			j = advance(j, yn)
		case j == exhausted || (i != exhausted && x.Indices[i] < y.Indices[j]):
			i = advance(i, xn)
		default:
			j = advance(j, yn)
		}
	}

	return result
}

func first(n int) int {
	if n == 0 {
		return exhausted
	}
	return 0
}

// advance moves a cursor forward, retiring it in the same step that
// consumes the final element.
func advance(pos, n int) int {
	if pos < n-1 {
		return pos + 1
	}
	return exhausted
}
