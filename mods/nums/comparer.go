package nums

import "math"

// TolComparer is an equality comparator for float64 keys of hashed containers.
//
// Equal uses EqualsTol with the comparer tolerance; Hash buckets values in
// slots ten times wider than the tolerance. Two values within tolerance that
// lie on opposite sides of a bucket boundary hash differently, so a lookup
// through Hash can miss an element that Equal would accept.
type TolComparer struct {
	tol   float64
	tolHc float64
}

func NewTolComparer(tol float64) TolComparer {
	return TolComparer{tol: tol, tolHc: 10 * tol}
}

func (c TolComparer) Tolerance() float64 { return c.tol }

func (c TolComparer) Equal(x, y float64) bool {
	return EqualsTol(x, c.tol, y)
}

// Hash returns floor(x / (10*tol)).
// With a zero tolerance the comparer is an exact comparer and the bits of x are used.
func (c TolComparer) Hash(x float64) int64 {
	if c.tolHc <= 0 {
		if x == 0 {
			// +0 and -0
			return 0
		}
		return int64(math.Float64bits(x))
	}
	return int64(math.Floor(x / c.tolHc))
}

// TolSet is a set of float64 values deduplicated by a TolComparer.
// It is not safe for concurrent use.
type TolSet struct {
	cmp     TolComparer
	buckets map[int64][]float64
	n       int
}

func NewTolSet(tol float64) *TolSet {
	return &TolSet{
		cmp:     NewTolComparer(tol),
		buckets: map[int64][]float64{},
	}
}

// Add inserts x unless an equal value is already present in its bucket.
// It returns true if x was inserted.
func (s *TolSet) Add(x float64) bool {
	if s.Contains(x) {
		return false
	}
	h := s.cmp.Hash(x)
	s.buckets[h] = append(s.buckets[h], x)
	s.n++
	return true
}

// Contains probes the bucket of x only.
func (s *TolSet) Contains(x float64) bool {
	for _, v := range s.buckets[s.cmp.Hash(x)] {
		if s.cmp.Equal(v, x) {
			return true
		}
	}
	return false
}

func (s *TolSet) Len() int {
	return s.n
}

func (s *TolSet) Values() []float64 {
	ret := make([]float64, 0, s.n)
	for _, b := range s.buckets {
		ret = append(ret, b...)
	}
	return ret
}
