package index

import (
	"sort"

	"github.com/jpare/objectspace/internal/encode"
)

// bucket holds every id sharing one exact numeric leaf value, in insertion
// (arrival) order.
type bucket struct {
	value float64
	ids   []uint64
}

// Range is a reverse index from path to an ordered structure over numeric
// leaf values, supporting bounded in-order interval enumeration. Buckets are
// kept in a slice sorted by value and located by binary search; see doc.go
// for why this beats a balanced tree at this store's scale.
type Range struct {
	byPath map[string][]bucket
}

// NewRange creates an empty range index.
func NewRange() *Range {
	return &Range{byPath: make(map[string][]bucket)}
}

// Insert records that id carries numeric leaf at path. Non-numeric and NaN
// leaves are silently excluded (never indexed, never matched).
func (r *Range) Insert(path string, leaf encode.Leaf, id uint64) {
	v, ok := leaf.NumericValue()
	if !ok {
		return
	}
	buckets := r.byPath[path]
	i := sort.Search(len(buckets), func(i int) bool { return buckets[i].value >= v })
	if i < len(buckets) && buckets[i].value == v {
		buckets[i].ids = append(buckets[i].ids, id)
		r.byPath[path] = buckets
		return
	}
	buckets = append(buckets, bucket{})
	copy(buckets[i+1:], buckets[i:])
	buckets[i] = bucket{value: v, ids: []uint64{id}}
	r.byPath[path] = buckets
}

// Remove undoes a prior Insert for the same (path, leaf, id).
func (r *Range) Remove(path string, leaf encode.Leaf, id uint64) {
	v, ok := leaf.NumericValue()
	if !ok {
		return
	}
	buckets := r.byPath[path]
	i := sort.Search(len(buckets), func(i int) bool { return buckets[i].value >= v })
	if i >= len(buckets) || buckets[i].value != v {
		return
	}
	ids := buckets[i].ids
	for j, existing := range ids {
		if existing == id {
			ids = append(ids[:j], ids[j+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		buckets = append(buckets[:i], buckets[i+1:]...)
	} else {
		buckets[i].ids = ids
	}
	if len(buckets) == 0 {
		delete(r.byPath, path)
		return
	}
	r.byPath[path] = buckets
}

// Candidates returns the ids whose numeric leaf at path falls within
// [lo, hi) (or the inclusivity requested), ordered ascending by leaf value
// and, within a value, by insertion order.
func (r *Range) Candidates(path string, lo, hi float64, loInclusive, hiInclusive bool) []uint64 {
	buckets := r.byPath[path]
	start := sort.Search(len(buckets), func(i int) bool { return buckets[i].value >= lo })
	var out []uint64
	for i := start; i < len(buckets); i++ {
		v := buckets[i].value
		if v < lo || (v == lo && !loInclusive) {
			continue
		}
		if v > hi || (v == hi && !hiInclusive) {
			break
		}
		out = append(out, buckets[i].ids...)
	}
	return out
}
