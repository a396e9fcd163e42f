package index

import "github.com/jpare/objectspace/internal/encode"

// Equality is a reverse index from (path, leaf value) to the ordered set of
// ids sharing that exact leaf. Order within a bucket is insertion order,
// which is what makes a single-match read/take deterministic (P6).
type Equality struct {
	buckets map[string]map[equalityKey][]uint64
}

// NewEquality creates an empty equality index.
func NewEquality() *Equality {
	return &Equality{buckets: make(map[string]map[equalityKey][]uint64)}
}

// Insert records that id carries leaf at path. A NaN leaf is silently
// excluded: it is never indexed and therefore never matches a query.
func (e *Equality) Insert(path string, leaf encode.Leaf, id uint64) {
	key, ok := keyFromLeaf(leaf)
	if !ok {
		return
	}
	byValue, ok := e.buckets[path]
	if !ok {
		byValue = make(map[equalityKey][]uint64)
		e.buckets[path] = byValue
	}
	byValue[key] = append(byValue[key], id)
}

// Remove undoes a prior Insert for the same (path, leaf, id).
func (e *Equality) Remove(path string, leaf encode.Leaf, id uint64) {
	key, ok := keyFromLeaf(leaf)
	if !ok {
		return
	}
	byValue, ok := e.buckets[path]
	if !ok {
		return
	}
	ids, ok := byValue[key]
	if !ok {
		return
	}
	for i, existing := range ids {
		if existing == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(byValue, key)
		if len(byValue) == 0 {
			delete(e.buckets, path)
		}
		return
	}
	byValue[key] = ids
}

// Candidates returns the ids, in insertion order, whose leaf at path equals
// leaf. A NaN query, or a path/value never indexed, yields nil.
func (e *Equality) Candidates(path string, leaf encode.Leaf) []uint64 {
	key, ok := keyFromLeaf(leaf)
	if !ok {
		return nil
	}
	byValue, ok := e.buckets[path]
	if !ok {
		return nil
	}
	ids := byValue[key]
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}
