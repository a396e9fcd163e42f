package index

import "github.com/jpare/objectspace/internal/encode"

// equalityKey is the canonical, comparable form of a leaf used as a map key.
// Numeric leaves (int64/uint64/float64) canonicalize to a float64 so that
// int64(5) and float64(5.0) hash to the same bucket, matching the store's
// cross-kind numeric equality policy.
type equalityKey struct {
	kind kindTag
	num  float64
	b    bool
	s    string
}

type kindTag uint8

const (
	tagNull kindTag = iota
	tagNumeric
	tagBool
	tagString
)

// keyFromLeaf derives the equality-index key for l. ok is false for NaN,
// which is excluded from both indices entirely.
func keyFromLeaf(l encode.Leaf) (equalityKey, bool) {
	switch l.Kind {
	case encode.KindNull:
		return equalityKey{kind: tagNull}, true
	case encode.KindBool:
		return equalityKey{kind: tagBool, b: l.B}, true
	case encode.KindString:
		return equalityKey{kind: tagString, s: l.S}, true
	case encode.KindInt64, encode.KindUint64, encode.KindFloat64:
		v, ok := l.NumericValue()
		if !ok {
			return equalityKey{}, false
		}
		return equalityKey{kind: tagNumeric, num: v}, true
	default:
		return equalityKey{}, false
	}
}
