package encode

import "math"

// Kind identifies the primitive type carried by a Leaf.
type Kind int

const (
	KindNull Kind = iota
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindString
)

// String implements fmt.Stringer for diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Leaf is a single primitive value as produced by Encode.
type Leaf struct {
	Kind Kind
	I    int64
	U    uint64
	F    float64
	B    bool
	S    string
}

// NullLeaf is the canonical null leaf.
var NullLeaf = Leaf{Kind: KindNull}

// IsNumeric reports whether the leaf's kind is one of the three numeric kinds.
func (l Leaf) IsNumeric() bool {
	switch l.Kind {
	case KindInt64, KindUint64, KindFloat64:
		return true
	default:
		return false
	}
}

// IsNaN reports whether the leaf is a floating-point NaN.
func (l Leaf) IsNaN() bool {
	return l.Kind == KindFloat64 && math.IsNaN(l.F)
}

// NumericValue returns the leaf's mathematical value and true, for any
// numeric, non-NaN leaf. It returns false for non-numeric leaves and for NaN.
//
// uint64 values above 2^53 lose precision when widened to float64; this is a
// documented limitation of the equality/range index (see DESIGN.md), not of
// round-trip encode/decode, which always preserves the original kind and bits.
func (l Leaf) NumericValue() (float64, bool) {
	switch l.Kind {
	case KindInt64:
		return float64(l.I), true
	case KindUint64:
		return float64(l.U), true
	case KindFloat64:
		if math.IsNaN(l.F) {
			return 0, false
		}
		return l.F, true
	default:
		return 0, false
	}
}

// Equal reports whether two leaves are equal under the store's comparison
// policy: non-numeric kinds compare exactly by kind and value; numeric kinds
// compare by mathematical value regardless of which numeric kind either side
// carries. NaN is never equal to anything, including another NaN.
func (l Leaf) Equal(other Leaf) bool {
	if l.IsNumeric() && other.IsNumeric() {
		lv, lok := l.NumericValue()
		rv, rok := other.NumericValue()
		return lok && rok && lv == rv
	}
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case KindNull:
		return true
	case KindBool:
		return l.B == other.B
	case KindString:
		return l.S == other.S
	default:
		return false
	}
}

// TreeKind identifies the structural shape of a Tree node.
type TreeKind int

const (
	// TreeLeaf holds a primitive value directly (the root of a value
	// written as a bare int/string/bool/etc., or a struct field of
	// primitive type).
	TreeLeaf TreeKind = iota
	// TreeObject holds an ordered list of named child Trees.
	TreeObject
	// TreeArray holds an ordered list of unnamed child Trees.
	TreeArray
)

// Field is a single named child of a TreeObject, in declaration order.
type Field struct {
	Name  string
	Value Tree
}

// Tree is the canonical encoded representation of a user value.
type Tree struct {
	Kind   TreeKind
	Leaf   Leaf
	Fields []Field
	Items  []Tree
}

// LeafEntry pairs a dotted leaf path with the leaf value found there.
type LeafEntry struct {
	Path string
	Leaf Leaf
}

// LeafPaths enumerates every leaf reachable from tree without descending
// into arrays. The root leaf of a bare-primitive value is reported with the
// empty path "". Traversal order follows Fields order (struct declaration
// order), so the result is stable and finite.
func LeafPaths(tree Tree) []LeafEntry {
	var out []LeafEntry
	walkLeafPaths(tree, "", &out)
	return out
}

func walkLeafPaths(tree Tree, prefix string, out *[]LeafEntry) {
	switch tree.Kind {
	case TreeLeaf:
		*out = append(*out, LeafEntry{Path: prefix, Leaf: tree.Leaf})
	case TreeObject:
		for _, f := range tree.Fields {
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			walkLeafPaths(f.Value, path, out)
		}
	case TreeArray:
		// Sequence interiors are opaque to the query layer: no leaves
		// are reported for array elements, per spec.
	}
}
