package coordinator

import (
	"github.com/jpare/objectspace/internal/encode"
	"github.com/jpare/objectspace/internal/entry"
)

// Kind identifies which form of predicate a Predicate carries.
type Kind int

const (
	// Any matches every value of the target type.
	Any Kind = iota
	// ByValue matches values whose leaf at Path equals Leaf.
	ByValue
	// ByRange matches values whose numeric leaf at Path falls in
	// [Lo, Hi) (or the requested inclusivity).
	ByRange
)

// Predicate selects a subset of a type's stored values.
type Predicate struct {
	Kind                     Kind
	Path                     string
	Leaf                     encode.Leaf
	Lo, Hi                   float64
	LoInclusive, HiInclusive bool
}

// AnyPredicate returns the zero-configuration "match everything" predicate.
func AnyPredicate() Predicate { return Predicate{Kind: Any} }

// ByValuePredicate matches values whose leaf at path equals leaf.
func ByValuePredicate(path string, leaf encode.Leaf) Predicate {
	return Predicate{Kind: ByValue, Path: path, Leaf: leaf}
}

// ByRangePredicate matches values whose numeric leaf at path falls in the
// requested interval.
func ByRangePredicate(path string, lo, hi float64, loInclusive, hiInclusive bool) Predicate {
	return Predicate{
		Kind: ByRange, Path: path, Lo: lo, Hi: hi,
		LoInclusive: loInclusive, HiInclusive: hiInclusive,
	}
}

// candidates resolves the predicate against e's current contents, in the
// ordering each candidate-producing method documents.
func (p Predicate) candidates(e *entry.Entry) []uint64 {
	switch p.Kind {
	case Any:
		return e.CandidatesAll()
	case ByValue:
		return e.CandidatesEqual(p.Path, p.Leaf)
	case ByRange:
		return e.CandidatesRange(p.Path, p.Lo, p.Hi, p.LoInclusive, p.HiInclusive)
	default:
		return nil
	}
}
