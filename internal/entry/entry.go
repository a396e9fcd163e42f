package entry

import (
	"github.com/jpare/objectspace/internal/encode"
	"github.com/jpare/objectspace/internal/index"
	"github.com/jpare/objectspace/internal/pathreg"
)

// Entry owns every stored value of a single user type.
type Entry struct {
	nextID  uint64
	order   []uint64 // arrival order of currently-present ids
	members map[uint64]encode.Tree

	values *index.Equality
	ranges *index.Range
	paths  *pathreg.Registry
}

// New creates an empty Entry.
func New() *Entry {
	return &Entry{
		members: make(map[uint64]encode.Tree),
		values:  index.NewEquality(),
		ranges:  index.NewRange(),
		paths:   pathreg.New(),
	}
}

// Insert stores tree, indexing every leaf path it contains, and returns the
// newly assigned, monotonically increasing id.
func (e *Entry) Insert(tree encode.Tree) uint64 {
	e.nextID++
	id := e.nextID
	e.members[id] = tree
	e.order = append(e.order, id)

	for _, leafEntry := range encode.LeafPaths(tree) {
		e.paths.Register(leafEntry.Path)
		e.values.Insert(leafEntry.Path, leafEntry.Leaf, id)
		e.ranges.Insert(leafEntry.Path, leafEntry.Leaf, id)
	}
	return id
}

// Remove deletes id from members and from every index referencing it.
// It is a no-op if id is absent, preserving I3 (atomic, total removal).
func (e *Entry) Remove(id uint64) {
	tree, ok := e.members[id]
	if !ok {
		return
	}
	for _, leafEntry := range encode.LeafPaths(tree) {
		e.values.Remove(leafEntry.Path, leafEntry.Leaf, id)
		e.ranges.Remove(leafEntry.Path, leafEntry.Leaf, id)
	}
	delete(e.members, id)
	for i, existing := range e.order {
		if existing == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Fetch returns the stored tree for id without removing it.
func (e *Entry) Fetch(id uint64) (encode.Tree, bool) {
	tree, ok := e.members[id]
	return tree, ok
}

// CandidatesAll returns every present id in insertion order.
func (e *Entry) CandidatesAll() []uint64 {
	out := make([]uint64, len(e.order))
	copy(out, e.order)
	return out
}

// CandidatesEqual returns the ids whose leaf at the resolved path equals
// leaf, in insertion order. An unresolvable path (missing or ambiguous
// unqualified name) yields no candidates.
func (e *Entry) CandidatesEqual(path string, leaf encode.Leaf) []uint64 {
	resolved, ok := e.paths.Resolve(path)
	if !ok {
		return nil
	}
	return e.values.Candidates(resolved, leaf)
}

// CandidatesRange returns the ids whose numeric leaf at the resolved path
// falls within the requested bound, ordered by leaf value ascending, ties
// broken by insertion order.
func (e *Entry) CandidatesRange(path string, lo, hi float64, loInclusive, hiInclusive bool) []uint64 {
	resolved, ok := e.paths.Resolve(path)
	if !ok {
		return nil
	}
	return e.ranges.Candidates(resolved, lo, hi, loInclusive, hiInclusive)
}
