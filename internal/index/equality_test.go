package index

import (
	"testing"

	"github.com/jpare/objectspace/internal/encode"
	"github.com/stretchr/testify/assert"
)

func TestEqualityInsertAndCandidates(t *testing.T) {
	eq := NewEquality()
	eq.Insert("finished", encode.Leaf{Kind: encode.KindBool, B: false}, 1)
	eq.Insert("finished", encode.Leaf{Kind: encode.KindBool, B: true}, 2)
	eq.Insert("finished", encode.Leaf{Kind: encode.KindBool, B: false}, 3)

	got := eq.Candidates("finished", encode.Leaf{Kind: encode.KindBool, B: false})
	assert.Equal(t, []uint64{1, 3}, got)
}

func TestEqualityCrossNumericKindMatches(t *testing.T) {
	eq := NewEquality()
	eq.Insert("count", encode.Leaf{Kind: encode.KindInt64, I: 5}, 1)

	got := eq.Candidates("count", encode.Leaf{Kind: encode.KindFloat64, F: 5.0})
	assert.Equal(t, []uint64{1}, got)
}

func TestEqualityNaNNeverMatches(t *testing.T) {
	eq := NewEquality()
	nan := encode.Leaf{Kind: encode.KindFloat64, F: nan64()}
	eq.Insert("p", nan, 1)

	got := eq.Candidates("p", nan)
	assert.Nil(t, got)
}

func TestEqualityRemove(t *testing.T) {
	eq := NewEquality()
	leaf := encode.Leaf{Kind: encode.KindString, S: "x"}
	eq.Insert("label", leaf, 1)
	eq.Insert("label", leaf, 2)

	eq.Remove("label", leaf, 1)
	assert.Equal(t, []uint64{2}, eq.Candidates("label", leaf))

	eq.Remove("label", leaf, 2)
	assert.Nil(t, eq.Candidates("label", leaf))
}

func nan64() float64 {
	var zero float64
	return zero / zero
}
