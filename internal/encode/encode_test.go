package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type innerStruct struct {
	Start int
	End   int
}

type taskStruct struct {
	Finished bool
	Range    innerStruct
	Tags     []string
}

func TestEncodeBarePrimitive(t *testing.T) {
	tree, err := Encode(int64(42))
	require.NoError(t, err)
	assert.Equal(t, TreeLeaf, tree.Kind)
	assert.Equal(t, KindInt64, tree.Leaf.Kind)
	assert.Equal(t, int64(42), tree.Leaf.I)

	paths := LeafPaths(tree)
	require.Len(t, paths, 1)
	assert.Equal(t, "", paths[0].Path)
}

func TestEncodeStructNestedPaths(t *testing.T) {
	v := taskStruct{
		Finished: false,
		Range:    innerStruct{Start: 0, End: 10},
		Tags:     []string{"a", "b"},
	}
	tree, err := Encode(v)
	require.NoError(t, err)
	assert.Equal(t, TreeObject, tree.Kind)

	paths := LeafPaths(tree)
	byPath := map[string]Leaf{}
	for _, p := range paths {
		byPath[p.Path] = p.Leaf
	}

	require.Contains(t, byPath, "Finished")
	assert.Equal(t, false, byPath["Finished"].B)
	require.Contains(t, byPath, "Range.Start")
	assert.Equal(t, int64(0), byPath["Range.Start"].I)
	require.Contains(t, byPath, "Range.End")
	assert.Equal(t, int64(10), byPath["Range.End"].I)

	// Slice elements are not addressable leaf paths.
	assert.NotContains(t, byPath, "Tags.0")
}

func TestEncodeUnsupportedType(t *testing.T) {
	_, err := Encode(make(chan int))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncodeStructTagRename(t *testing.T) {
	type renamed struct {
		Foo int `objectspace:"bar"`
		Hid int `objectspace:"-"`
	}
	tree, err := Encode(renamed{Foo: 1, Hid: 2})
	require.NoError(t, err)
	require.Len(t, tree.Fields, 1)
	assert.Equal(t, "bar", tree.Fields[0].Name)
}

func TestEncodeNilPointer(t *testing.T) {
	var p *int
	tree, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, TreeLeaf, tree.Kind)
	assert.Equal(t, KindNull, tree.Leaf.Kind)
}
