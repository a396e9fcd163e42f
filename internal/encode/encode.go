package encode

import (
	"fmt"
	"reflect"
	"sort"
)

// Encode converts an arbitrary Go value into its canonical Tree.
//
// Supported shapes: the numeric kinds, bool, string; structs (exported
// fields only, in declaration order, optionally renamed via an
// `objectspace:"name"` struct tag); maps with string keys (children are
// ordered lexicographically by key for determinism); slices and arrays
// (encoded as TreeArray, their elements opaque to the indexer); pointers and
// interfaces are transparently dereferenced, with a nil pointer/interface
// encoding to a null leaf.
func Encode(v any) (Tree, error) {
	return encodeValue(reflect.ValueOf(v))
}

func encodeValue(rv reflect.Value) (Tree, error) {
	if !rv.IsValid() {
		return Tree{Kind: TreeLeaf, Leaf: NullLeaf}, nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Tree{Kind: TreeLeaf, Leaf: NullLeaf}, nil
		}
		return encodeValue(rv.Elem())

	case reflect.Bool:
		return Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindBool, B: rv.Bool()}}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindInt64, I: rv.Int()}}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindUint64, U: rv.Uint()}}, nil

	case reflect.Float32, reflect.Float64:
		return Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindFloat64, F: rv.Float()}}, nil

	case reflect.String:
		return Tree{Kind: TreeLeaf, Leaf: Leaf{Kind: KindString, S: rv.String()}}, nil

	case reflect.Struct:
		return encodeStruct(rv)

	case reflect.Map:
		return encodeMap(rv)

	case reflect.Slice, reflect.Array:
		return encodeSequence(rv)

	default:
		return Tree{}, fmt.Errorf("%w: kind %s", ErrUnsupportedType, rv.Kind())
	}
}

func encodeStruct(rv reflect.Value) (Tree, error) {
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("objectspace"); ok && tag != "" && tag != "-" {
			name = tag
		} else if tag == "-" {
			continue
		}
		child, err := encodeValue(rv.Field(i))
		if err != nil {
			return Tree{}, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		fields = append(fields, Field{Name: name, Value: child})
	}
	return Tree{Kind: TreeObject, Fields: fields}, nil
}

func encodeMap(rv reflect.Value) (Tree, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Tree{}, fmt.Errorf("%w: map key must be string, got %s", ErrUnsupportedType, rv.Type().Key())
	}
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		child, err := encodeValue(rv.MapIndex(reflect.ValueOf(name)))
		if err != nil {
			return Tree{}, fmt.Errorf("map key %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Value: child})
	}
	return Tree{Kind: TreeObject, Fields: fields}, nil
}

func encodeSequence(rv reflect.Value) (Tree, error) {
	items := make([]Tree, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child, err := encodeValue(rv.Index(i))
		if err != nil {
			return Tree{}, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = child
	}
	return Tree{Kind: TreeArray, Items: items}, nil
}
