package encode

import "errors"

var (
	// ErrUnsupportedType is returned by Encode when a value contains a leaf
	// outside the supported primitive set (channels, funcs, complex numbers,
	// unsafe pointers).
	ErrUnsupportedType = errors.New("encode: unsupported leaf type")

	// ErrShapeMismatch is returned by Decode when the tree's shape does not
	// match the requested Go type.
	ErrShapeMismatch = errors.New("encode: tree shape does not match target type")
)
