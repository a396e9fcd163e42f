package objectspace

import (
	"errors"
	"fmt"

	"github.com/jpare/objectspace/internal/coordinator"
	"github.com/jpare/objectspace/internal/encode"
)

var (
	// ErrClosed is returned by any operation on a Space after Close, and is
	// the error every still-pending blocking call receives when the Space
	// they were waiting on is closed.
	ErrClosed = coordinator.ErrClosed

	// ErrEncoding wraps a failure to encode a value passed to Write: the
	// value contains a leaf of a type the store cannot represent (a
	// channel, func, complex number, or similarly unsupported field).
	ErrEncoding = errors.New("objectspace: value could not be encoded")

	// ErrDecoding wraps a failure to decode a stored value into the type
	// parameter requested by a Read or Take call.
	ErrDecoding = errors.New("objectspace: stored value could not be decoded")
)

func wrapEncode(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrEncoding, err)
}

func wrapDecode(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDecoding, err)
}

// leafFromAny converts a caller-supplied query value (the right-hand side of
// a ByValue call) into the internal Leaf representation used for equality
// comparisons, following the same primitive mapping as encode.Encode.
func leafFromAny(v any) (encode.Leaf, error) {
	tree, err := encode.Encode(v)
	if err != nil {
		return encode.Leaf{}, wrapEncode(err)
	}
	if tree.Kind != encode.TreeLeaf {
		return encode.Leaf{}, fmt.Errorf("%w: ByValue query must be a primitive, got a structured value", ErrEncoding)
	}
	return tree.Leaf, nil
}
