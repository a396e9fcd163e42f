package objectspace

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"github.com/jpare/objectspace/internal/coordinator"
	"github.com/jpare/objectspace/internal/encode"
)

// typeOf resolves the reflect.Type identifying T, including when T's zero
// value would itself be nil (a pointer or interface type), which rules out
// the simpler reflect.TypeOf(var T) idiom.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func decodeTree[T any](tree encode.Tree) (T, error) {
	out, err := encode.Decode[T](tree)
	if err != nil {
		var zero T
		return zero, wrapDecode(err)
	}
	return out, nil
}

func decodeAll[T any](s *Space, trees []encode.Tree) ([]T, error) {
	out := make([]T, 0, len(trees))
	for _, tree := range trees {
		v, err := decodeTree[T](tree)
		if err != nil {
			s.c.Logger().Warn("skipping candidate that failed to decode", zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func tryMatch[T any](ctx context.Context, s *Space, pred coordinator.Predicate, take bool) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	tree, ok, err := s.c.TryMatch(typeOf[T](), pred, take)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := decodeTree[T](tree)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func wait[T any](ctx context.Context, s *Space, pred coordinator.Predicate, take bool) (T, error) {
	tree, err := s.c.Wait(ctx, typeOf[T](), pred, take)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeTree[T](tree)
}

func readAllSnapshot[T any](ctx context.Context, s *Space, pred coordinator.Predicate) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	trees, err := s.c.ReadAllSnapshot(typeOf[T](), pred)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](s, trees)
}

func takeAllSnapshot[T any](ctx context.Context, s *Space, pred coordinator.Predicate) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	trees, err := s.c.TakeAllSnapshot(typeOf[T](), pred)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](s, trees)
}

func rangePredicate(path string, lo, hi float64) coordinator.Predicate {
	return coordinator.ByRangePredicate(path, lo, hi, true, false)
}

// Write encodes value and deposits it into s under its static type T, then
// walks the pending Read/Take calls of T in registration order and completes
// every one whose predicate a stored value now satisfies; a Take consumes its
// value, so a later waiter sees it only if no earlier Take removed it.
func Write[T any](ctx context.Context, s *Space, value T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tree, err := encode.Encode(value)
	if err != nil {
		return wrapEncode(err)
	}
	return s.c.Write(typeOf[T](), tree)
}

// TryRead returns a copy of some stored T without removing it, or ok=false
// if none is currently present. It never blocks.
func TryRead[T any](ctx context.Context, s *Space) (T, bool, error) {
	return tryMatch[T](ctx, s, coordinator.AnyPredicate(), false)
}

// Read returns a copy of some stored T without removing it, blocking until
// one is written if none is currently present.
func Read[T any](ctx context.Context, s *Space) (T, error) {
	return wait[T](ctx, s, coordinator.AnyPredicate(), false)
}

// TryTake atomically removes and returns some stored T, or ok=false if none
// is currently present. It never blocks.
func TryTake[T any](ctx context.Context, s *Space) (T, bool, error) {
	return tryMatch[T](ctx, s, coordinator.AnyPredicate(), true)
}

// Take atomically removes and returns some stored T, blocking until one is
// written if none is currently present.
func Take[T any](ctx context.Context, s *Space) (T, error) {
	return wait[T](ctx, s, coordinator.AnyPredicate(), true)
}

// ReadAll returns a point-in-time snapshot of every stored T. Later writes
// never appear in an already-returned slice.
func ReadAll[T any](ctx context.Context, s *Space) ([]T, error) {
	return readAllSnapshot[T](ctx, s, coordinator.AnyPredicate())
}

// TakeAll atomically removes and returns every currently stored T.
func TakeAll[T any](ctx context.Context, s *Space) ([]T, error) {
	return takeAllSnapshot[T](ctx, s, coordinator.AnyPredicate())
}

// TryReadByValue returns a copy of some stored T whose leaf at path equals
// value, or ok=false if none currently matches. path may be a full dotted
// field path or any unambiguous unqualified field name. It never blocks.
func TryReadByValue[T any](ctx context.Context, s *Space, path string, value any) (T, bool, error) {
	var zero T
	leaf, err := leafFromAny(value)
	if err != nil {
		return zero, false, err
	}
	return tryMatch[T](ctx, s, coordinator.ByValuePredicate(path, leaf), false)
}

// ReadByValue returns a copy of some stored T whose leaf at path equals
// value, blocking until one is written if none currently matches.
func ReadByValue[T any](ctx context.Context, s *Space, path string, value any) (T, error) {
	var zero T
	leaf, err := leafFromAny(value)
	if err != nil {
		return zero, err
	}
	return wait[T](ctx, s, coordinator.ByValuePredicate(path, leaf), false)
}

// TryTakeByValue atomically removes and returns some stored T whose leaf at
// path equals value, or ok=false if none currently matches. It never blocks.
func TryTakeByValue[T any](ctx context.Context, s *Space, path string, value any) (T, bool, error) {
	var zero T
	leaf, err := leafFromAny(value)
	if err != nil {
		return zero, false, err
	}
	return tryMatch[T](ctx, s, coordinator.ByValuePredicate(path, leaf), true)
}

// TakeByValue atomically removes and returns some stored T whose leaf at
// path equals value, blocking until one is written if none currently
// matches.
func TakeByValue[T any](ctx context.Context, s *Space, path string, value any) (T, error) {
	var zero T
	leaf, err := leafFromAny(value)
	if err != nil {
		return zero, err
	}
	return wait[T](ctx, s, coordinator.ByValuePredicate(path, leaf), true)
}

// ReadAllByValue returns a snapshot of every stored T whose leaf at path
// equals value.
func ReadAllByValue[T any](ctx context.Context, s *Space, path string, value any) ([]T, error) {
	leaf, err := leafFromAny(value)
	if err != nil {
		return nil, err
	}
	return readAllSnapshot[T](ctx, s, coordinator.ByValuePredicate(path, leaf))
}

// TakeAllByValue atomically removes and returns every stored T whose leaf at
// path equals value.
func TakeAllByValue[T any](ctx context.Context, s *Space, path string, value any) ([]T, error) {
	leaf, err := leafFromAny(value)
	if err != nil {
		return nil, err
	}
	return takeAllSnapshot[T](ctx, s, coordinator.ByValuePredicate(path, leaf))
}

// TryReadByRange returns a copy of some stored T whose numeric leaf at path
// falls in the half-open interval [lo, hi), or ok=false if none currently
// matches. It never blocks.
func TryReadByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) (T, bool, error) {
	return tryMatch[T](ctx, s, rangePredicate(path, lo, hi), false)
}

// ReadByRange returns a copy of some stored T whose numeric leaf at path
// falls in [lo, hi), blocking until one is written if none currently
// matches.
func ReadByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) (T, error) {
	return wait[T](ctx, s, rangePredicate(path, lo, hi), false)
}

// TryTakeByRange atomically removes and returns some stored T whose numeric
// leaf at path falls in [lo, hi), or ok=false if none currently matches. It
// never blocks.
func TryTakeByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) (T, bool, error) {
	return tryMatch[T](ctx, s, rangePredicate(path, lo, hi), true)
}

// TakeByRange atomically removes and returns some stored T whose numeric
// leaf at path falls in [lo, hi), blocking until one is written if none
// currently matches.
func TakeByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) (T, error) {
	return wait[T](ctx, s, rangePredicate(path, lo, hi), true)
}

// ReadAllByRange returns a snapshot of every stored T whose numeric leaf at
// path falls in [lo, hi), ordered by leaf value ascending.
func ReadAllByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) ([]T, error) {
	return readAllSnapshot[T](ctx, s, rangePredicate(path, lo, hi))
}

// TakeAllByRange atomically removes and returns every stored T whose numeric
// leaf at path falls in [lo, hi), ordered by leaf value ascending.
func TakeAllByRange[T any](ctx context.Context, s *Space, path string, lo, hi float64) ([]T, error) {
	return takeAllSnapshot[T](ctx, s, rangePredicate(path, lo, hi))
}
