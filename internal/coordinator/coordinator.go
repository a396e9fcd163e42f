package coordinator

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/jpare/objectspace/internal/encode"
	"github.com/jpare/objectspace/internal/entry"
	"go.uber.org/zap"
)

// ErrClosed is returned by any operation attempted after Close, and is the
// result every still-pending waiter receives when the space shuts down.
var ErrClosed = errors.New("objectspace: space is closed")

type waiter struct {
	predicate Predicate
	take      bool
	result    chan waiterResult
}

type waiterResult struct {
	tree encode.Tree
	err  error
}

// Coordinator serializes every mutation and lookup across all of a space's
// types, and manages goroutines blocked in a Wait call.
type Coordinator struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry.Entry
	waiters map[reflect.Type][]*waiter
	closed  bool
	logger  *zap.Logger
}

// New creates an empty Coordinator. A nil logger is replaced with a no-op
// logger.
func New(logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		entries: make(map[reflect.Type]*entry.Entry),
		waiters: make(map[reflect.Type][]*waiter),
		logger:  logger,
	}
}

// entryFor returns typ's Entry, creating it on first use. Must be called
// with mu held.
func (c *Coordinator) entryFor(typ reflect.Type) *entry.Entry {
	e, ok := c.entries[typ]
	if !ok {
		e = entry.New()
		c.entries[typ] = e
	}
	return e
}

// Write stores the already-encoded tree under typ, then wakes any waiter of typ
// whose predicate now matches.
func (c *Coordinator) Write(typ reflect.Type, tree encode.Tree) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	e := c.entryFor(typ)
	e.Insert(tree)
	c.wakeWaiters(typ, e)
	return nil
}

// wakeWaiters walks typ's pending waiters in FIFO order, completing every
// one whose predicate currently matches. Must be called with mu held.
func (c *Coordinator) wakeWaiters(typ reflect.Type, e *entry.Entry) {
	pending := c.waiters[typ]
	if len(pending) == 0 {
		return
	}
	remaining := pending[:0]
	for _, w := range pending {
		ids := w.predicate.candidates(e)
		if len(ids) == 0 {
			remaining = append(remaining, w)
			continue
		}
		id := ids[0]
		tree, ok := e.Fetch(id)
		if !ok {
			remaining = append(remaining, w)
			continue
		}
		if w.take {
			e.Remove(id)
		}
		w.result <- waiterResult{tree: tree}
	}
	c.waiters[typ] = remaining
}

// TryMatch performs a single non-blocking lookup: the lowest-id candidate
// satisfying pred is returned (and removed, if take), or ok is false.
func (c *Coordinator) TryMatch(typ reflect.Type, pred Predicate, take bool) (tree encode.Tree, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return encode.Tree{}, false, ErrClosed
	}
	e := c.entryFor(typ)
	ids := pred.candidates(e)
	if len(ids) == 0 {
		return encode.Tree{}, false, nil
	}
	id := ids[0]
	tree, ok = e.Fetch(id)
	if !ok {
		return encode.Tree{}, false, nil
	}
	if take {
		e.Remove(id)
	}
	return tree, true, nil
}

// Wait performs a blocking lookup: if pred has no current match, the caller
// suspends until a Write satisfies it, ctx is done, or the space closes.
func (c *Coordinator) Wait(ctx context.Context, typ reflect.Type, pred Predicate, take bool) (encode.Tree, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return encode.Tree{}, ErrClosed
	}
	e := c.entryFor(typ)
	ids := pred.candidates(e)
	if len(ids) > 0 {
		id := ids[0]
		tree, ok := e.Fetch(id)
		if ok {
			if take {
				e.Remove(id)
			}
			c.mu.Unlock()
			return tree, nil
		}
	}

	w := &waiter{predicate: pred, take: take, result: make(chan waiterResult, 1)}
	c.waiters[typ] = append(c.waiters[typ], w)
	c.mu.Unlock()

	select {
	case res := <-w.result:
		return res.tree, res.err
	case <-ctx.Done():
		c.mu.Lock()
		// The waiter may have been delivered to concurrently, between
		// ctx.Done() firing and acquiring mu. Prefer that result if so.
		select {
		case res := <-w.result:
			c.mu.Unlock()
			return res.tree, res.err
		default:
		}
		c.removeWaiter(typ, w)
		c.mu.Unlock()
		return encode.Tree{}, ctx.Err()
	}
}

// removeWaiter deletes w from typ's pending list. Must be called with mu held.
func (c *Coordinator) removeWaiter(typ reflect.Type, w *waiter) {
	pending := c.waiters[typ]
	for i, existing := range pending {
		if existing == w {
			c.waiters[typ] = append(pending[:i], pending[i+1:]...)
			return
		}
	}
}

// ReadAllSnapshot returns, in candidate order, every value of typ currently
// matching pred, as a consistent snapshot: later writes never appear in it.
func (c *Coordinator) ReadAllSnapshot(typ reflect.Type, pred Predicate) ([]encode.Tree, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	e := c.entryFor(typ)
	ids := pred.candidates(e)
	out := make([]encode.Tree, 0, len(ids))
	for _, id := range ids {
		if tree, ok := e.Fetch(id); ok {
			out = append(out, tree)
		}
	}
	return out, nil
}

// TakeAllSnapshot atomically removes and returns every value of typ
// currently matching pred.
func (c *Coordinator) TakeAllSnapshot(typ reflect.Type, pred Predicate) ([]encode.Tree, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	e := c.entryFor(typ)
	ids := pred.candidates(e)
	out := make([]encode.Tree, 0, len(ids))
	for _, id := range ids {
		if tree, ok := e.Fetch(id); ok {
			out = append(out, tree)
			e.Remove(id)
		}
	}
	return out, nil
}

// Logger returns the coordinator's logger, for use by callers that need to
// report a soft failure (e.g. a matching-but-undecodable candidate) without
// aborting the operation that found it.
func (c *Coordinator) Logger() *zap.Logger {
	return c.logger
}

// Close releases every pending waiter with ErrClosed and marks the
// coordinator closed; subsequent operations also return ErrClosed.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for typ, pending := range c.waiters {
		for _, w := range pending {
			w.result <- waiterResult{err: ErrClosed}
		}
		delete(c.waiters, typ)
	}
}
