// Package objectspace implements a process-wide, thread-safe,
// heterogeneously-typed associative store for coordinating concurrent
// goroutines — a tuple-space: producers deposit arbitrary structured
// values with Write, consumers retrieve them by type and, optionally, by
// the value or numeric range of a named field, with atomic
// read-and-remove (Take) semantics and blocking variants that suspend
// until a matching value appears.
//
// # Overview
//
// A Space holds, per Go type written into it, an internally-indexed
// collection of encoded values (see internal/encode, internal/entry). Every
// operation is generic over the caller's static type T:
//
//	s := objectspace.New()
//	err := objectspace.Write(ctx, s, Task{Finished: false, Start: 0, End: 10})
//	t, err := objectspace.Take[Task](ctx, s)               // blocks until one exists
//	t, ok, err := objectspace.TryTake[Task](ctx, s)        // never blocks
//	all, err := objectspace.ReadAll[Task](ctx, s)          // snapshot, non-removing
//
// Field-targeted variants filter by equality or numeric range on a leaf
// path:
//
//	t, err := objectspace.TakeByValue[Task](ctx, s, "Finished", false)
//	ts, err := objectspace.ReadAllByRange[Task](ctx, s, "Start", 0, 100)
//
// # Concurrency
//
// A Space is safe for concurrent use from any number of goroutines. A
// single mutation lock (package internal/coordinator) serializes every
// write, read, and take; blocking Read/Take calls suspend on a per-caller
// channel until a matching Write arrives, ctx is done, or the Space is
// closed.
//
// # Scope
//
// There is no distributed or persisted operation: a Space lives in one
// process's memory for its lifetime. There is no query language beyond
// type, single-field equality, and single-field numeric range.
package objectspace
