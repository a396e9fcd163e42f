// Package entry implements Entry, the per-type storage unit that owns every
// value of one user type: the id-to-tree map, the equality and range
// indices over its leaves, and the path registry used to resolve
// unqualified field-path queries.
//
// Entry has no locking of its own — every method assumes the caller already
// holds the coordinator's single mutation lock (package coordinator), the
// way hivekit's index.StringIndex/NumericIndex assume build-phase callers
// serialize their own access.
package entry
