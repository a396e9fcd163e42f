// Package index implements the two reverse indices an Entry maintains over
// its stored values: an equality index from (path, leaf value) to the
// ordered set of ids sharing that leaf, and a range index from (path,
// numeric leaf value) to an ordered structure supporting bounded interval
// enumeration.
//
// Both indices key on a canonicalized form of encode.Leaf (see key.go)
// rather than the Leaf struct directly, so that an int64(5) written and a
// float64(5.0) queried land in the same bucket: the store's equality policy
// compares numeric leaves by mathematical value, not by which of the three
// numeric kinds produced them. NaN is never inserted into either index.
//
// The range index is a sorted slice of (value, ids) buckets searched by
// binary search rather than a balanced tree, the same choice hivekit makes
// for its subkey lists (hive/subkeys, sorted for "efficient binary search")
// and its edit change index (internal/edit/changeindex.go, sort.Search over
// a sorted path slice): updates here are one insert/remove at a time under
// a single mutation lock, so the simpler structure wins on both code size
// and constant factors at the scale an in-process coordination store
// targets.
package index
