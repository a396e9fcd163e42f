// Package encode converts arbitrary Go values into a canonical tree of
// primitive leaves and back.
//
// The tree is the single structural vocabulary the indexer and coordinator
// are written against: they never need to know anything about a caller's
// concrete struct layout, only about Trees, Fields, and Leaves. A Tree is
// either a Leaf (one of int64, uint64, float64, bool, string, or null), an
// object (an ordered list of named Fields, mirroring Go struct field
// declaration order), or an array (an ordered list of element Trees).
//
// Array/sequence elements are intentionally not addressable by leaf path:
// LeafPaths never descends into an array, so a value nested inside a slice
// is encoded (round-trips correctly) but invisible to value/range queries.
package encode
