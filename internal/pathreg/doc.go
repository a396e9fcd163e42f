// Package pathreg resolves unqualified field names ("finished") against the
// set of full dotted leaf paths ("task.finished") an Entry has actually
// indexed, the way a caller is allowed to address a field per the store's
// field-path syntax.
//
// Resolution is backed by a github.com/derekparker/trie trie keyed on the
// path's components in reverse order, so a suffix lookup ("does any
// registered path end in .finished?") becomes an ordinary prefix search —
// the same trick DNS suffix tries use for label matching.
package pathreg
