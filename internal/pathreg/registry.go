package pathreg

import (
	"strings"

	"github.com/derekparker/trie"
)

// Registry tracks every full dotted leaf path an Entry has indexed, and
// resolves unqualified field names to the one full path they unambiguously
// name. It is not safe for concurrent use on its own; callers serialize
// access (the coordinator's mutation lock, in this repository).
type Registry struct {
	t        *trie.Trie
	full     map[string]struct{} // every exact full path ever registered
	suffixes map[string][]string // reversed-components key -> full paths sharing it
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		t:        trie.New(),
		full:     make(map[string]struct{}),
		suffixes: make(map[string][]string),
	}
}

// Register records path (e.g. "task.finished", or "" for a bare-leaf value)
// as an addressable leaf path. Safe to call repeatedly with the same path.
func (r *Registry) Register(path string) {
	if _, ok := r.full[path]; ok {
		return
	}
	r.full[path] = struct{}{}

	// Unqualified-name resolution is case-insensitive (struct fields are
	// conventionally capitalized; callers spell queries however they like),
	// so the trie and suffix map key on the lowercased reversed path.
	rev := strings.ToLower(reverseComponents(path))
	if _, ok := r.suffixes[rev]; !ok {
		r.t.Add(rev, path)
	}
	r.suffixes[rev] = append(r.suffixes[rev], path)
}

// Resolve maps a caller-supplied field-path query to the one full dotted
// path it names. A dotted path that has been registered resolves to itself
// (exact, case-sensitive match). An unqualified name resolves, case-
// insensitively, to the full path it is an unambiguous suffix of. Anything
// else — never registered, or ambiguous across more than one full path —
// resolves to ("", false): "no candidates", never an error.
func (r *Registry) Resolve(query string) (string, bool) {
	if _, ok := r.full[query]; ok {
		return query, true
	}

	revQuery := strings.ToLower(reverseComponents(query))
	matches := r.t.PrefixSearch(revQuery)

	var found string
	count := 0
	for _, candidateRev := range matches {
		if candidateRev != revQuery && !strings.HasPrefix(candidateRev, revQuery+".") {
			continue // PrefixSearch is a literal prefix match; enforce a path-component boundary.
		}
		for _, full := range r.suffixes[candidateRev] {
			found = full
			count++
			if count > 1 {
				return "", false
			}
		}
	}
	if count == 1 {
		return found, true
	}
	return "", false
}

// reverseComponents reverses the dot-separated components of path so that a
// suffix-of-original-string query becomes a prefix query in the trie.
func reverseComponents(path string) string {
	if path == "" {
		return ""
	}
	parts := strings.Split(path, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
