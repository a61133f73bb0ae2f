// Package index implements a mapping from a string key to a set of string
// values, used for the sense key and synset inverted indices.
package index

import "sort"

// Set is a set of strings.
type Set map[string]struct{}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members of the set, sorted.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Index maps a key to a set of values.
//
// The zero value is not usable, use New.
type Index struct {
	m map[string]Set
}

func New() *Index {
	return &Index{m: map[string]Set{}}
}

// FromMap builds an Index from a snapshot produced by Map.
func FromMap(m map[string][]string) *Index {
	x := New()
	for key, values := range m {
		for _, v := range values {
			x.Add(key, v)
		}
	}
	return x
}

// Add inserts value in the set of key. Adding an existing pair is a no-op.
func (x *Index) Add(key, value string) {
	s, ok := x.m[key]
	if !ok {
		s = Set{}
		x.m[key] = s
	}
	s[value] = struct{}{}
}

// Get returns a copy of the set of key. A missing key yields an empty set
// and the index is left unchanged.
func (x *Index) Get(key string) Set {
	s := x.m[key]
	out := make(Set, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Has reports whether key has at least one value.
func (x *Index) Has(key string) bool {
	_, ok := x.m[key]
	return ok
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return len(x.m)
}

// Keys returns all keys, sorted.
func (x *Index) Keys() []string {
	keys := make([]string, 0, len(x.m))
	for k := range x.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the values of key, sorted.
func (x *Index) Values(key string) []string {
	if s, ok := x.m[key]; ok {
		return s.Sorted()
	}
	return []string{}
}

// Sizes returns the number of values of each key, in key order.
func (x *Index) Sizes() []int {
	keys := x.Keys()
	sizes := make([]int, len(keys))
	for i, k := range keys {
		sizes[i] = len(x.m[k])
	}
	return sizes
}

// Map returns a snapshot of the index with sorted values.
func (x *Index) Map() map[string][]string {
	out := make(map[string][]string, len(x.m))
	for k, s := range x.m {
		out[k] = s.Sorted()
	}
	return out
}
