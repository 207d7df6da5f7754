// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sets implements a set as a `map[T]struct{}` with a few conveniences.
package sets

// Set of keys of type T.
type Set[T comparable] map[T]struct{}

// Make returns an empty Set. The optional size reserves space for that many keys.
func Make[T comparable](size ...int) Set[T] {
	if len(size) > 0 {
		return make(Set[T], size[0])
	}
	return make(Set[T])
}

// Has returns whether key is in the set.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert keys into the set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Duplicates returns the keys that appear more than once in keys, in order of their
// second appearance.
func Duplicates[T comparable](keys []T) []T {
	seen := Make[T](len(keys))
	var dups []T
	for _, key := range keys {
		if seen.Has(key) {
			dups = append(dups, key)
			continue
		}
		seen.Insert(key)
	}
	return dups
}
