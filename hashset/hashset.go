// Package hashset implements a set of unique elements on a fixed array of
// buckets, resolving collisions by chaining.
//
// The bucket count is chosen at construction and never changes: chains simply
// grow as the set fills up. Methods are not thread-safe.
package hashset

import (
	"containers/internal/render"
)

// DefaultCapacity is the bucket count used by New.
const DefaultCapacity = 16

type node[T any] struct {
	value T
	next  *node[T]
}

// Set is a hash set with separate chaining over a fixed bucket table.
type Set[T any] struct {
	table  []*node[T]
	size   int
	hasher Hasher[T]
}

// New creates and returns an empty Set with DefaultCapacity buckets.
func New[T any](hasher Hasher[T]) *Set[T] {
	return NewWithCapacity(hasher, DefaultCapacity)
}

// NewWithCapacity creates an empty Set with the given number of buckets.
// It panics if capacity is less than one or hasher is nil.
func NewWithCapacity[T any](hasher Hasher[T], capacity int) *Set[T] {
	if capacity < 1 {
		panic("hashset: capacity must be positive")
	}
	if hasher == nil {
		panic("hashset: nil hasher")
	}
	return &Set[T]{
		table:  make([]*node[T], capacity),
		hasher: hasher,
	}
}

// Insert adds value to the Set. Inserting a value equal to one already
// present is a no-op.
func (s *Set[T]) Insert(value T) {
	index := s.Index(value)
	for current := s.table[index]; current != nil; current = current.next {
		if s.hasher.Equal(current.value, value) {
			return
		}
	}

	s.table[index] = &node[T]{value: value, next: s.table[index]}
	s.size++
}

// Remove deletes value from the Set. It reports whether the value was present.
func (s *Set[T]) Remove(value T) bool {
	index := s.Index(value)
	var prev *node[T]
	for current := s.table[index]; current != nil; current = current.next {
		if !s.hasher.Equal(current.value, value) {
			prev = current
			continue
		}
		if prev == nil {
			s.table[index] = current.next
		} else {
			prev.next = current.next
		}
		current.next = nil
		s.size--
		return true
	}
	return false
}

// Contains checks if the value is in the Set.
func (s *Set[T]) Contains(value T) bool {
	for current := s.table[s.Index(value)]; current != nil; current = current.next {
		if s.hasher.Equal(current.value, value) {
			return true
		}
	}
	return false
}

// Size returns the number of distinct elements.
func (s *Set[T]) Size() int {
	return s.size
}

// Capacity returns the number of buckets.
func (s *Set[T]) Capacity() int {
	return len(s.table)
}

// Index returns the bucket value belongs to.
func (s *Set[T]) Index(value T) int {
	return bucketIndex(s.hasher.Hash(value), len(s.table))
}

// Bucket returns the chain stored in bucket i, head first.
// It panics if i is outside [0, Capacity()).
func (s *Set[T]) Bucket(i int) []T {
	var chain []T
	for current := s.table[i]; current != nil; current = current.next {
		chain = append(chain, current.value)
	}
	return chain
}

// Values returns every element in bucket order, each chain head first. The
// order follows the storage layout and carries no other meaning.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.size)
	for _, head := range s.table {
		for current := head; current != nil; current = current.next {
			values = append(values, current.value)
		}
	}
	return values
}

// String renders the elements in Values order, e.g. "[a, b]".
func (s *Set[T]) String() string {
	return render.Join(s.Values())
}

// bucketIndex reduces the magnitude of h modulo n. The magnitude is taken in
// 64 bits so that math.MinInt32 does not overflow back to a negative value.
func bucketIndex(h int32, n int) int {
	m := int64(h)
	if m < 0 {
		m = -m
	}
	return int(m % int64(n))
}
