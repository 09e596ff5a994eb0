package collections

import (
	"iter"
	"slices"
)

// OrderedSet is a set that iterates in insertion order. The zero value is an
// empty set ready to use. It is not safe for concurrent use.
type OrderedSet[T comparable] struct {
	items   []T
	members map[T]struct{}
}

// NewOrderedSet creates a set holding values, ignoring duplicates.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{members: make(map[T]struct{}, len(values))}

	for _, value := range values {
		_ = s.Add(value)
	}

	return s
}

// Add inserts value unless it is already a member. It never refuses.
func (s *OrderedSet[T]) Add(value T) error {
	if s.members == nil {
		s.members = make(map[T]struct{})
	}

	if _, ok := s.members[value]; ok {
		return nil
	}

	s.members[value] = struct{}{}
	s.items = append(s.items, value)

	return nil
}

// Contains reports whether value is a member.
func (s *OrderedSet[T]) Contains(value T) bool {
	_, ok := s.members[value]

	return ok
}

// Len returns the number of members.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// All yields the members in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Values returns a copy of the members in insertion order.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// Remove deletes value from the set.
func (s *OrderedSet[T]) Remove(value T) bool {
	if _, ok := s.members[value]; !ok {
		return false
	}

	delete(s.members, value)
	s.items = slices.DeleteFunc(s.items, func(item T) bool { return item == value })

	return true
}
