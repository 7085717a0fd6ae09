// Package repository provides the generic in-memory collection backing every
// entity type in the sales engine. One Store exists per entity type; the
// engine owns all of them. Stores preserve insertion order, which the analyst
// relies on for deterministic grouping and tie-breaking.
package repository

import (
	ierr "github.com/NoahZinter/black-thursday/internal/errors"
)

// Entity is the contract every stored model satisfies. Renumber is how the
// store hands a freshly created entity its assigned id; nothing reassigns an
// id after that.
type Entity interface {
	EntityID() int
	Renumber(id int)
	Touch()
}

// MatchFunc is a generic predicate over stored entities
type MatchFunc[T Entity] func(item T) bool

// Store implements a generic ordered in-memory collection
type Store[T Entity] struct {
	items []T
	index map[int]T
}

// NewStore creates an empty Store
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{
		items: []T{},
		index: make(map[int]T),
	}
}

// Add appends an entity carrying its own id, as happens at load time.
// A duplicate id is a malformed record source and fails the load.
func (s *Store[T]) Add(item T) error {
	id := item.EntityID()
	if _, exists := s.index[id]; exists {
		return ierr.NewErrorf("duplicate id %d", id).
			WithHint("record source contains duplicate ids").
			Mark(ierr.ErrAlreadyExists)
	}

	s.items = append(s.items, item)
	s.index[id] = item
	return nil
}

// Insert appends a new entity, assigning it the next available id
// (max existing id + 1, or 1 when the store is empty).
func (s *Store[T]) Insert(item T) int {
	id := 1
	if len(s.items) > 0 {
		id = s.maxID() + 1
	}
	item.Renumber(id)

	s.items = append(s.items, item)
	s.index[id] = item
	return id
}

func (s *Store[T]) maxID() int {
	max := 0
	for id := range s.index {
		if id > max {
			max = id
		}
	}
	return max
}

// All returns every entity in insertion order. Never nil.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored entities
func (s *Store[T]) Len() int {
	return len(s.items)
}

// FindByID returns the entity with the given id. A miss is not an error.
func (s *Store[T]) FindByID(id int) (T, bool) {
	item, ok := s.index[id]
	return item, ok
}

// First returns the first entity in insertion order matching the predicate
func (s *Store[T]) First(match MatchFunc[T]) (T, bool) {
	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Where returns all entities matching the predicate, in insertion order.
// Never nil.
func (s *Store[T]) Where(match MatchFunc[T]) []T {
	out := []T{}
	for _, item := range s.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update applies the mutator to the entity with the given id and refreshes
// its modification timestamp. Unknown ids are a silent no-op; the return
// value reports whether anything was touched.
func (s *Store[T]) Update(id int, apply func(item T)) bool {
	item, ok := s.index[id]
	if !ok {
		return false
	}
	apply(item)
	item.Touch()
	return true
}

// Remove deletes the entity with the given id. Unknown ids are a silent
// no-op. No cascade: removing an invoice does not remove its line items;
// cross-repository referential integrity is the caller's concern.
func (s *Store[T]) Remove(id int) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)

	for i, item := range s.items {
		if item.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all entities from the store
func (s *Store[T]) Clear() {
	s.items = []T{}
	s.index = make(map[int]T)
}
