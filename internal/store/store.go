// Package store provides a generic, mutex-guarded in-memory record
// collection. It is the leaf of the core: it knows nothing about the
// services built on top of it, and every record is a value type copied in
// and out, so callers can never observe a half-updated record.
package store

import "sync"

// Predicate selects records. Services build them from typed field
// criteria, keeping the "AND of equalities" query semantics while gaining
// compile-time field-name safety.
type Predicate[T any] func(T) bool

// Store is an in-memory collection of records of one entity type.
//
// All operations are synchronous and CPU-bound. Mutating operations hold
// the write lock for the full check-and-write, which makes Upsert and
// AddIfAbsent atomic with respect to concurrent callers; the original
// check-then-act patterns this replaces could produce duplicates under
// concurrency.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// All returns every record in insertion order. The returned slice is a
// copy; callers may re-sort it freely.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns every record matching pred, in insertion order. A nil
// predicate matches everything. An empty result is a valid answer, not an
// error.
func (s *Store[T]) Filter(pred Predicate[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, rec := range s.records {
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// First returns the first record matching pred.
func (s *Store[T]) First(pred Predicate[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if pred == nil || pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the record and returns it. The store generates no IDs or
// keys; callers own the uniqueness of any key they rely on (via
// AddIfAbsent or Upsert when that matters).
func (s *Store[T]) Add(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return rec
}

// Update replaces every record matching pred with rec and returns how many
// were replaced. Callers that intend to touch a single logical record must
// supply a predicate precise enough to identify it.
func (s *Store[T]) Update(pred Predicate[T], rec T) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceLocked(pred, rec)
}

// Upsert replaces every record matching pred with rec, or appends rec when
// nothing matches. It reports whether an existing record was replaced. The
// whole check-and-write happens under one critical section.
func (s *Store[T]) Upsert(pred Predicate[T], rec T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := s.replaceLocked(pred, rec); n > 0 {
		return rec, true
	}
	s.records = append(s.records, rec)
	return rec, false
}

// AddIfAbsent appends rec only when no record matches pred, reporting
// whether the append happened. Like Upsert, check and write share one
// critical section.
func (s *Store[T]) AddIfAbsent(pred Predicate[T], rec T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if pred(existing) {
			return existing, false
		}
	}
	s.records = append(s.records, rec)
	return rec, true
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) replaceLocked(pred Predicate[T], rec T) int {
	n := 0
	for i, existing := range s.records {
		if pred == nil || pred(existing) {
			s.records[i] = rec
			n++
		}
	}
	return n
}
