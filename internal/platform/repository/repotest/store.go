// Package repotest provides an in-memory repository.Store for handler tests.
package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/healthplan/healthplan/internal/platform/sqlerr"
)

// Store keeps rows in a map keyed by id. IDs are assigned sequentially from 1.
type Store[T any] struct {
	mu    sync.Mutex
	table string
	id    func(*T) *int64
	rows  map[int64]T
	next  int64

	// Err, when set, is returned by every operation.
	Err error
}

// New returns an empty store. id must return a pointer to the entity's id
// field.
func New[T any](table string, id func(*T) *int64) *Store[T] {
	return &Store[T]{table: table, id: id, rows: make(map[int64]T)}
}

// Seed inserts rows as if they had been created in order.
func (s *Store[T]) Seed(items ...T) {
	for i := range items {
		_, _ = s.Create(context.Background(), &items[i])
	}
}

// Len returns the number of stored rows.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Store[T]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Store[T]) List(_ context.Context, limit, offset int) ([]*T, error) {
	return s.Filter(limit, offset, func(*T) bool { return true })
}

// Filter returns the rows accepted by keep, ordered by id.
func (s *Store[T]) Filter(limit, offset int, keep func(*T) bool) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []*T{}
	skipped := 0
	for _, id := range s.sortedIDs() {
		row := s.rows[id]
		if !keep(&row) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, &row)
	}
	return out, nil
}

func (s *Store[T]) Get(_ context.Context, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	row, ok := s.rows[id]
	if !ok {
		return nil, sqlerr.NewNotFound(s.table)
	}
	return &row, nil
}

func (s *Store[T]) Create(_ context.Context, entity *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.next++
	row := *entity
	*s.id(&row) = s.next
	s.rows[s.next] = row
	return &row, nil
}

func (s *Store[T]) Update(_ context.Context, id int64, entity *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return nil, sqlerr.NewNotFound(s.table)
	}
	row := *entity
	*s.id(&row) = id
	s.rows[id] = row
	return &row, nil
}

func (s *Store[T]) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return sqlerr.NewNotFound(s.table)
	}
	delete(s.rows, id)
	return nil
}
