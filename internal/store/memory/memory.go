// Package memory provides an in-process expense store used by tests and
// local development. It mirrors the contract of the remote stores, including
// date-descending listing and stable insertion order within a date.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"sobi/internal/core"
	"sobi/internal/store"
)

type Store struct {
	mu    sync.Mutex
	owner string
	items []core.Expense // insertion order
}

// New creates an empty store for the given owner key.
func New(owner string) *Store {
	return &Store{owner: owner}
}

// Owner returns the owner key the store was created for.
func (s *Store) Owner() string {
	return s.owner
}

// Create implements store.ExpenseCreator.
func (s *Store) Create(_ context.Context, e core.Expense) (core.Expense, error) {
	if e.ID != "" {
		return core.Expense{}, fmt.Errorf("create expense: id must be empty, got %q", e.ID)
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	e.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return e, nil
}

// ListAll implements store.ExpenseLister. Dates sort descending; expenses
// on the same date keep creation order.
func (s *Store) ListAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Expense(nil), s.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out, nil
}

// Update implements store.ExpenseUpdater.
func (s *Store) Update(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == e.ID {
			s.items[i] = e
			return e, nil
		}
	}
	return core.Expense{}, store.ErrNotFound
}

// Delete implements store.ExpenseDeleter.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
