package store

import (
	"context"
	"errors"

	"sobi/internal/core"
)

// ErrNotFound is returned when an operation names an id the store does not
// hold (deleted or never created).
var ErrNotFound = errors.New("expense not found")

// Ports for outbound expense stores.
type (
	// ExpenseCreator persists a new expense and assigns its id.
	ExpenseCreator interface {
		// Create stores e (whose ID must be empty) and returns the
		// stored record with the assigned opaque id.
		Create(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	// ExpenseLister returns the entire recorded history.
	ExpenseLister interface {
		// ListAll returns every expense, most recent date first.
		// There is no pagination; the history is small by design.
		ListAll(ctx context.Context) ([]core.Expense, error)
	}

	// ExpenseUpdater replaces a stored record in full.
	ExpenseUpdater interface {
		// Update replaces the record identified by e.ID and returns
		// the stored result. ErrNotFound if the id is unknown.
		Update(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	// ExpenseDeleter removes a record permanently.
	ExpenseDeleter interface {
		// Delete removes the record by id. ErrNotFound if absent;
		// deletion is not idempotent by contract.
		Delete(ctx context.Context, id string) error
	}

	// Store is the full expense-store contract.
	Store interface {
		ExpenseCreator
		ExpenseLister
		ExpenseUpdater
		ExpenseDeleter
	}
)
