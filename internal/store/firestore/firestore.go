// Package firestore stores expenses in Cloud Firestore under the document
// layout users/{owner}/expenses/{id}. Document ids are Firestore-assigned
// and serve as the opaque expense ids.
package firestore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sobi/internal/core"
	applog "sobi/internal/log"
	"sobi/internal/store"
)

type Store struct {
	client *firestore.Client
	owner  string
}

type expenseDoc struct {
	Date      string    `firestore:"date"`
	Title     string    `firestore:"title"`
	Amount    int64     `firestore:"amount"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

// New connects to the project's Firestore database. credentialsFile may be
// empty, in which case application default credentials apply.
func New(ctx context.Context, projectID, credentialsFile, owner string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return &Store{client: client, owner: owner}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) expenses() *firestore.CollectionRef {
	return s.client.Collection("users").Doc(s.owner).Collection("expenses")
}

// Create implements store.ExpenseCreator.
func (s *Store) Create(ctx context.Context, e core.Expense) (core.Expense, error) {
	if e.ID != "" {
		return core.Expense{}, fmt.Errorf("create expense: id must be empty, got %q", e.ID)
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	ref, _, err := s.expenses().Add(ctx, expenseDoc{
		Date:   e.Date.String(),
		Title:  e.Title,
		Amount: e.Amount.Won,
	})
	if err != nil {
		return core.Expense{}, fmt.Errorf("add expense document: %w", err)
	}
	e.ID = ref.ID

	slog.InfoContext(ctx, "Expense saved to Firestore",
		applog.FieldComponent, applog.ComponentStore,
		applog.FieldExpenseID, e.ID,
		applog.FieldOwnerID, s.owner,
		applog.FieldDate, e.Date.String(),
		applog.FieldAmountWon, e.Amount.Won)

	return e, nil
}

// ListAll implements store.ExpenseLister, most recent date first. The date
// field holds the canonical YYYY-MM-DD string, so lexicographic order in
// Firestore matches calendar order.
func (s *Store) ListAll(ctx context.Context) ([]core.Expense, error) {
	iter := s.expenses().OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []core.Expense
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate expense documents: %w", err)
		}
		var doc expenseDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode expense document %s: %w", snap.Ref.ID, err)
		}
		date, err := core.ParseDate(doc.Date)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q in %s: %w", doc.Date, snap.Ref.ID, err)
		}
		out = append(out, core.Expense{
			ID:     snap.Ref.ID,
			Date:   date,
			Title:  doc.Title,
			Amount: core.Money{Won: doc.Amount},
		})
	}
	return out, nil
}

// Update implements store.ExpenseUpdater. The document fields are replaced
// in full; createdAt is left untouched.
func (s *Store) Update(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	_, err := s.expenses().Doc(e.ID).Update(ctx, []firestore.Update{
		{Path: "date", Value: e.Date.String()},
		{Path: "title", Value: e.Title},
		{Path: "amount", Value: e.Amount.Won},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return core.Expense{}, store.ErrNotFound
		}
		return core.Expense{}, fmt.Errorf("update expense document: %w", err)
	}
	return e, nil
}

// Delete implements store.ExpenseDeleter. Firestore deletes are idempotent,
// so existence is checked first to honor the ErrNotFound contract.
func (s *Store) Delete(ctx context.Context, id string) error {
	ref := s.expenses().Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrNotFound
		}
		return fmt.Errorf("fetch expense document: %w", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete expense document: %w", err)
	}
	return nil
}

var _ store.Store = (*Store)(nil)
