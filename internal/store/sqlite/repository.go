// Package sqlite stores expenses in a local SQLite database. Schema changes
// go through embedded golang-migrate migrations run at open time.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"sobi/internal/core"
	applog "sobi/internal/log"
	"sobi/internal/store"
)

type Repository struct {
	db    *sql.DB
	owner string
}

// NewRepository opens (creating if needed) the database at dbPath, runs
// pending migrations, and scopes all queries to the given owner key.
func NewRepository(dbPath, owner string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db, owner: owner}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create implements store.ExpenseCreator.
func (r *Repository) Create(ctx context.Context, e core.Expense) (core.Expense, error) {
	if e.ID != "" {
		return core.Expense{}, fmt.Errorf("create expense: id must be empty, got %q", e.ID)
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (owner_id, expense_date, title, amount_won)
		 VALUES (?, ?, ?, ?)`,
		r.owner, e.Date.String(), e.Title, e.Amount.Won)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("read inserted id: %w", err)
	}
	e.ID = strconv.FormatInt(id, 10)

	slog.InfoContext(ctx, "Expense saved to SQLite",
		applog.FieldComponent, applog.ComponentStore,
		applog.FieldExpenseID, e.ID,
		applog.FieldOwnerID, r.owner,
		applog.FieldDate, e.Date.String(),
		applog.FieldAmountWon, e.Amount.Won)

	return e, nil
}

// ListAll implements store.ExpenseLister. Rows come back most recent date
// first; same-date rows keep insertion order via the ascending row id.
func (r *Repository) ListAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, expense_date, title, amount_won
		 FROM expenses
		 WHERE owner_id = ?
		 ORDER BY expense_date DESC, id ASC`,
		r.owner)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			id      int64
			dateStr string
			e       core.Expense
		)
		if err := rows.Scan(&id, &dateStr, &e.Title, &e.Amount.Won); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		e.ID = strconv.FormatInt(id, 10)
		e.Date = date
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

// Update implements store.ExpenseUpdater. The record is replaced in full.
func (r *Repository) Update(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	id, err := strconv.ParseInt(e.ID, 10, 64)
	if err != nil {
		return core.Expense{}, store.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses
		 SET expense_date = ?, title = ?, amount_won = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND owner_id = ?`,
		e.Date.String(), e.Title, e.Amount.Won, id, r.owner)
	if err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return core.Expense{}, fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return core.Expense{}, store.ErrNotFound
	}
	return e, nil
}

// Delete implements store.ExpenseDeleter.
func (r *Repository) Delete(ctx context.Context, idStr string) error {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = ? AND owner_id = ?`, id, r.owner)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.Store = (*Repository)(nil)
