package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sobi/internal/core"
	"sobi/internal/store"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sobi-test.db")
	repo, err := NewRepository(dbPath, "default-user")
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	created, err := repo.Create(ctx, core.Expense{
		Date:   mustDate(t, "2024-06-01"),
		Title:  "lunch",
		Amount: core.Money{Won: 9000},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create: expected assigned id")
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].Title != "lunch" || all[0].Amount.Won != 9000 {
		t.Fatalf("list after create: got %+v", all)
	}

	created.Amount = core.Money{Won: 12000}
	created.Title = "team lunch"
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	all, _ = repo.ListAll(ctx)
	if all[0].Title != "team lunch" || all[0].Amount.Won != 12000 {
		t.Fatalf("list after update: got %+v", all[0])
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = repo.ListAll(ctx)
	if len(all) != 0 {
		t.Fatalf("list after delete: got %+v", all)
	}
}

func TestRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	for _, c := range []struct {
		date  string
		title string
	}{
		{"2024-06-02", "first on 06-02"},
		{"2024-06-01", "older"},
		{"2024-06-02", "second on 06-02"},
		{"2024-06-03", "newest"},
	} {
		if _, err := repo.Create(ctx, core.Expense{
			Date:   mustDate(t, c.date),
			Title:  c.title,
			Amount: core.Money{Won: 1000},
		}); err != nil {
			t.Fatalf("create %q: %v", c.title, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantTitles := []string{"newest", "first on 06-02", "second on 06-02", "older"}
	for i, want := range wantTitles {
		if all[i].Title != want {
			t.Fatalf("position %d: got %q want %q", i, all[i].Title, want)
		}
	}
}

func TestRepositoryUnknownIDs(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	_, err := repo.Update(ctx, core.Expense{
		ID:     "12345",
		Date:   mustDate(t, "2024-06-01"),
		Title:  "x",
		Amount: core.Money{Won: 1},
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update missing: got %v", err)
	}
	if err := repo.Delete(ctx, "12345"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete missing: got %v", err)
	}
	// Non-numeric ids can never exist in this backend.
	if err := repo.Delete(ctx, "not-a-number"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete bogus id: got %v", err)
	}
}

func TestRepositoryOwnerScoping(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sobi-test.db")
	mine, err := NewRepository(dbPath, "default-user")
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer mine.Close()
	other, err := NewRepository(dbPath, "someone-else")
	if err != nil {
		t.Fatalf("open second repository: %v", err)
	}
	defer other.Close()

	created, err := mine.Create(ctx, core.Expense{
		Date:   mustDate(t, "2024-06-01"),
		Title:  "lunch",
		Amount: core.Money{Won: 9000},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := other.ListAll(ctx)
	if err != nil {
		t.Fatalf("list as other owner: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("other owner sees foreign rows: %+v", all)
	}
	if err := other.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("cross-owner delete: got %v", err)
	}
}
