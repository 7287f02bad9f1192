package memory

import (
	"context"
	"errors"
	"testing"

	"sobi/internal/core"
	"sobi/internal/store"
)

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New("default-user")

	created, err := s.Create(ctx, core.Expense{
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

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("list after create: got %+v", all)
	}

	created.Amount = core.Money{Won: 12000}
	updated, err := s.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount.Won != 12000 {
		t.Fatalf("update: got %d want 12000", updated.Amount.Won)
	}

	all, _ = s.ListAll(ctx)
	buckets := core.GroupByDate(all)
	if got := buckets["2024-06-01"].Total.Won; got != 12000 {
		t.Fatalf("bucket total after update: got %d want 12000", got)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = s.ListAll(ctx)
	if len(all) != 0 {
		t.Fatalf("list after delete: got %+v", all)
	}
}

func TestListAllOrdersDatesDescending(t *testing.T) {
	ctx := context.Background()
	s := New("default-user")
	for _, c := range []struct {
		date  string
		title string
	}{
		{"2024-06-02", "first on 06-02"},
		{"2024-06-01", "older"},
		{"2024-06-03", "newest"},
		{"2024-06-02", "second on 06-02"},
	} {
		if _, err := s.Create(ctx, core.Expense{
			Date:   mustDate(t, c.date),
			Title:  c.title,
			Amount: core.Money{Won: 1000},
		}); err != nil {
			t.Fatalf("create %q: %v", c.title, err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantDates := []string{"2024-06-03", "2024-06-02", "2024-06-02", "2024-06-01"}
	for i, want := range wantDates {
		if got := all[i].Date.String(); got != want {
			t.Fatalf("position %d: got %s want %s", i, got, want)
		}
	}
	// Same-date records keep creation order.
	if all[1].Title != "first on 06-02" || all[2].Title != "second on 06-02" {
		t.Fatalf("same-date order: got %q then %q", all[1].Title, all[2].Title)
	}
}

func TestUnknownIDs(t *testing.T) {
	ctx := context.Background()
	s := New("default-user")

	_, err := s.Update(ctx, core.Expense{
		ID:     "missing",
		Date:   mustDate(t, "2024-06-01"),
		Title:  "x",
		Amount: core.Money{Won: 1},
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update missing: got %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete missing: got %v", err)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := New("default-user")

	if _, err := s.Create(ctx, core.Expense{ID: "pre-set", Date: mustDate(t, "2024-06-01"), Title: "x", Amount: core.Money{Won: 1}}); err == nil {
		t.Fatal("expected error for pre-set id")
	}
	if _, err := s.Create(ctx, core.Expense{Date: mustDate(t, "2024-06-01"), Title: "", Amount: core.Money{Won: 1}}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if all, _ := s.ListAll(ctx); len(all) != 0 {
		t.Fatalf("failed creates must not persist, got %+v", all)
	}
}
