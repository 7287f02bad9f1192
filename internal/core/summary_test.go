package core

import (
	"testing"
	"time"
)

func exp(id, date, title string, won int64) Expense {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return Expense{ID: id, Date: d, Title: title, Amount: Money{Won: won}}
}

func ref(date string) time.Time {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	// Mid-day instant: window math must truncate to the calendar date.
	return t.Add(13 * time.Hour)
}

func ids(expenses []Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}

func TestFilterDaily(t *testing.T) {
	expenses := []Expense{
		exp("a", "2024-03-15", "lunch", 9000),
		exp("b", "2024-03-14", "coffee", 4500),
		exp("c", "2024-03-15", "dinner", 15000),
		exp("d", "2024-03-16", "snack", 2000),
	}
	got := FilterByTimeFrame(expenses, Daily, ref("2024-03-15"))
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("daily filter: got %v", ids(got))
	}
}

func TestFilterWeeklyISOWeek(t *testing.T) {
	// 2024-03-15 is a Friday; its ISO week runs Mon 03-11 .. Sun 03-17.
	expenses := []Expense{
		exp("sun-before", "2024-03-10", "out", 1),
		exp("mon", "2024-03-11", "in", 1),
		exp("fri", "2024-03-15", "in", 1),
		exp("sun", "2024-03-17", "in", 1),
		exp("mon-after", "2024-03-18", "out", 1),
	}
	got := FilterByTimeFrame(expenses, Weekly, ref("2024-03-15"))
	want := []string{"mon", "fri", "sun"}
	if len(got) != len(want) {
		t.Fatalf("weekly filter: got %v want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("weekly filter: got %v want %v", ids(got), want)
		}
	}
}

func TestFilterWeeklyOnMondayAndSunday(t *testing.T) {
	// The window must be stable across every reference day of the week.
	expenses := []Expense{
		exp("mon", "2024-03-11", "in", 1),
		exp("sun", "2024-03-17", "in", 1),
	}
	for _, day := range []string{"2024-03-11", "2024-03-17"} {
		got := FilterByTimeFrame(expenses, Weekly, ref(day))
		if len(got) != 2 {
			t.Fatalf("weekly filter at %s: got %v", day, ids(got))
		}
	}
}

func TestFilterMonthlyLeapYear(t *testing.T) {
	expenses := []Expense{
		exp("jan", "2024-01-31", "out", 1),
		exp("first", "2024-02-01", "in", 1),
		exp("leap", "2024-02-29", "in", 1),
		exp("mar", "2024-03-01", "out", 1),
	}
	got := FilterByTimeFrame(expenses, Monthly, ref("2024-02-20"))
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "leap" {
		t.Fatalf("monthly filter: got %v", ids(got))
	}
}

func TestFilterSkipsZeroDates(t *testing.T) {
	expenses := []Expense{
		{ID: "broken", Title: "x", Amount: Money{Won: 1}}, // zero date
		exp("ok", "2024-03-15", "lunch", 9000),
	}
	got := FilterByTimeFrame(expenses, Monthly, ref("2024-03-15"))
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("zero-date filter: got %v", ids(got))
	}
}

func TestGroupByDatePartitions(t *testing.T) {
	expenses := []Expense{
		exp("a", "2024-03-15", "lunch", 9000),
		exp("b", "2024-03-14", "coffee", 4500),
		exp("c", "2024-03-15", "dinner", 15000),
	}
	buckets := GroupByDate(expenses)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	// Exact partition: every expense in exactly one bucket.
	total := 0
	for _, b := range buckets {
		total += len(b.Expenses)
	}
	if total != len(expenses) {
		t.Fatalf("partition lost expenses: %d != %d", total, len(expenses))
	}
	b := buckets["2024-03-15"]
	if b.Total.Won != 24000 {
		t.Fatalf("bucket total: got %d want 24000", b.Total.Won)
	}
	// Insertion order within the bucket is preserved.
	if b.Expenses[0].ID != "a" || b.Expenses[1].ID != "c" {
		t.Fatalf("bucket order: got %v", ids(b.Expenses))
	}
	if _, ok := buckets["2024-03-16"]; ok {
		t.Fatalf("unexpected bucket for absent date")
	}
}

func TestSortedBucketsDescending(t *testing.T) {
	buckets := GroupByDate([]Expense{
		exp("a", "2024-03-14", "x", 1),
		exp("b", "2024-03-16", "y", 1),
		exp("c", "2024-03-15", "z", 1),
	})
	sorted := SortedBuckets(buckets)
	want := []string{"2024-03-16", "2024-03-15", "2024-03-14"}
	for i, date := range want {
		if sorted[i].Date.String() != date {
			t.Fatalf("bucket %d: got %s want %s", i, sorted[i].Date, date)
		}
	}
}

func TestChartSeriesYearBoundaryOrder(t *testing.T) {
	// "12/31" sorts after "1/1" lexicographically; the series must order
	// by the true calendar date instead.
	points := ToChartSeries([]Expense{
		exp("b", "2025-01-01", "new year", 500),
		exp("a", "2024-12-31", "party", 1000),
	})
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Label != "12/31" || points[1].Label != "1/1" {
		t.Fatalf("chart order: got [%s %s]", points[0].Label, points[1].Label)
	}
	if points[0].Amount.Won != 1000 || points[1].Amount.Won != 500 {
		t.Fatalf("chart amounts: got [%d %d]", points[0].Amount.Won, points[1].Amount.Won)
	}
}

func TestChartSeriesSumsPerDate(t *testing.T) {
	points := ToChartSeries([]Expense{
		exp("a", "2024-03-09", "x", 100),
		exp("b", "2024-03-10", "y", 200),
		exp("c", "2024-03-09", "z", 300),
	})
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// Single- vs double-digit day must still order numerically.
	if points[0].Label != "3/9" || points[1].Label != "3/10" {
		t.Fatalf("chart order: got [%s %s]", points[0].Label, points[1].Label)
	}
	if points[0].Amount.Won != 400 {
		t.Fatalf("summed point: got %d want 400", points[0].Amount.Won)
	}
}

func TestTotalAmount(t *testing.T) {
	if got := TotalAmount(nil); got.Won != 0 {
		t.Fatalf("empty total: got %d", got.Won)
	}
	got := TotalAmount([]Expense{
		exp("a", "2024-03-15", "x", 9000),
		exp("b", "2024-03-16", "y", 12000),
	})
	if got.Won != 21000 {
		t.Fatalf("total: got %d want 21000", got.Won)
	}
}

func TestSummarize(t *testing.T) {
	expenses := []Expense{
		exp("a", "2024-03-15", "lunch", 9000),
		exp("b", "2024-03-11", "coffee", 4500),
		exp("c", "2024-03-10", "outside window", 99999),
	}
	s := Summarize(expenses, Weekly, ref("2024-03-15"))
	if len(s.Filtered) != 2 {
		t.Fatalf("filtered: got %v", ids(s.Filtered))
	}
	if s.Total.Won != 13500 {
		t.Fatalf("total: got %d want 13500", s.Total.Won)
	}
	if len(s.Chart) != 2 || s.Chart[0].Label != "3/11" {
		t.Fatalf("chart: got %+v", s.Chart)
	}
	if len(s.Buckets) != 2 || s.Buckets[0].Date.String() != "2024-03-15" {
		t.Fatalf("buckets: got %+v", s.Buckets)
	}
	// Empty result is valid and distinct from a zero-value chart.
	empty := Summarize(nil, Daily, ref("2024-03-15"))
	if empty.Total.Won != 0 || len(empty.Chart) != 0 || len(empty.Filtered) != 0 {
		t.Fatalf("empty summary: got %+v", empty)
	}
}
