package core

import (
	"sort"
	"time"
)

// DateBucket holds all expenses sharing one calendar date plus their sum.
// Expenses keep the order in which they arrived.
type DateBucket struct {
	Date     Date
	Expenses []Expense
	Total    Money
}

// ChartPoint is one bar of the summary chart: a short date label and the
// summed amount for that date. Date carries the real calendar date so
// ordering never depends on the label.
type ChartPoint struct {
	Date   Date
	Label  string
	Amount Money
}

// Summary is the full render-ready aggregation payload for one time frame.
type Summary struct {
	TimeFrame TimeFrame
	Filtered  []Expense
	Total     Money
	Chart     []ChartPoint
	Buckets   []DateBucket
}

// Window is an inclusive calendar-date range.
type Window struct {
	Start Date
	End   Date
}

// WindowFor computes the aggregation window for a time frame around ref.
// Weekly windows run Monday through Sunday (ISO week); monthly windows span
// the first through last day of ref's month.
func WindowFor(frame TimeFrame, ref time.Time) Window {
	day := DateOf(ref)
	switch frame {
	case Weekly:
		// time.Weekday has Sunday == 0; shift so Monday == 0.
		offset := (int(day.Weekday()) + 6) % 7
		start := Date{Time: day.AddDate(0, 0, -offset)}
		return Window{Start: start, End: Date{Time: start.AddDate(0, 0, 6)}}
	case Monthly:
		start := NewDate(day.Year(), day.Month(), 1)
		return Window{Start: start, End: Date{Time: start.AddDate(0, 1, -1)}}
	default:
		return Window{Start: day, End: day}
	}
}

// Contains reports whether d falls inside the window, inclusive on both ends.
// Zero dates (unparseable upstream) match no window.
func (w Window) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(w.Start.Time) && !d.After(w.End.Time)
}

// FilterByTimeFrame returns the expenses whose date falls inside the frame
// window around ref. The reference instant is an explicit parameter so the
// function stays pure and testable. Input order is preserved.
func FilterByTimeFrame(expenses []Expense, frame TimeFrame, ref time.Time) []Expense {
	w := WindowFor(frame, ref)
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDate partitions expenses into buckets keyed by the canonical date
// string. Every expense lands in exactly one bucket and keeps its input
// order within the bucket.
func GroupByDate(expenses []Expense) map[string]DateBucket {
	buckets := make(map[string]DateBucket)
	for _, e := range expenses {
		key := e.Date.String()
		b := buckets[key]
		if len(b.Expenses) == 0 {
			b.Date = e.Date
		}
		b.Expenses = append(b.Expenses, e)
		b.Total.Won += e.Amount.Won
		buckets[key] = b
	}
	return buckets
}

// SortedBuckets orders buckets most recent date first, for list display.
func SortedBuckets(buckets map[string]DateBucket) []DateBucket {
	out := make([]DateBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// ToChartSeries emits one point per distinct date present in the filtered
// set, summed per date and sorted ascending by the true calendar date.
// Dates with no expenses are omitted, not zero-filled.
func ToChartSeries(filtered []Expense) []ChartPoint {
	buckets := GroupByDate(filtered)
	points := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, ChartPoint{Date: b.Date, Label: b.Date.Label(), Amount: b.Total})
	}
	// Sort on the real date, not the label: "12/31" vs "1/1" would
	// misorder across a year boundary, and "9" vs "10" lexicographically.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date.Time)
	})
	return points
}

// TotalAmount sums the amounts of a collection; zero for an empty one.
func TotalAmount(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total.Won += e.Amount.Won
	}
	return total
}

// Summarize runs the whole aggregation pipeline for one time frame: filter
// into the window around ref, total, chart series, and date-descending
// buckets of the filtered set.
func Summarize(expenses []Expense, frame TimeFrame, ref time.Time) Summary {
	filtered := FilterByTimeFrame(expenses, frame, ref)
	return Summary{
		TimeFrame: frame,
		Filtered:  filtered,
		Total:     TotalAmount(filtered),
		Chart:     ToChartSeries(filtered),
		Buckets:   SortedBuckets(GroupByDate(filtered)),
	}
}
