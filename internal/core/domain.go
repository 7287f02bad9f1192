package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	Daily   TimeFrame = "daily"
	Weekly  TimeFrame = "weekly"
	Monthly TimeFrame = "monthly"
)

// DateLayout is the canonical string encoding of a calendar date.
const DateLayout = "2006-01-02"

type (
	// TimeFrame selects the aggregation window relative to a reference instant.
	TimeFrame string

	Date struct {
		time.Time
	}

	Money struct {
		Won int64
	}

	// Expense is a single dated spending record. ID is assigned by the
	// store on creation and is immutable afterwards.
	Expense struct {
		ID     string
		Date   Date
		Title  string
		Amount Money
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyTitle       = errors.New("empty title")
	ErrInvalidTimeFrame = errors.New("invalid time frame")
)

// ParseTimeFrame parses a time frame string as used in query parameters.
func ParseTimeFrame(s string) (TimeFrame, error) {
	tf := TimeFrame(strings.ToLower(strings.TrimSpace(s)))
	if !tf.IsValid() {
		return "", ErrInvalidTimeFrame
	}
	return tf, nil
}

// IsValid returns true if the time frame is one of daily, weekly, monthly.
func (tf TimeFrame) IsValid() bool {
	switch tf {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the canonical YYYY-MM-DD encoding.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// String returns the canonical YYYY-MM-DD encoding. It is the grouping key
// used by the aggregation functions.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Label returns the short chart label, e.g. "3/15" for March 15th.
func (d Date) Label() string {
	return strconv.Itoa(int(d.Time.Month())) + "/" + strconv.Itoa(d.Time.Day())
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Won < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(e.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
