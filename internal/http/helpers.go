package http

import (
	"fmt"
	"net/http"
	"strings"

	"sobi/internal/core"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// expenseFromForm builds an expense from the date/title/amount form fields.
// The request form must already be parsed.
func expenseFromForm(r *http.Request) (core.Expense, error) {
	date, err := core.ParseDate(strings.TrimSpace(r.Form.Get("date")))
	if err != nil {
		return core.Expense{}, fmt.Errorf("invalid date: %w", err)
	}

	won, err := core.ParseWon(r.Form.Get("amount"))
	if err != nil {
		return core.Expense{}, fmt.Errorf("invalid amount: %w", err)
	}

	e := core.Expense{
		Date:   date,
		Title:  sanitizeInput(r.Form.Get("title")),
		Amount: core.Money{Won: won},
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}
