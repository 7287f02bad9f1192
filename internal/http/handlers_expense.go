package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"sobi/internal/core"
	applog "sobi/internal/log"
	"sobi/internal/store"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	exp, err := expenseFromForm(r)
	if err != nil {
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}

	created, err := s.store.Create(r.Context(), exp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Expense create error",
			applog.FieldError, err,
			applog.FieldTitle, exp.Title,
			applog.FieldAmountWon, exp.Amount.Won)
		InternalServerError("Failed to save expense").
			TriggerErrorNotification("Failed to save expense").
			Write(w)
		return
	}
	s.invalidateExpenses()

	slog.InfoContext(r.Context(), "Expense created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldExpenseID, created.ID,
		applog.FieldDate, created.Date.String(),
		applog.FieldAmountWon, created.Amount.Won)

	NewHTMXResponse().
		TriggerExpenseCreated(created.ID).
		TriggerFormReset().
		TriggerSuccessNotification("Expense saved").
		BodyHTML(`<div class="success">Saved: ` + template.HTMLEscapeString(created.Title) +
			` ` + template.HTMLEscapeString(created.Amount.Format()) + `</div>`).
		Write(w)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		UnprocessableEntityError("missing expense id").Write(w)
		return
	}
	exp, err := expenseFromForm(r)
	if err != nil {
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}
	exp.ID = id

	updated, err := s.store.Update(r.Context(), exp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFoundError("Expense not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Expense update error",
			applog.FieldError, err,
			applog.FieldExpenseID, id)
		InternalServerError("Failed to update expense").
			TriggerErrorNotification("Failed to update expense").
			Write(w)
		return
	}
	s.invalidateExpenses()

	slog.InfoContext(r.Context(), "Expense updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldExpenseID, updated.ID,
		applog.FieldDate, updated.Date.String(),
		applog.FieldAmountWon, updated.Amount.Won)

	NewHTMXResponse().
		TriggerExpenseUpdated(updated.ID).
		TriggerSuccessNotification("Expense updated").
		BodyHTML(`<div class="success">Updated: ` + template.HTMLEscapeString(updated.Title) + `</div>`).
		Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		MethodNotAllowedError("POST, DELETE").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		id = strings.TrimSpace(r.URL.Query().Get("id"))
	}
	if id == "" {
		UnprocessableEntityError("missing expense id").Write(w)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFoundError("Expense not found").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Expense delete error",
			applog.FieldError, err,
			applog.FieldExpenseID, id)
		InternalServerError("Failed to delete expense").
			TriggerErrorNotification("Failed to delete expense").
			Write(w)
		return
	}
	s.invalidateExpenses()

	slog.InfoContext(r.Context(), "Expense deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldExpenseID, id)

	NewHTMXResponse().
		TriggerExpenseDeleted(id).
		TriggerSuccessNotification("Expense deleted").
		Write(w)
}

// handleExpenseList renders the full history partial, grouped per date with
// the most recent date first.
func (s *Server) handleExpenseList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	expenses, err := s.getExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses error",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpList)
		_, _ = w.Write([]byte(`<section id="expense-list" class="expense-list"><div class="placeholder">Failed to load expenses</div></section>`))
		return
	}

	type item struct {
		ID     string
		Date   string
		Title  string
		Amount string
		Won    int64
	}
	type group struct {
		Date  string
		Total string
		Items []item
	}
	data := struct {
		Groups []group
		Empty  bool
	}{Empty: len(expenses) == 0}

	for _, b := range core.SortedBuckets(core.GroupByDate(expenses)) {
		g := group{Date: b.Date.String(), Total: b.Total.Format()}
		for _, e := range b.Expenses {
			g.Items = append(g.Items, item{
				ID:     e.ID,
				Date:   e.Date.String(),
				Title:  e.Title,
				Amount: e.Amount.Format(),
				Won:    e.Amount.Won,
			})
		}
		data.Groups = append(data.Groups, g)
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="expense-list" class="expense-list"><div class="placeholder">Templates not loaded</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "expense_list.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpRender,
			"template", "expense_list.html")
		_, _ = w.Write([]byte(`<section id="expense-list" class="expense-list"><div class="placeholder">Failed to render expenses</div></section>`))
	}
}
