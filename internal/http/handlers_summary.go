package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sobi/internal/core"
	applog "sobi/internal/log"
)

// handleSummary renders the aggregation partial for one time frame: total
// spending plus a bar chart with one bar per active date.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	frame := core.Daily
	if v := strings.TrimSpace(r.URL.Query().Get("frame")); v != "" {
		parsed, err := core.ParseTimeFrame(v)
		if err != nil {
			slog.WarnContext(r.Context(), "Invalid time frame parameter", applog.FieldTimeFrame, v)
			UnprocessableEntityError("invalid time frame: " + v).Write(w)
			return
		}
		frame = parsed
	}

	expenses, err := s.getExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses error",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpSummary,
			applog.FieldTimeFrame, string(frame))
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Failed to load summary</div></section>`))
		return
	}

	summary := core.Summarize(expenses, frame, time.Now())

	// Scale bars against the largest date sum, rounded percent.
	var maxWon int64
	for _, p := range summary.Chart {
		if p.Amount.Won > maxWon {
			maxWon = p.Amount.Won
		}
	}
	type bar struct {
		Label  string
		Amount string
		Width  int
	}
	data := struct {
		Frame   string
		IsDaily bool
		IsWeek  bool
		IsMonth bool
		Total   string
		Bars    []bar
		Empty   bool
	}{
		Frame:   string(frame),
		IsDaily: frame == core.Daily,
		IsWeek:  frame == core.Weekly,
		IsMonth: frame == core.Monthly,
		Total:   summary.Total.Format(),
		Empty:   len(summary.Chart) == 0,
	}
	for _, p := range summary.Chart {
		width := 0
		if maxWon > 0 && p.Amount.Won > 0 {
			width = int((p.Amount.Won*100 + maxWon/2) / maxWon)
			if width > 0 && width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		data.Bars = append(data.Bars, bar{Label: p.Label, Amount: p.Amount.Format(), Width: width})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Total: ` + data.Total + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpRender,
			"template", "summary.html",
			applog.FieldTimeFrame, string(frame))
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Failed to render summary</div></section>`))
	}
}
