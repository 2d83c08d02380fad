package overview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/report"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

type Handler struct {
	svc *overview.Service
}

func NewHandler(svc *overview.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the read-only views over the active ledger.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/records/timeline", h.timeline)
	r.Get("/report.pdf", h.report)
}

// window reads ?window=all|week|today|month and an optional ?date=YYYY-MM-DD.
func (h *Handler) window(r *http.Request) (summary.Window, error) {
	q := r.URL.Query()

	period, err := overview.ParsePeriod(q.Get("window"))
	if err != nil {
		return summary.Window{}, err
	}

	var date time.Time
	if s := q.Get("date"); s != "" {
		if date, err = h.svc.Calendar().ParseDate(s); err != nil {
			return summary.Window{}, err
		}
	}

	return h.svc.Window(period, date), nil
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	win, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Summary(r.Context(), win)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, toSummaryResponse(s))
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	win, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.svc.Timeline(r.Context(), win)
	if err != nil {
		internalError(w, err)
		return
	}

	resp := make([]rowResponse, len(rows))
	for i, row := range rows {
		resp[i] = toRowResponse(row)
	}

	writeJSON(w, resp)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	win, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Report(r.Context(), win)
	if err != nil {
		internalError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, rep); err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.FileName()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

func internalError(w http.ResponseWriter, err error) {
	if errors.Is(err, overview.ErrUnknownPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Error("overview request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
