package income

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type Handler struct {
	svc *income.Service
	cal *calendar.Calendar
}

func NewHandler(svc *income.Service, cal *calendar.Calendar) *Handler {
	return &Handler{svc: svc, cal: cal}
}

// Routes mounts the daily income records.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.add)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// EntryRoutes mounts the per-source income entries.
func (h *Handler) EntryRoutes(r chi.Router) {
	r.Post("/", h.addEntry)
	r.Get("/", h.listEntries)
	r.Delete("/{id}", h.deleteEntry)
}

type addIncomeRequest struct {
	Date       string         `json:"date"`
	DoorDash   amount.Lenient `json:"doordash"`
	UberEats   amount.Lenient `json:"ubereats"`
	DiDi       amount.Lenient `json:"didi"`
	Coles      amount.Lenient `json:"coles"`
	ColesHours amount.Lenient `json:"coles_hours"`
	Tips       amount.Lenient `json:"tips"`
	SourceName string         `json:"source_name"`
	IncomeType string         `json:"income_type"`
}

type addIncomeResponse struct {
	Record recordResponse `json:"record"`
	Merged bool           `json:"merged"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := h.date(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := income.AddParams{
		Date:       date,
		DoorDash:   req.DoorDash.Decimal,
		UberEats:   req.UberEats.Decimal,
		DiDi:       req.DiDi.Decimal,
		Coles:      req.Coles.Decimal,
		ColesHours: req.ColesHours.Ptr(),
		Tips:       req.Tips.Decimal,
		SourceName: req.SourceName,
	}

	if req.IncomeType != "" {
		params.IncomeType = tax.ParseIncomeType(req.IncomeType)
	}

	res, err := h.svc.Add(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if res.Merged {
		status = http.StatusOK
	}

	writeJSON(w, status, addIncomeResponse{Record: toRecordResponse(res.Record), Merged: res.Merged})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := h.listFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]recordResponse, len(records))
	for i, rec := range records {
		resp[i] = toRecordResponse(rec)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

type updateIncomeRequest struct {
	Date       *string         `json:"date,omitempty"`
	DoorDash   *amount.Lenient `json:"doordash,omitempty"`
	UberEats   *amount.Lenient `json:"ubereats,omitempty"`
	DiDi       *amount.Lenient `json:"didi,omitempty"`
	Coles      *amount.Lenient `json:"coles,omitempty"`
	ColesHours *amount.Lenient `json:"coles_hours,omitempty"`
	Tips       *amount.Lenient `json:"tips,omitempty"`
	SourceName *string         `json:"source_name,omitempty"`
	IncomeType *string         `json:"income_type,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Date != nil {
		date, err := h.cal.ParseDate(*req.Date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec.Date = date
	}

	if req.DoorDash != nil {
		rec.DoorDash = req.DoorDash.Decimal
	}

	if req.UberEats != nil {
		rec.UberEats = req.UberEats.Decimal
	}

	if req.DiDi != nil {
		rec.DiDi = req.DiDi.Decimal
	}

	if req.Coles != nil {
		rec.Coles = req.Coles.Decimal
	}

	if req.ColesHours != nil {
		rec.ColesHours = req.ColesHours.Ptr()
	}

	if req.Tips != nil {
		rec.Tips = req.Tips.Decimal
	}

	if req.SourceName != nil {
		rec.SourceName = *req.SourceName
	}

	if req.IncomeType != nil {
		rec.IncomeType = tax.ParseIncomeType(*req.IncomeType)
	}

	if err := h.svc.Update(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addEntryRequest struct {
	Date       string         `json:"date"`
	SourceName string         `json:"source_name"`
	IncomeType string         `json:"income_type"`
	Amount     amount.Lenient `json:"amount"`
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := h.date(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := income.EntryParams{
		Date:       date,
		SourceName: req.SourceName,
		Amount:     req.Amount.Decimal,
	}

	if req.IncomeType != "" {
		params.IncomeType = tax.ParseIncomeType(req.IncomeType)
	}

	entry, err := h.svc.AddEntry(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := h.listFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// date parses a submitted date, defaulting to today in the app timezone.
func (h *Handler) date(s string) (time.Time, error) {
	if s == "" {
		return h.cal.Today(), nil
	}

	return h.cal.ParseDate(s)
}

func (h *Handler) listFilter(r *http.Request) (income.ListFilter, error) {
	q := r.URL.Query()
	filter := income.ListFilter{IncludeArchived: q.Get("include_archived") == "true"}

	if s := q.Get("start_date"); s != "" {
		t, err := h.cal.ParseDate(s)
		if err != nil {
			return filter, err
		}

		filter.StartDate = new(t)
	}

	if s := q.Get("end_date"); s != "" {
		t, err := h.cal.ParseDate(s)
		if err != nil {
			return filter, err
		}

		filter.EndDate = new(t)
	}

	return filter, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, income.ErrNotFound):
		http.Error(w, "income not found", http.StatusNotFound)
	case errors.Is(err, income.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("income request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
