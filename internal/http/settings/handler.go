package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

type settingsResponse struct {
	TaxRate      decimal.Decimal `json:"tax_rate"`
	WeeklyTarget decimal.Decimal `json:"weekly_target"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(s settings.Settings) settingsResponse {
	resp := settingsResponse{TaxRate: s.TaxRate, WeeklyTarget: s.WeeklyTarget}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = new(s.UpdatedAt)
	}

	return resp
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toResponse(s))
}

type saveSettingsRequest struct {
	TaxRate      *amount.Lenient `json:"tax_rate,omitempty"`
	WeeklyTarget *amount.Lenient `json:"weekly_target,omitempty"`
}

// save applies the submitted fields over the current settings.
func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req saveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	current, err := h.svc.Get(r.Context())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.TaxRate != nil {
		current.TaxRate = req.TaxRate.Decimal
	}

	if req.WeeklyTarget != nil {
		current.WeeklyTarget = req.WeeklyTarget.Decimal
	}

	saved, err := h.svc.Save(r.Context(), current)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to save settings", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, toResponse(saved))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
