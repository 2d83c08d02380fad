package sources

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/sources"
)

type Handler struct {
	svc *sources.Service
}

func NewHandler(svc *sources.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/suggest", h.suggest)
	r.Get("/common", h.common)
	r.Post("/", h.learn)
}

type aliasResponse struct {
	ID        uuid.UUID `json:"id"`
	Pattern   string    `json:"pattern"`
	Canonical string    `json:"canonical"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list source aliases", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]aliasResponse, len(aliases))
	for i, a := range aliases {
		resp[i] = aliasResponse{ID: a.ID, Pattern: a.Pattern, Canonical: a.Canonical, CreatedAt: a.CreatedAt}
	}

	writeJSON(w, resp)
}

type suggestResponse struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw")
	if raw == "" {
		http.Error(w, "raw query parameter is required", http.StatusBadRequest)
		return
	}

	canonical, err := h.svc.Normalize(r.Context(), raw)
	if err != nil {
		slog.Error("failed to match source", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, suggestResponse{Raw: raw, Canonical: canonical})
}

func (h *Handler) common(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, income.CommonSources())
}

type learnRequest struct {
	Pattern   string `json:"pattern"`
	Canonical string `json:"canonical"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.Pattern, req.Canonical); err != nil {
		if errors.Is(err, sources.ErrInvalidAlias) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to learn source alias", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
