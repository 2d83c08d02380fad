package week

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/gigzen/internal/jobs"
)

type Handler struct {
	reset *jobs.WeeklyReset
}

func NewHandler(reset *jobs.WeeklyReset) *Handler {
	return &Handler{reset: reset}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/reset", h.resetWeek)
}

// resetWeek archives the active week on demand, the same job the scheduler runs.
func (h *Handler) resetWeek(w http.ResponseWriter, r *http.Request) {
	res, err := h.reset.RunNow(r.Context())
	if err != nil {
		slog.Error("weekly reset failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
