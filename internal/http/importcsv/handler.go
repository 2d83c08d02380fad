package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/importer"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/preview", h.preview)
}

type dailyRowDTO struct {
	Date       string           `json:"date"`
	DoorDash   decimal.Decimal  `json:"doordash"`
	UberEats   decimal.Decimal  `json:"ubereats"`
	DiDi       decimal.Decimal  `json:"didi"`
	Coles      decimal.Decimal  `json:"coles"`
	ColesHours *decimal.Decimal `json:"coles_hours,omitempty"`
	Tips       decimal.Decimal  `json:"tips"`
}

type entryRowDTO struct {
	Date       string          `json:"date"`
	Source     string          `json:"source"`
	IncomeType string          `json:"income_type"`
	Amount     decimal.Decimal `json:"amount"`
}

type expenseRowDTO struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type previewResponse struct {
	Kind     earnings.Kind   `json:"kind"`
	Charset  string          `json:"charset"`
	Daily    []dailyRowDTO   `json:"daily,omitempty"`
	Entries  []entryRowDTO   `json:"entries,omitempty"`
	Expenses []expenseRowDTO `json:"expenses,omitempty"`
	Skipped  int             `json:"skipped"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	file, ok := uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(r.Context(), file)
	if err != nil {
		writeImportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	file, ok := uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	batch, err := h.importSvc.Preview(r.Context(), file)
	if err != nil {
		writeImportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPreviewResponse(batch)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}

	return file, true
}

func writeImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, earnings.ErrUnknownFormat),
		errors.Is(err, income.ErrInvalidInput),
		errors.Is(err, expense.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("import failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPreviewResponse(b *earnings.Batch) previewResponse {
	resp := previewResponse{Kind: b.Kind, Charset: string(b.Charset), Skipped: b.Skipped}

	for _, d := range b.Daily {
		resp.Daily = append(resp.Daily, dailyRowDTO{
			Date:       calendar.FormatDate(d.Date),
			DoorDash:   d.DoorDash,
			UberEats:   d.UberEats,
			DiDi:       d.DiDi,
			Coles:      d.Coles,
			ColesHours: d.ColesHours,
			Tips:       d.Tips,
		})
	}

	for _, e := range b.Entries {
		resp.Entries = append(resp.Entries, entryRowDTO{
			Date:       calendar.FormatDate(e.Date),
			Source:     e.Source,
			IncomeType: string(e.IncomeType),
			Amount:     e.Amount,
		})
	}

	for _, e := range b.Expenses {
		resp.Expenses = append(resp.Expenses, expenseRowDTO{
			Date:        calendar.FormatDate(e.Date),
			Description: e.Description,
			Amount:      e.Amount,
		})
	}

	return resp
}
