// Package calculator serves the stateless pay and tax calculators.
package calculator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/award"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
	"github.com/MrJamesThe3rd/gigzen/internal/shift"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type Handler struct {
	settings *settings.Service
	cal      *calendar.Calendar
}

func NewHandler(settings *settings.Service, cal *calendar.Calendar) *Handler {
	return &Handler{settings: settings, cal: cal}
}

func (h *Handler) ShiftRoutes(r chi.Router) {
	r.Post("/calculate", h.calculateShift)
	r.Get("/rates", h.rates)
}

func (h *Handler) TaxRoutes(r chi.Router) {
	r.Post("/weekly", h.weekly)
	r.Post("/progressive", h.progressive)
	r.Post("/set-aside", h.setAside)
	r.Post("/estimate", h.estimate)
}

type calculateShiftRequest struct {
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	AgeBracket    string `json:"age_bracket"`
	PublicHoliday bool   `json:"public_holiday"`
}

type segmentResponse struct {
	Label    string          `json:"label"`
	Hours    decimal.Decimal `json:"hours"`
	Rate     decimal.Decimal `json:"rate"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type shiftResponse struct {
	Date             string            `json:"date"`
	DayType          shift.DayType     `json:"day_type"`
	Segments         []segmentResponse `json:"segments"`
	TotalShiftHours  decimal.Decimal   `json:"total_shift_hours"`
	UnpaidBreakHours decimal.Decimal   `json:"unpaid_break_hours"`
	PaidHours        decimal.Decimal   `json:"paid_hours"`
	GrossPay         decimal.Decimal   `json:"gross_pay"`
	EstimatedTax     decimal.Decimal   `json:"estimated_tax"`
	EstimatedNetPay  decimal.Decimal   `json:"estimated_net_pay"`
	Summary          string            `json:"summary"`
}

func (h *Handler) calculateShift(w http.ResponseWriter, r *http.Request) {
	var req calculateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := h.cal.Today()
	if req.Date != "" {
		var err error
		if date, err = h.cal.ParseDate(req.Date); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	start, err := shift.ParseTimeOfDay(req.Start)
	if err != nil {
		http.Error(w, "start: "+err.Error(), http.StatusBadRequest)
		return
	}

	end, err := shift.ParseTimeOfDay(req.End)
	if err != nil {
		http.Error(w, "end: "+err.Error(), http.StatusBadRequest)
		return
	}

	bracket, err := award.ParseAgeBracket(req.AgeBracket)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rates, err := award.Rates(bracket)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := shift.Compute(shift.Input{
		Date:          date,
		Start:         start,
		End:           end,
		AgeBracket:    bracket,
		PublicHoliday: req.PublicHoliday,
	}, rates)
	if err != nil {
		if errors.Is(err, shift.ErrInvalidRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("shift calculation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := shiftResponse{
		Date:             calendar.FormatDate(res.Date),
		DayType:          res.DayType,
		Segments:         make([]segmentResponse, len(res.Segments)),
		TotalShiftHours:  res.TotalShiftHours,
		UnpaidBreakHours: res.UnpaidBreakHours,
		PaidHours:        res.PaidHours,
		GrossPay:         res.GrossPay.Round(2),
		EstimatedTax:     res.EstimatedTax,
		EstimatedNetPay:  res.EstimatedNetPay.Round(2),
		Summary:          res.Summary(),
	}

	for i, s := range res.Segments {
		resp.Segments[i] = segmentResponse{Label: s.Label, Hours: s.Hours, Rate: s.Rate, Subtotal: s.Subtotal.Round(2)}
	}

	writeJSON(w, resp)
}

type rateSetResponse struct {
	AgeBracket    award.AgeBracket `json:"age_bracket"`
	Label         string           `json:"label"`
	Base          decimal.Decimal  `json:"base"`
	Evening       decimal.Decimal  `json:"evening"`
	Saturday      decimal.Decimal  `json:"saturday"`
	Sunday        decimal.Decimal  `json:"sunday"`
	PublicHoliday decimal.Decimal  `json:"public_holiday"`
}

func (h *Handler) rates(w http.ResponseWriter, _ *http.Request) {
	brackets := award.Brackets()
	resp := make([]rateSetResponse, 0, len(brackets))

	for _, b := range brackets {
		rs, err := award.Rates(b)
		if err != nil {
			continue
		}

		resp = append(resp, rateSetResponse{
			AgeBracket:    b,
			Label:         b.Label(),
			Base:          rs.Base,
			Evening:       rs.Evening,
			Saturday:      rs.Saturday,
			Sunday:        rs.Sunday,
			PublicHoliday: rs.PublicHoliday,
		})
	}

	writeJSON(w, resp)
}

type weeklyRequest struct {
	Gross amount.Lenient `json:"gross"`
}

type weeklyResponse struct {
	Gross  decimal.Decimal `json:"gross"`
	Tax    decimal.Decimal `json:"tax"`
	NetPay decimal.Decimal `json:"net_pay"`
}

func (h *Handler) weekly(w http.ResponseWriter, r *http.Request) {
	var req weeklyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := tax.Weekly(req.Gross.Decimal)

	writeJSON(w, weeklyResponse{Gross: res.Gross, Tax: res.Tax, NetPay: res.NetPay})
}

type progressiveRequest struct {
	AnnualIncome amount.Lenient `json:"annual_income"`
}

type progressiveResponse struct {
	IncomeTax     decimal.Decimal `json:"income_tax"`
	MedicareLevy  decimal.Decimal `json:"medicare_levy"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

func (h *Handler) progressive(w http.ResponseWriter, r *http.Request) {
	var req progressiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := tax.Progressive(req.AnnualIncome.Decimal)

	writeJSON(w, progressiveResponse{
		IncomeTax:     res.IncomeTax,
		MedicareLevy:  res.MedicareLevy,
		TotalTax:      res.TotalTax,
		EffectiveRate: res.EffectiveRate,
	})
}

type setAsideRequest struct {
	Amount     amount.Lenient  `json:"amount"`
	IncomeType string          `json:"income_type"`
	Rate       *amount.Lenient `json:"rate,omitempty"`
}

type setAsideResponse struct {
	IncomeType tax.IncomeType  `json:"income_type"`
	Label      string          `json:"label"`
	SetAside   decimal.Decimal `json:"set_aside"`
}

func (h *Handler) setAside(w http.ResponseWriter, r *http.Request) {
	var req setAsideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rate, ok := h.rate(w, r, req.Rate)
	if !ok {
		return
	}

	t := tax.ParseIncomeType(req.IncomeType)

	writeJSON(w, setAsideResponse{
		IncomeType: t,
		Label:      t.Label(),
		SetAside:   tax.EstimateSetAside(req.Amount.Decimal, t, rate),
	})
}

type estimateItem struct {
	Amount     amount.Lenient `json:"amount"`
	IncomeType string         `json:"income_type"`
}

func (e estimateItem) EstimateAmount() decimal.Decimal { return e.Amount.Decimal }

func (e estimateItem) EstimateType() tax.IncomeType { return tax.ParseIncomeType(e.IncomeType) }

type estimateRequest struct {
	Entries []estimateItem  `json:"entries"`
	Rate    *amount.Lenient `json:"rate,omitempty"`
}

type estimateResponse struct {
	SalaryWagesTax  decimal.Decimal `json:"salary_wages_tax"`
	SelfEmployedTax decimal.Decimal `json:"self_employed_tax"`
	TotalTax        decimal.Decimal `json:"total_tax"`
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rate, ok := h.rate(w, r, req.Rate)
	if !ok {
		return
	}

	res := tax.EstimateTotal(req.Entries, rate)

	writeJSON(w, estimateResponse{
		SalaryWagesTax:  res.SalaryWagesTax,
		SelfEmployedTax: res.SelfEmployedTax,
		TotalTax:        res.TotalTax,
	})
}

// rate is the submitted self-employed rate, or the saved one when absent.
func (h *Handler) rate(w http.ResponseWriter, r *http.Request, submitted *amount.Lenient) (decimal.Decimal, bool) {
	if submitted != nil {
		return submitted.Decimal, true
	}

	s, err := h.settings.Get(r.Context())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return decimal.Zero, false
	}

	return s.TaxRate, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
