package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type recordResponse struct {
	ID         uuid.UUID        `json:"id"`
	Date       string           `json:"date"`
	DoorDash   decimal.Decimal  `json:"doordash"`
	UberEats   decimal.Decimal  `json:"ubereats"`
	DiDi       decimal.Decimal  `json:"didi"`
	Coles      decimal.Decimal  `json:"coles"`
	ColesHours *decimal.Decimal `json:"coles_hours,omitempty"`
	Tips       decimal.Decimal  `json:"tips"`
	Total      decimal.Decimal  `json:"total"`
	SourceName string           `json:"source_name,omitempty"`
	IncomeType tax.IncomeType   `json:"income_type,omitempty"`
	ArchivedAt *time.Time       `json:"archived_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
}

func toRecordResponse(r *income.Record) recordResponse {
	return recordResponse{
		ID:         r.ID,
		Date:       calendar.FormatDate(r.Date),
		DoorDash:   r.DoorDash,
		UberEats:   r.UberEats,
		DiDi:       r.DiDi,
		Coles:      r.Coles,
		ColesHours: r.ColesHours,
		Tips:       r.Tips,
		Total:      r.Total(),
		SourceName: r.SourceName,
		IncomeType: r.IncomeType,
		ArchivedAt: r.ArchivedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type entryResponse struct {
	ID         uuid.UUID       `json:"id"`
	Date       string          `json:"date"`
	SourceName string          `json:"source_name"`
	IncomeType tax.IncomeType  `json:"income_type"`
	TypeLabel  string          `json:"income_type_label"`
	Amount     decimal.Decimal `json:"amount"`
	ArchivedAt *time.Time      `json:"archived_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toEntryResponse(e *income.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		Date:       calendar.FormatDate(e.Date),
		SourceName: e.SourceName,
		IncomeType: e.IncomeType,
		TypeLabel:  e.IncomeType.Label(),
		Amount:     e.Amount,
		ArchivedAt: e.ArchivedAt,
		CreatedAt:  e.CreatedAt,
	}
}
