package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("expense not found")
	ErrInvalidInput = errors.New("invalid expense")
)

// Expense is a single outgoing. Expenses are never merged.
type Expense struct {
	ID         uuid.UUID
	Date       time.Time
	Name       string
	Amount     decimal.Decimal
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (e *Expense) Archived() bool { return e.ArchivedAt != nil }
