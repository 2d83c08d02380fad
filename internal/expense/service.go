package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	ArchiveActive(ctx context.Context, at time.Time) (int64, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	Date   time.Time
	Name   string
	Amount decimal.Decimal
}

type ListFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeArchived bool
}

func validate(date time.Time, name string, amount decimal.Decimal) error {
	switch {
	case date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	case name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case amount.IsZero():
		return fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	name := strings.TrimSpace(params.Name)
	if err := validate(params.Date, name, params.Amount); err != nil {
		return nil, err
	}

	e := &Expense{
		Date:   params.Date,
		Name:   name,
		Amount: params.Amount,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Update saves edits to an expense. Edited amounts may be zero.
func (s *Service) Update(ctx context.Context, e *Expense) error {
	e.Name = strings.TrimSpace(e.Name)

	if e.Date.IsZero() || e.Name == "" {
		return fmt.Errorf("%w: date and name are required", ErrInvalidInput)
	}

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// ArchiveActive soft-deletes every active expense for the new week.
func (s *Service) ArchiveActive(ctx context.Context) (int64, error) {
	n, err := s.repo.ArchiveActive(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("archive expenses: %w", err)
	}

	return n, nil
}
