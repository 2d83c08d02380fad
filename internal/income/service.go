package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	UpdateRecord(ctx context.Context, r *Record) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	ListRecords(ctx context.Context, filter ListFilter) ([]*Record, error)

	// BeginAdd serialises writers for one calendar date.
	BeginAdd(ctx context.Context, date time.Time) (AddTx, error)

	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// ArchiveActive stamps every active record and entry with at.
	ArchiveActive(ctx context.Context, at time.Time) (ArchiveResult, error)
}

type AddTx interface {
	FindActiveByDate(ctx context.Context, date time.Time) (*Record, error)
	CreateRecord(ctx context.Context, r *Record) error
	UpdateRecord(ctx context.Context, r *Record) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the archive timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type AddParams struct {
	Date       time.Time
	DoorDash   decimal.Decimal
	UberEats   decimal.Decimal
	DiDi       decimal.Decimal
	Coles      decimal.Decimal
	ColesHours *decimal.Decimal
	Tips       decimal.Decimal
	SourceName string
	IncomeType tax.IncomeType
}

func (p AddParams) record() Record {
	return Record{
		Date:       p.Date,
		DoorDash:   p.DoorDash,
		UberEats:   p.UberEats,
		DiDi:       p.DiDi,
		Coles:      p.Coles,
		ColesHours: p.ColesHours,
		Tips:       p.Tips,
		SourceName: strings.TrimSpace(p.SourceName),
		IncomeType: p.IncomeType,
	}
}

type ListFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeArchived bool
}

type AddResult struct {
	Record *Record
	Merged bool
}

type ArchiveResult struct {
	Records int64
	Entries int64
}

// Add records a day's takings, merging into the active record for the same
// date when one exists.
func (s *Service) Add(ctx context.Context, params AddParams) (*AddResult, error) {
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	incoming := params.record()

	atx, err := s.repo.BeginAdd(ctx, params.Date)
	if err != nil {
		return nil, fmt.Errorf("begin add: %w", err)
	}
	defer atx.Rollback()

	existing, err := atx.FindActiveByDate(ctx, params.Date)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("find record for date: %w", err)
	}

	result := &AddResult{}

	if existing != nil {
		merged := Merge(*existing, incoming)
		if err := atx.UpdateRecord(ctx, &merged); err != nil {
			return nil, fmt.Errorf("update record: %w", err)
		}

		result.Record = &merged
		result.Merged = true
	} else {
		if err := atx.CreateRecord(ctx, &incoming); err != nil {
			return nil, fmt.Errorf("create record: %w", err)
		}

		result.Record = &incoming
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add: %w", err)
	}

	return result, nil
}

// AddBatch runs Add for each row in order, so rows for the same date merge.
func (s *Service) AddBatch(ctx context.Context, params []AddParams) ([]*AddResult, error) {
	results := make([]*AddResult, 0, len(params))

	for i, p := range params {
		res, err := s.Add(ctx, p)
		if err != nil {
			return results, fmt.Errorf("row %d: %w", i+1, err)
		}

		results = append(results, res)
	}

	return results, nil
}

// Update replaces the editable fields of a record without merging.
func (s *Service) Update(ctx context.Context, r *Record) error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return s.repo.UpdateRecord(ctx, r)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, id)
}

// Delete removes a record permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	return s.repo.ListRecords(ctx, filter)
}

type EntryParams struct {
	Date       time.Time
	SourceName string
	IncomeType tax.IncomeType
	Amount     decimal.Decimal
}

// AddEntry stores an income entry. Entries never merge.
func (s *Service) AddEntry(ctx context.Context, params EntryParams) (*Entry, error) {
	source := strings.TrimSpace(params.SourceName)

	switch {
	case params.Date.IsZero():
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	case source == "":
		return nil, fmt.Errorf("%w: source is required", ErrInvalidInput)
	case params.Amount.IsZero():
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	incomeType := params.IncomeType
	if !incomeType.Valid() {
		incomeType = tax.TypeGig
	}

	e := &Entry{
		Date:       params.Date,
		SourceName: source,
		IncomeType: incomeType,
		Amount:     params.Amount,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

// ArchiveActive starts a new week: all active records and entries are
// soft-deleted and drop out of every summary.
func (s *Service) ArchiveActive(ctx context.Context) (ArchiveResult, error) {
	res, err := s.repo.ArchiveActive(ctx, s.now())
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("archive income: %w", err)
	}

	return res, nil
}
