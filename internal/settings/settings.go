// Package settings holds the user's tax rate and weekly income target.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("settings not found")
	ErrInvalidInput = errors.New("invalid settings")
)

var hundred = decimal.NewFromInt(100)

type Settings struct {
	// TaxRate is the percentage set aside from self-employed income.
	TaxRate      decimal.Decimal
	WeeklyTarget decimal.Decimal
	UpdatedAt    time.Time
}

func (s Settings) Validate() error {
	if s.TaxRate.IsNegative() || s.TaxRate.GreaterThan(hundred) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", ErrInvalidInput)
	}

	if s.WeeklyTarget.IsNegative() {
		return fmt.Errorf("%w: weekly target cannot be negative", ErrInvalidInput)
	}

	return nil
}

//go:generate mockgen -source=settings.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error
}

type Service struct {
	repo     Repository
	defaults Settings
}

// NewService returns a service that reports defaults until settings are saved.
func NewService(repo Repository, defaults Settings) *Service {
	return &Service{repo: repo, defaults: defaults}
}

func (s *Service) Get(ctx context.Context) (Settings, error) {
	stored, err := s.repo.GetSettings(ctx)
	if errors.Is(err, ErrNotFound) {
		return s.defaults, nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	return *stored, nil
}

func (s *Service) Save(ctx context.Context, next Settings) (Settings, error) {
	if err := next.Validate(); err != nil {
		return Settings{}, err
	}

	if err := s.repo.SaveSettings(ctx, &next); err != nil {
		return Settings{}, fmt.Errorf("saving settings: %w", err)
	}

	return next, nil
}
