// Package sources maps raw income source names, as they appear in exports and
// bank descriptions, to the canonical names used in summaries.
package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAlias = errors.New("pattern and canonical name are required")

// Alias maps any source containing Pattern (case-insensitive) to Canonical.
type Alias struct {
	ID        uuid.UUID
	Pattern   string
	Canonical string
	CreatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sources
type Repository interface {
	// FindMatch returns the canonical name of the longest matching pattern, or "".
	FindMatch(ctx context.Context, raw string) (string, error)
	CreateAlias(ctx context.Context, pattern, canonical string) error
	ListAliases(ctx context.Context) ([]*Alias, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the canonical name for raw, or "" when nothing matches.
func (s *Service) Suggest(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	return s.repo.FindMatch(ctx, raw)
}

// Normalize is Suggest falling back to the trimmed raw name.
func (s *Service) Normalize(ctx context.Context, raw string) (string, error) {
	canonical, err := s.Suggest(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("matching source %q: %w", raw, err)
	}

	if canonical == "" {
		return strings.TrimSpace(raw), nil
	}

	return canonical, nil
}

// Learn remembers that sources containing pattern belong to canonical.
func (s *Service) Learn(ctx context.Context, pattern, canonical string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	canonical = strings.TrimSpace(canonical)

	if pattern == "" || canonical == "" {
		return ErrInvalidAlias
	}

	return s.repo.CreateAlias(ctx, pattern, canonical)
}

func (s *Service) List(ctx context.Context) ([]*Alias, error) {
	return s.repo.ListAliases(ctx)
}
