package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/gigzen/internal/settings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSettings(ctx context.Context) (*settings.Settings, error) {
	var out settings.Settings

	err := s.db.QueryRowContext(ctx, `SELECT tax_rate, weekly_target, updated_at FROM settings WHERE id`).
		Scan(&out.TaxRate, &out.WeeklyTarget, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrNotFound
		}

		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &out, nil
}

func (s *Store) SaveSettings(ctx context.Context, in *settings.Settings) error {
	query := `
		INSERT INTO settings (id, tax_rate, weekly_target, updated_at)
		VALUES (TRUE, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET tax_rate = EXCLUDED.tax_rate, weekly_target = EXCLUDED.weekly_target, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	if err := s.db.QueryRowContext(ctx, query, in.TaxRate, in.WeeklyTarget).Scan(&in.UpdatedAt); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
