package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/gigzen/internal/sources"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, raw string) (string, error) {
	query := `
		SELECT canonical
		FROM source_aliases
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var canonical string

	err := s.db.QueryRowContext(ctx, query, raw).Scan(&canonical)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding source alias: %w", err)
	}

	return canonical, nil
}

func (s *Store) CreateAlias(ctx context.Context, pattern, canonical string) error {
	query := `
		INSERT INTO source_aliases (pattern, canonical, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (pattern) DO UPDATE SET canonical = EXCLUDED.canonical
	`

	if _, err := s.db.ExecContext(ctx, query, pattern, canonical); err != nil {
		return fmt.Errorf("creating source alias: %w", err)
	}

	return nil
}

func (s *Store) ListAliases(ctx context.Context) ([]*sources.Alias, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, pattern, canonical, created_at FROM source_aliases ORDER BY canonical, pattern`)
	if err != nil {
		return nil, fmt.Errorf("listing source aliases: %w", err)
	}
	defer rows.Close()

	var aliases []*sources.Alias

	for rows.Next() {
		var a sources.Alias
		if err := rows.Scan(&a.ID, &a.Pattern, &a.Canonical, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning source alias: %w", err)
		}

		aliases = append(aliases, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source aliases: %w", err)
	}

	return aliases, nil
}
