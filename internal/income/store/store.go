package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectRecordColumns = `
	id, date, doordash, ubereats, didi, coles, coles_hours, tips,
	source_name, income_type, archived_at, created_at, updated_at
`

// scanRecord expects the column order of selectRecordColumns.
func scanRecord(s scanner) (*income.Record, error) {
	var r income.Record

	var hours decimal.NullDecimal

	var incomeType string

	if err := s.Scan(
		&r.ID, &r.Date, &r.DoorDash, &r.UberEats, &r.DiDi, &r.Coles, &hours, &r.Tips,
		&r.SourceName, &incomeType, &r.ArchivedAt, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.IncomeType = tax.ParseIncomeType(incomeType)

	if hours.Valid {
		r.ColesHours = &hours.Decimal
	}

	return &r, nil
}

// dateArg sends the calendar date as text so the session timezone cannot shift it.
func dateArg(t time.Time) string {
	return t.Format(time.DateOnly)
}

func hoursArg(h *decimal.Decimal) decimal.NullDecimal {
	if h == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *h, Valid: true}
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*income.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM income_records WHERE id = $1`

	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting income record: %w", err)
	}

	return r, nil
}

func (s *Store) UpdateRecord(ctx context.Context, r *income.Record) error {
	return updateRecord(ctx, s.db, r)
}

func updateRecord(ctx context.Context, q querier, r *income.Record) error {
	query := `
		UPDATE income_records
		SET date = $1, doordash = $2, ubereats = $3, didi = $4, coles = $5, coles_hours = $6,
			tips = $7, source_name = $8, income_type = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query,
		dateArg(r.Date),
		r.DoorDash,
		r.UberEats,
		r.DiDi,
		r.Coles,
		hoursArg(r.ColesHours),
		r.Tips,
		r.SourceName,
		incomeTypeArg(r.IncomeType),
		r.ID,
	).Scan(&r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return income.ErrNotFound
		}

		return fmt.Errorf("updating income record: %w", err)
	}

	return nil
}

func incomeTypeArg(t tax.IncomeType) string {
	if t == "" {
		return string(tax.TypeGig)
	}

	return string(t)
}

func (s *Store) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM income_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting income record: %w", err)
	}

	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return income.ErrNotFound
	}

	return nil
}

// whereClause builds the shared filter for records and entries.
func whereClause(filter income.ListFilter) (string, []any) {
	where := " WHERE 1=1"

	var args []any

	argIdx := 1

	if !filter.IncludeArchived {
		where += " AND archived_at IS NULL"
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, dateArg(*filter.StartDate))
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, dateArg(*filter.EndDate))
	}

	return where, args
}

func (s *Store) ListRecords(ctx context.Context, filter income.ListFilter) ([]*income.Record, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + selectRecordColumns + ` FROM income_records` + where + ` ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing income records: %w", err)
	}
	defer rows.Close()

	var records []*income.Record

	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income record: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income records: %w", err)
	}

	return records, nil
}

func addLockKey(date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte("income_records"))
	h.Write([]byte{0})
	h.Write([]byte(dateArg(date)))

	return int64(h.Sum64())
}

type addTx struct {
	tx *sql.Tx
}

func (s *Store) BeginAdd(ctx context.Context, date time.Time) (income.AddTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning add tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", addLockKey(date)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring date lock: %w", err)
	}

	return &addTx{tx: dbTx}, nil
}

func (a *addTx) Commit() error   { return a.tx.Commit() }
func (a *addTx) Rollback() error { return a.tx.Rollback() }

func (a *addTx) FindActiveByDate(ctx context.Context, date time.Time) (*income.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM income_records WHERE date = $1 AND archived_at IS NULL`

	r, err := scanRecord(a.tx.QueryRowContext(ctx, query, dateArg(date)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("finding active income record: %w", err)
	}

	return r, nil
}

func (a *addTx) CreateRecord(ctx context.Context, r *income.Record) error {
	query := `
		INSERT INTO income_records (date, doordash, ubereats, didi, coles, coles_hours, tips, source_name, income_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := a.tx.QueryRowContext(ctx, query,
		dateArg(r.Date),
		r.DoorDash,
		r.UberEats,
		r.DiDi,
		r.Coles,
		hoursArg(r.ColesHours),
		r.Tips,
		r.SourceName,
		incomeTypeArg(r.IncomeType),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income record: %w", err)
	}

	return nil
}

func (a *addTx) UpdateRecord(ctx context.Context, r *income.Record) error {
	return updateRecord(ctx, a.tx, r)
}

const selectEntryColumns = `id, date, source_name, income_type, amount, archived_at, created_at`

func scanEntry(s scanner) (*income.Entry, error) {
	var e income.Entry

	var incomeType string

	if err := s.Scan(&e.ID, &e.Date, &e.SourceName, &incomeType, &e.Amount, &e.ArchivedAt, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.IncomeType = tax.ParseIncomeType(incomeType)

	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *income.Entry) error {
	query := `
		INSERT INTO income_entries (date, source_name, income_type, amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		dateArg(e.Date),
		e.SourceName,
		incomeTypeArg(e.IncomeType),
		e.Amount,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income entry: %w", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, filter income.ListFilter) ([]*income.Entry, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + selectEntryColumns + ` FROM income_entries` + where + ` ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing income entries: %w", err)
	}
	defer rows.Close()

	var entries []*income.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income entries: %w", err)
	}

	return entries, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM income_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting income entry: %w", err)
	}

	return requireAffected(res)
}

// ArchiveActive archives records and entries in one transaction.
func (s *Store) ArchiveActive(ctx context.Context, at time.Time) (income.ArchiveResult, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return income.ArchiveResult{}, fmt.Errorf("beginning archive tx: %w", err)
	}
	defer dbTx.Rollback()

	var result income.ArchiveResult

	res, err := dbTx.ExecContext(ctx, `UPDATE income_records SET archived_at = $1 WHERE archived_at IS NULL`, at)
	if err != nil {
		return income.ArchiveResult{}, fmt.Errorf("archiving income records: %w", err)
	}

	if result.Records, err = res.RowsAffected(); err != nil {
		return income.ArchiveResult{}, fmt.Errorf("reading archived records: %w", err)
	}

	res, err = dbTx.ExecContext(ctx, `UPDATE income_entries SET archived_at = $1 WHERE archived_at IS NULL`, at)
	if err != nil {
		return income.ArchiveResult{}, fmt.Errorf("archiving income entries: %w", err)
	}

	if result.Entries, err = res.RowsAffected(); err != nil {
		return income.ArchiveResult{}, fmt.Errorf("reading archived entries: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return income.ArchiveResult{}, fmt.Errorf("committing archive: %w", err)
	}

	return result, nil
}
