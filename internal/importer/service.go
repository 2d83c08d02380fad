package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type Service struct {
	parser   Parser
	incomes  IncomeWriter
	expenses ExpenseWriter
	sources  SourceNormalizer
}

func NewService(parser Parser, incomes IncomeWriter, expenses ExpenseWriter, sources SourceNormalizer) *Service {
	return &Service{parser: parser, incomes: incomes, expenses: expenses, sources: sources}
}

type Result struct {
	Kind     earnings.Kind `json:"kind"`
	Records  int           `json:"records"`
	Merged   int           `json:"merged"`
	Entries  int           `json:"entries"`
	Expenses int           `json:"expenses"`
	Skipped  int           `json:"skipped"`
}

// Preview parses r and normalises source names without saving anything.
func (s *Service) Preview(ctx context.Context, r io.Reader) (*earnings.Batch, error) {
	batch, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	if err := s.normalizeSources(ctx, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// Import parses r and stores its rows. Daily rows go through the income merge
// path in file order.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Result, error) {
	batch, err := s.Preview(ctx, r)
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: batch.Kind, Skipped: batch.Skipped}

	if len(batch.Daily) > 0 {
		added, err := s.incomes.AddBatch(ctx, dailyParams(batch.Daily))
		if err != nil {
			return nil, fmt.Errorf("import daily rows: %w", err)
		}

		for _, a := range added {
			res.Records++

			if a.Merged {
				res.Merged++
			}
		}
	}

	for i, e := range batch.Entries {
		if _, err := s.incomes.AddEntry(ctx, income.EntryParams{
			Date:       e.Date,
			SourceName: e.Source,
			IncomeType: e.IncomeType,
			Amount:     e.Amount,
		}); err != nil {
			return nil, fmt.Errorf("import entry %d: %w", i+1, err)
		}

		res.Entries++
	}

	for i, e := range batch.Expenses {
		if _, err := s.expenses.Create(ctx, expense.CreateParams{
			Date:   e.Date,
			Name:   e.Description,
			Amount: e.Amount,
		}); err != nil {
			return nil, fmt.Errorf("import expense %d: %w", i+1, err)
		}

		res.Expenses++
	}

	slog.Info("import finished",
		"kind", res.Kind, "charset", batch.Charset,
		"records", res.Records, "merged", res.Merged,
		"entries", res.Entries, "expenses", res.Expenses, "skipped", res.Skipped)

	return res, nil
}

func (s *Service) normalizeSources(ctx context.Context, batch *earnings.Batch) error {
	if s.sources == nil {
		return nil
	}

	for i := range batch.Entries {
		name, err := s.sources.Normalize(ctx, batch.Entries[i].Source)
		if err != nil {
			return err
		}

		batch.Entries[i].Source = name
	}

	return nil
}

func dailyParams(rows []earnings.DailyRow) []income.AddParams {
	params := make([]income.AddParams, len(rows))
	for i, r := range rows {
		params[i] = income.AddParams{
			Date:       r.Date,
			DoorDash:   r.DoorDash,
			UberEats:   r.UberEats,
			DiDi:       r.DiDi,
			Coles:      r.Coles,
			ColesHours: r.ColesHours,
			Tips:       r.Tips,
			IncomeType: tax.TypeGig,
		}
	}

	return params
}
