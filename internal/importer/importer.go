package importer

import (
	"context"
	"io"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer

type Parser interface {
	Parse(r io.Reader) (*earnings.Batch, error)
}

// IncomeWriter is the part of income.Service an import writes through, so
// imported days merge exactly like submitted ones.
type IncomeWriter interface {
	AddBatch(ctx context.Context, params []income.AddParams) ([]*income.AddResult, error)
	AddEntry(ctx context.Context, params income.EntryParams) (*income.Entry, error)
}

type ExpenseWriter interface {
	Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

// SourceNormalizer maps raw source names to canonical ones.
type SourceNormalizer interface {
	Normalize(ctx context.Context, raw string) (string, error)
}
