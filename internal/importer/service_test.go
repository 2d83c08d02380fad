package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/importer"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

type mocks struct {
	incomes  *importer.MockIncomeWriter
	expenses *importer.MockExpenseWriter
	sources  *importer.MockSourceNormalizer
}

func newService(t *testing.T) (*importer.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		incomes:  importer.NewMockIncomeWriter(ctrl),
		expenses: importer.NewMockExpenseWriter(ctrl),
		sources:  importer.NewMockSourceNormalizer(ctrl),
	}

	svc := importer.NewService(earnings.NewParser(time.UTC), m.incomes, m.expenses, m.sources)

	return svc, m
}

func TestImport_Daily(t *testing.T) {
	svc, m := newService(t)

	csv := `Date,DoorDash,UberEats,DiDi,Coles,Tips
2024-01-15,45,60,0,420,8
2024-01-15,5,0,0,0,0
bad,1,1,1,1,1
`

	m.incomes.EXPECT().
		AddBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params []income.AddParams) ([]*income.AddResult, error) {
			require.Len(t, params, 2)
			assert.Equal(t, "45", params[0].DoorDash.String())
			assert.Equal(t, "420", params[0].Coles.String())
			assert.Equal(t, tax.TypeGig, params[0].IncomeType)

			return []*income.AddResult{{Merged: false}, {Merged: true}}, nil
		})

	res, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, &importer.Result{Kind: earnings.KindDaily, Records: 2, Merged: 1, Skipped: 1}, res)
}

func TestImport_UniversalNormalizesSources(t *testing.T) {
	svc, m := newService(t)

	csv := "Date,Source,Type,Amount\n2024-01-15,UBER *EATS,gig,80\n2024-01-16,Salary,salary,1000\n"

	m.sources.EXPECT().Normalize(gomock.Any(), "UBER *EATS").Return("Uber Eats", nil)
	m.sources.EXPECT().Normalize(gomock.Any(), "Salary").Return("Salary", nil)

	var sources []string

	m.incomes.EXPECT().
		AddEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p income.EntryParams) (*income.Entry, error) {
			sources = append(sources, p.SourceName)
			return &income.Entry{SourceName: p.SourceName, Amount: p.Amount}, nil
		}).
		Times(2)

	res, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Entries)
	assert.Equal(t, []string{"Uber Eats", "Salary"}, sources)
}

func TestImport_Expenses(t *testing.T) {
	svc, m := newService(t)

	csv := "Date,Description,Amount\n15/01/2024,Fuel,-55.20\n"

	m.expenses.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p expense.CreateParams) (*expense.Expense, error) {
			assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), p.Date)
			assert.Equal(t, "Fuel", p.Name)
			assert.Equal(t, "55.2", p.Amount.String(), "expense amounts are stored positive")

			return &expense.Expense{Name: p.Name, Amount: p.Amount}, nil
		})

	res, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Expenses)
}

func TestImport_StopsOnWriteError(t *testing.T) {
	svc, m := newService(t)

	csv := "Date,Description,Amount\n2024-01-15,Fuel,10\n2024-01-16,Tolls,5\n"
	boom := errors.New("boom")

	m.expenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.ErrorIs(t, err, boom)
}

func TestImport_UnknownFormat(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Import(context.Background(), strings.NewReader("foo,bar\n1,2\n"))
	require.ErrorIs(t, err, earnings.ErrUnknownFormat)
}

func TestPreview_DoesNotWrite(t *testing.T) {
	svc, m := newService(t)

	m.sources.EXPECT().Normalize(gomock.Any(), "doordash").Return("DoorDash", nil)

	batch, err := svc.Preview(context.Background(), strings.NewReader("Date,Source,Amount\n2024-01-15,doordash,20\n"))
	require.NoError(t, err)

	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "DoorDash", batch.Entries[0].Source)
}
