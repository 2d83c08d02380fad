package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
)

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    expense.CreateParams
		setupMock func(m *expense.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: expense.CreateParams{Date: day, Name: " Fuel ", Amount: decimal.NewFromInt(60)},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						assert.Equal(t, "Fuel", e.Name)
						e.ID = uuid.New()

						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  expense.CreateParams{Date: day, Amount: decimal.NewFromInt(60)},
			wantErr: expense.ErrInvalidInput,
		},
		{
			name:    "MissingAmount",
			params:  expense.CreateParams{Date: day, Name: "Fuel"},
			wantErr: expense.ErrInvalidInput,
		},
		{
			name:    "MissingDate",
			params:  expense.CreateParams{Name: "Fuel", Amount: decimal.NewFromInt(1)},
			wantErr: expense.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := expense.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_EachSubmissionIsIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := expense.NewService(repo)
	params := expense.CreateParams{Date: day, Name: "Fuel", Amount: decimal.NewFromInt(60)}

	first, err := svc.Create(context.Background(), params)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), params)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(expense.ErrNotFound)

	err := expense.NewService(repo).Update(context.Background(), &expense.Expense{ID: uuid.New(), Date: day, Name: "Tolls"})
	assert.ErrorIs(t, err, expense.ErrNotFound)

	err = expense.NewService(repo).Update(context.Background(), &expense.Expense{Date: day, Name: "  "})
	assert.ErrorIs(t, err, expense.ErrInvalidInput)
}

func TestService_ArchiveActive(t *testing.T) {
	type testCase struct {
		name    string
		repoN   int64
		repoErr error
		wantErr bool
	}

	now := time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{name: "Success", repoN: 4},
		{name: "RepoError", repoErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			repo.EXPECT().ArchiveActive(gomock.Any(), now).Return(tt.repoN, tt.repoErr)

			got, err := expense.NewService(repo).WithClock(func() time.Time { return now }).ArchiveActive(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.repoN, got)
		})
	}
}
