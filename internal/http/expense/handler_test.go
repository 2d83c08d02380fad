package expense_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	httpexpense "github.com/MrJamesThe3rd/gigzen/internal/http/expense"
)

func newRouter(t *testing.T) (http.Handler, *expense.MockRepository) {
	t.Helper()

	repo := expense.NewMockRepository(gomock.NewController(t))

	cal, err := calendar.Load(calendar.DefaultTimezone, calendar.FixedClock(time.Date(2024, 1, 15, 1, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/expenses", httpexpense.NewHandler(expense.NewService(repo), cal).Routes)

	return r, repo
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(repo *expense.MockRepository)
		wantCode int
	}{
		{
			name: "Valid",
			body: `{"date": "2024-01-14", "name": "Fuel", "amount": "$55.20"}`,
			setup: func(repo *expense.MockRepository) {
				repo.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						assert.Equal(t, "2024-01-14", calendar.FormatDate(e.Date))
						assert.Equal(t, "55.2", e.Amount.String())
						e.ID = uuid.New()

						return nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "MissingName",
			body:     `{"amount": 10}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "ZeroAmount",
			body:     `{"name": "Tolls", "amount": "n/a"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "MalformedJSON",
			body:     `{`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)

			if tt.setup != nil {
				tt.setup(repo)
			}

			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	router, repo := newRouter(t)

	id := uuid.New()
	repo.EXPECT().DeleteExpense(gomock.Any(), id).Return(expense.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/expenses/"+id.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
