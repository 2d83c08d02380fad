package week_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/http/week"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/jobs"
)

func TestHandler_Reset(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(incomes *jobs.MockIncomeArchiver, expenses *jobs.MockExpenseArchiver)
		wantCode int
		wantBody string
	}{
		{
			name: "Archives",
			setup: func(incomes *jobs.MockIncomeArchiver, expenses *jobs.MockExpenseArchiver) {
				incomes.EXPECT().ArchiveActive(gomock.Any()).Return(income.ArchiveResult{Records: 4, Entries: 1}, nil)
				expenses.EXPECT().ArchiveActive(gomock.Any()).Return(int64(2), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"records": 4, "entries": 1, "expenses": 2}`,
		},
		{
			name: "Fails",
			setup: func(incomes *jobs.MockIncomeArchiver, _ *jobs.MockExpenseArchiver) {
				incomes.EXPECT().ArchiveActive(gomock.Any()).Return(income.ArchiveResult{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			incomes := jobs.NewMockIncomeArchiver(ctrl)
			expenses := jobs.NewMockExpenseArchiver(ctrl)
			tt.setup(incomes, expenses)

			r := chi.NewRouter()
			r.Route("/week", week.NewHandler(jobs.NewWeeklyReset(incomes, expenses)).Routes)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/week/reset", nil))

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
