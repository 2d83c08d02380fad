package income_test

import (
	"context"
	"encoding/json"
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
	httpincome "github.com/MrJamesThe3rd/gigzen/internal/http/income"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

func newRouter(t *testing.T) (http.Handler, *income.MockRepository, *income.MockAddTx) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := income.NewMockRepository(ctrl)
	atx := income.NewMockAddTx(ctrl)

	// Monday 2024-01-15 10:00 in Sydney.
	cal, err := calendar.Load(calendar.DefaultTimezone, calendar.FixedClock(time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	h := httpincome.NewHandler(income.NewService(repo), cal)

	r := chi.NewRouter()
	r.Route("/incomes", h.Routes)
	r.Route("/entries", h.EntryRoutes)

	return r, repo, atx
}

func TestHandler_AddCreatesRecord(t *testing.T) {
	router, repo, atx := newRouter(t)

	repo.EXPECT().BeginAdd(gomock.Any(), gomock.Any()).Return(atx, nil)
	atx.EXPECT().FindActiveByDate(gomock.Any(), gomock.Any()).Return(nil, income.ErrNotFound)
	atx.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *income.Record) error {
			assert.Equal(t, "2024-01-15", calendar.FormatDate(r.Date), "blank date defaults to today")
			assert.Equal(t, "45.5", r.DoorDash.String())
			assert.True(t, r.UberEats.IsZero(), "junk amounts coerce to zero")
			assert.Nil(t, r.ColesHours)

			r.ID = uuid.New()

			return nil
		})
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	body := `{"doordash": "$45.50", "ubereats": "abc", "didi": null, "coles": 120}`
	req := httptest.NewRequest(http.MethodPost, "/incomes", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Record struct {
			Date     string `json:"date"`
			DoorDash string `json:"doordash"`
			Total    string `json:"total"`
		} `json:"record"`
		Merged bool `json:"merged"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.False(t, resp.Merged)
	assert.Equal(t, "2024-01-15", resp.Record.Date)
	assert.Equal(t, "45.5", resp.Record.DoorDash)
	assert.Equal(t, "165.5", resp.Record.Total)
}

func TestHandler_AddMergesIntoExistingDay(t *testing.T) {
	router, repo, atx := newRouter(t)

	existing := &income.Record{ID: uuid.New(), Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}

	repo.EXPECT().BeginAdd(gomock.Any(), gomock.Any()).Return(atx, nil)
	atx.EXPECT().FindActiveByDate(gomock.Any(), gomock.Any()).Return(existing, nil)
	atx.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/incomes", strings.NewReader(`{"date": "2024-01-10", "doordash": 10}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"merged":true`)
}

func TestHandler_AddRejectsBadDate(t *testing.T) {
	router, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/incomes", strings.NewReader(`{"date": "15/01/2024"}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Get(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		setup    func(repo *income.MockRepository, id uuid.UUID)
		wantCode int
	}{
		{
			name: "Found",
			id:   uuid.NewString(),
			setup: func(repo *income.MockRepository, id uuid.UUID) {
				repo.EXPECT().GetRecord(gomock.Any(), id).Return(&income.Record{ID: id}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "NotFound",
			id:   uuid.NewString(),
			setup: func(repo *income.MockRepository, id uuid.UUID) {
				repo.EXPECT().GetRecord(gomock.Any(), id).Return(nil, income.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "InvalidID",
			id:       "nope",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, _ := newRouter(t)

			if tt.setup != nil {
				tt.setup(repo, uuid.MustParse(tt.id))
			}

			req := httptest.NewRequest(http.MethodGet, "/incomes/"+tt.id, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_ListParsesFilter(t *testing.T) {
	router, repo, _ := newRouter(t)

	repo.EXPECT().
		ListRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f income.ListFilter) ([]*income.Record, error) {
			require.NotNil(t, f.StartDate)
			assert.Equal(t, "2024-01-08", calendar.FormatDate(*f.StartDate))
			assert.Nil(t, f.EndDate)
			assert.True(t, f.IncludeArchived)

			return []*income.Record{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/incomes?start_date=2024-01-08&include_archived=true", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_AddEntry(t *testing.T) {
	router, repo, _ := newRouter(t)

	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *income.Entry) error {
			assert.Equal(t, "Salary", e.SourceName)
			assert.Equal(t, tax.TypeSalary, e.IncomeType)
			assert.Equal(t, "1000", e.Amount.String())

			return nil
		})

	body := `{"date": "2024-01-12", "source_name": " Salary ", "income_type": "Salary", "amount": "1,000"}`
	req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"income_type_label"`)
}

func TestHandler_AddEntryRequiresAmount(t *testing.T) {
	router, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"source_name": "Tutoring", "amount": ""}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
