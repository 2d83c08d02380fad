package settings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	httpsettings "github.com/MrJamesThe3rd/gigzen/internal/http/settings"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
)

func newRouter(t *testing.T) (http.Handler, *settings.MockRepository) {
	t.Helper()

	repo := settings.NewMockRepository(gomock.NewController(t))
	svc := settings.NewService(repo, settings.Settings{TaxRate: decimal.NewFromInt(25), WeeklyTarget: decimal.NewFromInt(800)})

	r := chi.NewRouter()
	r.Route("/settings", httpsettings.NewHandler(svc).Routes)

	return r, repo
}

func TestHandler_GetReturnsDefaults(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().GetSettings(gomock.Any()).Return(nil, settings.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tax_rate": "25", "weekly_target": "800"}`, w.Body.String())
}

func TestHandler_Save(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		saves    bool
		wantCode int
	}{
		{name: "PartialUpdate", body: `{"tax_rate": "30"}`, saves: true, wantCode: http.StatusOK},
		{name: "RateAboveHundred", body: `{"tax_rate": 120}`, wantCode: http.StatusBadRequest},
		{name: "NegativeTarget", body: `{"weekly_target": -5}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)

			repo.EXPECT().GetSettings(gomock.Any()).Return(nil, settings.ErrNotFound)

			if tt.saves {
				repo.EXPECT().
					SaveSettings(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *settings.Settings) error {
						assert.Equal(t, "30", s.TaxRate.String())
						assert.Equal(t, "800", s.WeeklyTarget.String(), "unsent fields keep their value")

						return nil
					})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
