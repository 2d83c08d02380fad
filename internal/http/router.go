package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/gigzen/internal/http/calculator"
	"github.com/MrJamesThe3rd/gigzen/internal/http/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/http/importcsv"
	"github.com/MrJamesThe3rd/gigzen/internal/http/income"
	"github.com/MrJamesThe3rd/gigzen/internal/http/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/http/settings"
	"github.com/MrJamesThe3rd/gigzen/internal/http/sources"
	"github.com/MrJamesThe3rd/gigzen/internal/http/week"
)

type Handlers struct {
	Incomes    *income.Handler
	Expenses   *expense.Handler
	Settings   *settings.Handler
	Calculator *calculator.Handler
	Overview   *overview.Handler
	Import     *importcsv.Handler
	Sources    *sources.Handler
	Week       *week.Handler
}

func New(allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/incomes", h.Incomes.Routes)
			r.Route("/entries", h.Incomes.EntryRoutes)
			r.Route("/expenses", h.Expenses.Routes)
			r.Route("/settings", h.Settings.Routes)
			r.Route("/shifts", h.Calculator.ShiftRoutes)
			r.Route("/tax", h.Calculator.TaxRoutes)
			r.Route("/sources", h.Sources.Routes)
		})

		r.Route("/import", h.Import.Routes)
		r.Route("/week", h.Week.Routes)

		h.Overview.Routes(r)
	})

	return router
}
