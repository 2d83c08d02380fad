package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/config"
	"github.com/MrJamesThe3rd/gigzen/internal/database"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/gigzen/internal/expense/store"
	gigzenHttp "github.com/MrJamesThe3rd/gigzen/internal/http"
	calculatorHandler "github.com/MrJamesThe3rd/gigzen/internal/http/calculator"
	expenseHandler "github.com/MrJamesThe3rd/gigzen/internal/http/expense"
	importHandler "github.com/MrJamesThe3rd/gigzen/internal/http/importcsv"
	incomeHandler "github.com/MrJamesThe3rd/gigzen/internal/http/income"
	overviewHandler "github.com/MrJamesThe3rd/gigzen/internal/http/overview"
	settingsHandler "github.com/MrJamesThe3rd/gigzen/internal/http/settings"
	sourcesHandler "github.com/MrJamesThe3rd/gigzen/internal/http/sources"
	weekHandler "github.com/MrJamesThe3rd/gigzen/internal/http/week"
	"github.com/MrJamesThe3rd/gigzen/internal/importer"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	incomeStore "github.com/MrJamesThe3rd/gigzen/internal/income/store"
	"github.com/MrJamesThe3rd/gigzen/internal/jobs"
	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/gigzen/internal/settings/store"
	"github.com/MrJamesThe3rd/gigzen/internal/sources"
	sourcesStore "github.com/MrJamesThe3rd/gigzen/internal/sources/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cal, err := calendar.Load(cfg.Calendar.Timezone, calendar.SystemClock{})
	if err != nil {
		slog.Error("failed to load timezone", "timezone", cfg.Calendar.Timezone, "error", err)
		os.Exit(1)
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	defaults := settings.Settings{TaxRate: cfg.Tax.SelfEmployedRate, WeeklyTarget: cfg.Tax.WeeklyTarget}

	var (
		incomeService   = income.NewService(incomeStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
		settingsService = settings.NewService(settingsStore.New(db), defaults)
		sourcesService  = sources.NewService(sourcesStore.New(db))
		overviewService = overview.NewService(incomeService, expenseService, settingsService, cal)
		importService   = importer.NewService(earnings.NewParser(cal.Location()), incomeService, expenseService, sourcesService)
		weeklyReset     = jobs.NewWeeklyReset(incomeService, expenseService)
	)

	scheduler := jobs.NewScheduler()
	if cfg.Jobs.WeeklyResetEnabled {
		if err := scheduler.ScheduleWeeklyReset(cfg.Jobs.WeeklyResetSchedule, weeklyReset); err != nil {
			slog.Error("failed to schedule weekly reset", "error", err)
			os.Exit(1)
		}
	}

	scheduler.Start()

	router := gigzenHttp.New(cfg.CORS.AllowedOrigins, gigzenHttp.Handlers{
		Incomes:    incomeHandler.NewHandler(incomeService, cal),
		Expenses:   expenseHandler.NewHandler(expenseService, cal),
		Settings:   settingsHandler.NewHandler(settingsService),
		Calculator: calculatorHandler.NewHandler(settingsService, cal),
		Overview:   overviewHandler.NewHandler(overviewService),
		Import:     importHandler.NewHandler(importService),
		Sources:    sourcesHandler.NewHandler(sourcesService),
		Week:       weekHandler.NewHandler(weeklyReset),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "timezone", cfg.Calendar.Timezone)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
