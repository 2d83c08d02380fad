package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gigzen/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/config"
	"github.com/MrJamesThe3rd/gigzen/internal/database"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/gigzen/internal/expense/store"
	"github.com/MrJamesThe3rd/gigzen/internal/export"
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

type services struct {
	cal      *calendar.Calendar
	incomes  *income.Service
	expenses *expense.Service
	overview *overview.Service
	imports  *importer.Service
	exports  *export.Service
	reset    *jobs.WeeklyReset
}

type model struct {
	svc *services

	currentView View
	screen      view.View
	size        tea.WindowSizeMsg
}

type View int

const (
	ViewMenu View = iota
	ViewDashboard
	ViewRecords
	ViewAddIncome
	ViewAddExpense
	ViewShift
	ViewImport
	ViewExport
)

var menu = []struct {
	key   string
	view  View
	label string
}{
	{"1", ViewDashboard, "Dashboard"},
	{"2", ViewRecords, "Records"},
	{"3", ViewAddIncome, "Add Income"},
	{"4", ViewAddExpense, "Add Expense"},
	{"5", ViewShift, "Shift Calculator"},
	{"6", ViewImport, "Import Earnings"},
	{"7", ViewExport, "Export Report"},
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cal, err := calendar.Load(cfg.Calendar.Timezone, calendar.SystemClock{})
	if err != nil {
		slog.Error("failed to load timezone", "timezone", cfg.Calendar.Timezone, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	defaults := settings.Settings{TaxRate: cfg.Tax.SelfEmployedRate, WeeklyTarget: cfg.Tax.WeeklyTarget}

	incomeSvc := income.NewService(incomeStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	settingsSvc := settings.NewService(settingsStore.New(db), defaults)
	sourcesSvc := sources.NewService(sourcesStore.New(db))
	overviewSvc := overview.NewService(incomeSvc, expenseSvc, settingsSvc, cal)

	return model{
		svc: &services{
			cal:      cal,
			incomes:  incomeSvc,
			expenses: expenseSvc,
			overview: overviewSvc,
			imports:  importer.NewService(earnings.NewParser(cal.Location()), incomeSvc, expenseSvc, sourcesSvc),
			exports:  export.NewService(overviewSvc),
			reset:    jobs.NewWeeklyReset(incomeSvc, expenseSvc),
		},
		currentView: ViewMenu,
	}
}

// open builds a fresh screen so every visit reloads its data.
func (m model) open(v View) view.View {
	switch v {
	case ViewDashboard:
		return view.NewDashboardModel(m.svc.overview, m.svc.reset)
	case ViewRecords:
		return view.NewRecordsModel(m.svc.overview, m.svc.incomes, m.svc.expenses)
	case ViewAddIncome:
		return view.NewAddIncomeModel(m.svc.incomes, m.svc.cal)
	case ViewAddExpense:
		return view.NewAddExpenseModel(m.svc.expenses, m.svc.cal)
	case ViewShift:
		return view.NewShiftModel(m.svc.incomes, m.svc.cal)
	case ViewImport:
		return view.NewImportModel(m.svc.imports)
	case ViewExport:
		return view.NewExportModel(m.svc.exports, m.svc.overview)
	}

	return nil
}

// resize replays the last known terminal size to a newly opened screen.
func (m model) resize() tea.Msg {
	return m.size
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

			for _, item := range menu {
				if msg.String() == item.key {
					m.currentView = item.view
					m.screen = m.open(item.view)

					return m, tea.Batch(m.screen.Init(), m.resize)
				}
			}

			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.size = msg
	case view.BackMsg:
		m.currentView = ViewMenu
		m.screen = nil

		return m, nil
	}

	if m.screen == nil {
		return m, nil
	}

	newModel, cmd := m.screen.Update(msg)
	if s, ok := newModel.(view.View); ok {
		m.screen = s
	}

	return m, cmd
}

func (m model) View() string {
	if m.currentView == ViewMenu || m.screen == nil {
		var sb strings.Builder

		sb.WriteString("GigZen\n\n")

		for _, item := range menu {
			sb.WriteString(item.key + ". " + item.label + "\n")
		}

		sb.WriteString("\nq. Quit")

		return lipgloss.NewStyle().Padding(2).Render(sb.String())
	}

	return m.screen.View()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
