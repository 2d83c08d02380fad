package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

var rowKindLabels = map[summary.RowKind]string{
	summary.RowIncome:  "Income",
	summary.RowEntry:   "Entry",
	summary.RowExpense: "Expense",
}

// RecordsModel lists income and expenses newest first.
type RecordsModel struct {
	CommonModel
	overview *overview.Service
	incomes  *income.Service
	expenses *expense.Service

	table         table.Model
	rows          []summary.Row
	periodIdx     int
	confirmDelete bool

	loading bool
	err     error
	status  string
}

func NewRecordsModel(ov *overview.Service, incomes *income.Service, expenses *expense.Service) RecordsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Description", Width: 32},
		{Title: "Amount", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RecordsModel{
		overview: ov,
		incomes:  incomes,
		expenses: expenses,
		table:    t,
		loading:  true,
	}
}

func (m RecordsModel) Title() string { return "Records" }

func (m RecordsModel) ShortHelp() string {
	if m.confirmDelete {
		return "y: delete | any other key: cancel"
	}

	return "Esc: back | p: period | x: delete | r: refresh"
}

func (m RecordsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRecordsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Deleted."

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.SetSize(msg)
		m.table.SetHeight(m.TableHeight(10))

		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			m.confirmDelete = false
			if msg.String() == "y" {
				return m, m.deleteCmd()
			}

			m.status = ""

			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			m.periodIdx = (m.periodIdx + 1) % len(periods)
			m.loading = true

			return m, m.loadCmd()
		case "x":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.rows) {
				m.confirmDelete = true
				m.status = fmt.Sprintf("Delete %s on %s?", m.rows[idx].Description, FormatDate(m.rows[idx].Date))
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RecordsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading records...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Filter: [p] Period: %s", activeStyle(periodLabels[periods[m.periodIdx]]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		faintStyle.Render(m.ShortHelp()),
	)

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RecordsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, table.Row{
			FormatDate(r.Date),
			rowKindLabels[r.Kind],
			r.Description,
			FormatAmount(r.Amount),
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Messages

type loadRecordsMsg struct {
	rows []summary.Row
	err  error
}

type deleteDoneMsg struct {
	err error
}

func (m RecordsModel) loadCmd() tea.Cmd {
	period := periods[m.periodIdx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := m.overview.Timeline(ctx, m.overview.Window(period, m.overview.Calendar().Today()))

		return loadRecordsMsg{rows: rows, err: err}
	}
}

func (m RecordsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}

	row := m.rows[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteDoneMsg{err: m.deleteRow(ctx, row)}
	}
}

func (m RecordsModel) deleteRow(ctx context.Context, row summary.Row) error {
	switch row.Kind {
	case summary.RowIncome:
		return m.incomes.Delete(ctx, row.ID)
	case summary.RowEntry:
		return m.incomes.DeleteEntry(ctx, row.ID)
	case summary.RowExpense:
		return m.expenses.Delete(ctx, row.ID)
	}

	return fmt.Errorf("unknown row kind %q", row.Kind)
}
