package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gigzen/internal/jobs"
	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

var periods = []overview.Period{overview.PeriodWeek, overview.PeriodToday, overview.PeriodMonth, overview.PeriodAll}

var periodLabels = map[overview.Period]string{
	overview.PeriodWeek:  "This Week",
	overview.PeriodToday: "Today",
	overview.PeriodMonth: "This Month",
	overview.PeriodAll:   "All Time",
}

// DashboardModel shows the totals for the active ledger.
type DashboardModel struct {
	CommonModel
	overview *overview.Service
	reset    *jobs.WeeklyReset

	periodIdx    int
	summary      summary.Summary
	loading      bool
	confirmReset bool
	err          error
	status       string
}

func NewDashboardModel(ov *overview.Service, reset *jobs.WeeklyReset) DashboardModel {
	return DashboardModel{overview: ov, reset: reset, loading: true}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.confirmReset {
		return "y: archive this week | any other key: cancel"
	}

	return "Esc: back | p: period | r: refresh | n: new week"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) period() overview.Period { return periods[m.periodIdx] }

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary

		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Reset failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Archived %d records, %d entries and %d expenses.",
			msg.result.Records, msg.result.Entries, msg.result.Expenses)
		m.loading = true

		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.confirmReset {
			m.confirmReset = false
			if msg.String() == "y" {
				return m, m.resetCmd()
			}

			m.status = ""

			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			m.periodIdx = (m.periodIdx + 1) % len(periods)
			m.loading = true

			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			m.confirmReset = true
			m.status = "Start a new week? Everything active will be archived."

			return m, nil
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	s := m.summary

	header := fmt.Sprintf("%s  [p] %s", titleStyle.Render("Dashboard"), activeStyle(periodLabels[m.period()]))
	if !s.Window.IsAll() {
		header += faintStyle.Render(fmt.Sprintf("  %s to %s", FormatDate(s.Window.Start), FormatDate(s.Window.End)))
	}

	platforms := card("Platforms", [][2]string{
		{"DoorDash", FormatAmount(s.DoorDash)},
		{"Uber Eats", FormatAmount(s.UberEats)},
		{"DiDi", FormatAmount(s.DiDi)},
		{"Tips", FormatAmount(s.Tips)},
		{"Gig income", FormatAmount(s.GigIncome)},
	})

	coles := card("Coles", [][2]string{
		{"Gross", FormatAmount(s.ColesGross)},
		{"Tax withheld", FormatAmount(s.ColesTax)},
		{"Net", FormatAmount(s.ColesNet)},
		{"Hours", s.ColesHours.String()},
	})

	totals := card("Totals", [][2]string{
		{"Total income", FormatAmount(s.TotalIncome)},
		{"Expenses", FormatAmount(s.TotalExpenses)},
		{"Net balance", FormatAmount(s.NetBalance)},
		{"Weekly target", FormatAmount(s.WeeklyTarget)},
		{"Remaining", FormatAmount(s.Remaining)},
	})

	tax := card("Tax", [][2]string{
		{"Gig set-aside", FormatAmount(s.GigSetAside)},
		{"DiDi GST", FormatAmount(s.DiDiGST)},
		{"Other income", FormatAmount(s.EntryIncome)},
		{"Set-aside on other", FormatAmount(s.SetAside.TotalTax)},
	})

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, platforms, coles),
		lipgloss.JoinHorizontal(lipgloss.Top, totals, tax),
		faintStyle.Render(fmt.Sprintf("%d records, %d entries, %d expenses", s.RecordCount, s.EntryCount, s.ExpenseCount)),
	)

	if m.status != "" {
		content += "\n\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

func card(title string, rows [][2]string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))

	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-20s %12s", r[0], r[1])
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Margin(0, 1, 1, 0).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

// Messages

type dashboardLoadMsg struct {
	summary summary.Summary
	err     error
}

type resetDoneMsg struct {
	result *jobs.ResetResult
	err    error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	period := m.period()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.overview.Summary(ctx, m.overview.Window(period, m.overview.Calendar().Today()))

		return dashboardLoadMsg{summary: s, err: err}
	}
}

func (m DashboardModel) resetCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.reset.RunNow(ctx)

		return resetDoneMsg{result: res, err: err}
	}
}
