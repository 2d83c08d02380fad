package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gigzen/internal/award"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/shift"
)

type shiftState int

const (
	shiftStateForm shiftState = iota
	shiftStateResult
)

// ShiftModel prices a Coles shift and can record it as the day's Coles income.
type ShiftModel struct {
	CommonModel
	incomes *income.Service
	cal     *calendar.Calendar

	state  shiftState
	form   *huh.Form
	result *shift.Result
	saved  bool
	err    error
	status string

	// in is shared by every copy of the model so huh can write through it.
	in *shiftForm
}

type shiftForm struct {
	date    string
	start   string
	end     string
	bracket string
	holiday bool
}

func NewShiftModel(incomes *income.Service, cal *calendar.Calendar) ShiftModel {
	m := ShiftModel{
		incomes: incomes,
		cal:     cal,
		in: &shiftForm{
			date:    FormatDate(cal.Today()),
			start:   "09:00",
			end:     "17:00",
			bracket: string(award.Over20),
		},
	}
	m.form = m.buildForm()

	return m
}

func (m ShiftModel) Title() string { return "Shift Calculator" }

func (m ShiftModel) ShortHelp() string {
	if m.state == shiftStateResult {
		return "c: use as Coles amount | n: new shift | Esc: back"
	}

	return "Navigate form | Esc: back"
}

func (m ShiftModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ShiftModel) buildForm() *huh.Form {
	brackets := award.Brackets()
	options := make([]huh.Option[string], len(brackets))

	for i, b := range brackets {
		options[i] = huh.NewOption(b.Label(), string(b))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.in.date).
				Validate(func(s string) error {
					_, err := m.cal.ParseDate(s)
					return err
				}),

			huh.NewInput().
				Key("start").
				Title("Start time").
				Placeholder("HH:MM").
				Value(&m.in.start).
				Validate(validateTime),

			huh.NewInput().
				Key("end").
				Title("End time").
				Placeholder("HH:MM").
				Value(&m.in.end).
				Validate(validateTime),

			huh.NewSelect[string]().
				Key("bracket").
				Title("Age bracket").
				Options(options...).
				Value(&m.in.bracket),

			huh.NewConfirm().
				Key("holiday").
				Title("Public holiday?").
				Value(&m.in.holiday),
		),
	).WithWidth(45).WithShowHelp(false)
}

func validateTime(s string) error {
	_, err := shift.ParseTimeOfDay(s)
	return err
}

func (m ShiftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shiftSavedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error saving: %v", msg.err))
			return m, nil
		}

		m.saved = true
		if msg.merged {
			m.status = okStyle.Render("Coles amount merged into the existing record for that day.")
		} else {
			m.status = okStyle.Render("Coles amount saved as a new record.")
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == shiftStateResult {
			switch msg.String() {
			case "c":
				if !m.saved {
					return m, m.saveCmd()
				}

				return m, nil
			case "n":
				m.state = shiftStateForm
				m.result = nil
				m.saved = false
				m.err = nil
				m.status = ""
				m.form = m.buildForm()

				return m, m.form.Init()
			}

			return m, nil
		}
	}

	if m.state != shiftStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.result, m.err = m.compute()
	m.state = shiftStateResult

	return m, nil
}

func (m ShiftModel) compute() (*shift.Result, error) {
	date, err := m.cal.ParseDate(m.in.date)
	if err != nil {
		return nil, err
	}

	start, err := shift.ParseTimeOfDay(m.in.start)
	if err != nil {
		return nil, err
	}

	end, err := shift.ParseTimeOfDay(m.in.end)
	if err != nil {
		return nil, err
	}

	bracket, err := award.ParseAgeBracket(m.in.bracket)
	if err != nil {
		return nil, err
	}

	rates, err := award.Rates(bracket)
	if err != nil {
		return nil, err
	}

	return shift.Compute(shift.Input{
		Date:          date,
		Start:         start,
		End:           end,
		AgeBracket:    bracket,
		PublicHoliday: m.in.holiday,
	}, rates)
}

func (m ShiftModel) View() string {
	if m.state == shiftStateForm {
		return lipgloss.NewStyle().Padding(1).Render(
			titleStyle.Render("Coles Shift Calculator") + "\n\n" + m.form.View() + "\n" + faintStyle.Render(m.ShortHelp()),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + faintStyle.Render(m.ShortHelp()),
		)
	}

	r := m.result

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("Shift on %s (%s)", FormatDate(r.Date), r.Date.Weekday().String()[:3])))

	for _, s := range r.Segments {
		fmt.Fprintf(&b, "%-22s %5s hrs x $%-6s %12s\n", s.Label, s.Hours.Round(2).String(), s.Rate.StringFixed(2), FormatAmount(s.Subtotal.Round(2)))
	}

	fmt.Fprintf(&b, "\n%-22s %s hrs\n", "Shift length", r.TotalShiftHours.Round(2).String())
	fmt.Fprintf(&b, "%-22s %s hrs\n", "Unpaid break", r.UnpaidBreakHours.String())
	fmt.Fprintf(&b, "%-22s %s hrs\n", "Paid", r.PaidHours.Round(2).String())
	fmt.Fprintf(&b, "\n%-22s %12s\n", "Gross pay", FormatAmount(r.GrossPay.Round(2)))
	fmt.Fprintf(&b, "%-22s %12s\n", "Estimated tax", FormatAmount(r.EstimatedTax))
	fmt.Fprintf(&b, "%-22s %12s\n", "Estimated net", FormatAmount(r.EstimatedNetPay.Round(2)))

	content := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())

	if m.status != "" {
		content += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

// Messages

type shiftSavedMsg struct {
	merged bool
	err    error
}

// saveCmd records the gross pay and paid hours through the income merge path.
func (m ShiftModel) saveCmd() tea.Cmd {
	if m.result == nil {
		return nil
	}

	gross := m.result.GrossPay.Round(2)
	hours := m.result.PaidHours
	date := m.result.Date

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.incomes.Add(ctx, income.AddParams{
			Date:       date,
			Coles:      gross,
			ColesHours: &hours,
		})
		if err != nil {
			return shiftSavedMsg{err: err}
		}

		return shiftSavedMsg{merged: res.Merged}
	}
}

