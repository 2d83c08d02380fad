package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

type addKind int

const (
	addKindIncome addKind = iota
	addKindExpense
)

// AddModel is the form for a day's income or a single expense.
type AddModel struct {
	CommonModel
	incomes  *income.Service
	expenses *expense.Service
	cal      *calendar.Calendar

	kind   addKind
	form   *huh.Form
	done   bool
	status string

	in *addForm
}

type addForm struct {
	date       string
	doordash   string
	ubereats   string
	didi       string
	coles      string
	colesHours string
	tips       string
	name       string
	amount     string
}

func NewAddIncomeModel(incomes *income.Service, cal *calendar.Calendar) AddModel {
	m := AddModel{incomes: incomes, cal: cal, kind: addKindIncome}
	m.reset()

	return m
}

func NewAddExpenseModel(expenses *expense.Service, cal *calendar.Calendar) AddModel {
	m := AddModel{expenses: expenses, cal: cal, kind: addKindExpense}
	m.reset()

	return m
}

func (m *AddModel) reset() {
	m.in = &addForm{date: FormatDate(m.cal.Today())}
	m.done = false
	m.status = ""

	if m.kind == addKindExpense {
		m.form = m.buildExpenseForm()
	} else {
		m.form = m.buildIncomeForm()
	}
}

func (m AddModel) Title() string {
	if m.kind == addKindExpense {
		return "Add Expense"
	}

	return "Add Income"
}

func (m AddModel) ShortHelp() string {
	if m.done {
		return "n: add another | Esc: back"
	}

	return "Navigate form | Esc: back"
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) validateDate(s string) error {
	_, err := m.cal.ParseDate(s)
	return err
}

func (m AddModel) buildIncomeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("date").Title("Date").Placeholder("YYYY-MM-DD").Value(&m.in.date).Validate(m.validateDate),
			huh.NewInput().Key("doordash").Title("DoorDash").Placeholder("0.00").Value(&m.in.doordash).Validate(validateAmount),
			huh.NewInput().Key("ubereats").Title("Uber Eats").Placeholder("0.00").Value(&m.in.ubereats).Validate(validateAmount),
			huh.NewInput().Key("didi").Title("DiDi").Placeholder("0.00").Value(&m.in.didi).Validate(validateAmount),
			huh.NewInput().Key("tips").Title("Tips").Placeholder("0.00").Value(&m.in.tips).Validate(validateAmount),
		).Title("Delivery"),
		huh.NewGroup(
			huh.NewInput().Key("coles").Title("Coles gross").Placeholder("0.00").Value(&m.in.coles).Validate(validateAmount),
			huh.NewInput().Key("coles_hours").Title("Coles hours").Placeholder("optional").Value(&m.in.colesHours).Validate(validateAmount),
		).Title("Coles"),
	).WithWidth(45).WithShowHelp(false)
}

func (m AddModel) buildExpenseForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("date").Title("Date").Placeholder("YYYY-MM-DD").Value(&m.in.date).Validate(m.validateDate),
			huh.NewInput().
				Key("name").
				Title("Description").
				Value(&m.in.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description cannot be empty")
					}

					return nil
				}),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.in.amount).
				Validate(func(s string) error {
					d, err := amount.Parse(s)
					if err != nil {
						return err
					}

					if d.IsZero() {
						return errors.New("amount is required")
					}

					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case addSavedMsg:
		m.done = true
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		} else {
			m.status = okStyle.Render(msg.text)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.done {
			if msg.String() == "n" {
				m.reset()
				return m, m.form.Init()
			}

			return m, nil
		}
	}

	if m.done || m.form.State == huh.StateCompleted {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m AddModel) View() string {
	if m.done {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n" + faintStyle.Render(m.ShortHelp()))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		titleStyle.Render(m.Title()) + "\n\n" + m.form.View() + "\n" + faintStyle.Render(m.ShortHelp()),
	)
}

// Messages

type addSavedMsg struct {
	text string
	err  error
}

func (m AddModel) saveCmd() tea.Cmd {
	in := *m.in

	return func() tea.Msg {
		date, err := m.cal.ParseDate(in.date)
		if err != nil {
			return addSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if m.kind == addKindExpense {
			e, err := m.expenses.Create(ctx, expense.CreateParams{
				Date:   date,
				Name:   in.name,
				Amount: amount.Coerce(in.amount),
			})
			if err != nil {
				return addSavedMsg{err: err}
			}

			return addSavedMsg{text: fmt.Sprintf("Saved %s (%s) on %s.", e.Name, FormatAmount(e.Amount), FormatDate(e.Date))}
		}

		params := income.AddParams{
			Date:     date,
			DoorDash: amount.Coerce(in.doordash),
			UberEats: amount.Coerce(in.ubereats),
			DiDi:     amount.Coerce(in.didi),
			Coles:    amount.Coerce(in.coles),
			Tips:     amount.Coerce(in.tips),
		}

		if hours := amount.Coerce(in.colesHours); !hours.IsZero() {
			params.ColesHours = &hours
		}

		res, err := m.incomes.Add(ctx, params)
		if err != nil {
			return addSavedMsg{err: err}
		}

		verb := "Saved"
		if res.Merged {
			verb = "Merged into"
		}

		return addSavedMsg{text: fmt.Sprintf("%s the record for %s (total %s).", verb, FormatDate(res.Record.Date), FormatAmount(res.Record.Total()))}
	}
}
