package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
)

const dbTimeout = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// FormatAmount renders a dollar amount as "$1,234.50".
func FormatAmount(d decimal.Decimal) string {
	return amount.Format(d)
}

func FormatDate(t time.Time) string {
	return calendar.FormatDate(t)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// validateAmount accepts blank input and anything amount.Parse reads.
func validateAmount(s string) error {
	_, err := amount.Parse(s)
	return err
}
