package overview

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

type windowResponse struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type sourceResponse struct {
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type setAsideResponse struct {
	SalaryWagesTax  decimal.Decimal `json:"salary_wages_tax"`
	SelfEmployedTax decimal.Decimal `json:"self_employed_tax"`
	TotalTax        decimal.Decimal `json:"total_tax"`
}

type summaryResponse struct {
	Window windowResponse `json:"window"`

	DoorDash   decimal.Decimal `json:"doordash"`
	UberEats   decimal.Decimal `json:"ubereats"`
	DiDi       decimal.Decimal `json:"didi"`
	Coles      decimal.Decimal `json:"coles"`
	Tips       decimal.Decimal `json:"tips"`
	ColesHours decimal.Decimal `json:"coles_hours"`

	GigIncome  decimal.Decimal `json:"gig_income"`
	ColesGross decimal.Decimal `json:"coles_gross"`
	ColesTax   decimal.Decimal `json:"coles_tax"`
	ColesNet   decimal.Decimal `json:"coles_net"`

	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
	WeeklyTarget  decimal.Decimal `json:"weekly_target"`
	Remaining     decimal.Decimal `json:"remaining"`
	DiDiGST       decimal.Decimal `json:"didi_gst"`
	GigSetAside   decimal.Decimal `json:"gig_set_aside"`

	EntryIncome        decimal.Decimal  `json:"entry_income"`
	EmploymentIncome   decimal.Decimal  `json:"employment_income"`
	SelfEmployedIncome decimal.Decimal  `json:"self_employed_income"`
	BySource           []sourceResponse `json:"by_source"`
	SetAside           setAsideResponse `json:"set_aside"`

	RecordCount  int `json:"record_count"`
	EntryCount   int `json:"entry_count"`
	ExpenseCount int `json:"expense_count"`
}

func toSummaryResponse(s summary.Summary) summaryResponse {
	resp := summaryResponse{
		DoorDash:           s.DoorDash,
		UberEats:           s.UberEats,
		DiDi:               s.DiDi,
		Coles:              s.Coles,
		Tips:               s.Tips,
		ColesHours:         s.ColesHours,
		GigIncome:          s.GigIncome,
		ColesGross:         s.ColesGross,
		ColesTax:           s.ColesTax,
		ColesNet:           s.ColesNet,
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		NetBalance:         s.NetBalance,
		WeeklyTarget:       s.WeeklyTarget,
		Remaining:          s.Remaining,
		DiDiGST:            s.DiDiGST,
		GigSetAside:        s.GigSetAside,
		EntryIncome:        s.EntryIncome,
		EmploymentIncome:   s.EmploymentIncome,
		SelfEmployedIncome: s.SelfEmployedIncome,
		BySource:           make([]sourceResponse, len(s.BySource)),
		SetAside: setAsideResponse{
			SalaryWagesTax:  s.SetAside.SalaryWagesTax,
			SelfEmployedTax: s.SetAside.SelfEmployedTax,
			TotalTax:        s.SetAside.TotalTax,
		},
		RecordCount:  s.RecordCount,
		EntryCount:   s.EntryCount,
		ExpenseCount: s.ExpenseCount,
	}

	if !s.Window.IsAll() {
		resp.Window = windowResponse{Start: calendar.FormatDate(s.Window.Start), End: calendar.FormatDate(s.Window.End)}
	}

	for i, src := range s.BySource {
		resp.BySource[i] = sourceResponse{Source: src.Source, Amount: src.Amount, Count: src.Count}
	}

	return resp
}

type rowResponse struct {
	ID          uuid.UUID       `json:"id"`
	Kind        summary.RowKind `json:"kind"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func toRowResponse(r summary.Row) rowResponse {
	return rowResponse{
		ID:          r.ID,
		Kind:        r.Kind,
		Date:        calendar.FormatDate(r.Date),
		Description: r.Description,
		Amount:      r.Amount,
	}
}
