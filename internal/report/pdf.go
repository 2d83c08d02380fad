package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
)

const (
	marginLeft  = 20.0
	pageWidth   = 170.0
	rowHeight   = 7.0
	sectionGap  = 12.0
	breakBefore = 250.0
)

type rgb struct{ r, g, b int }

var (
	colorHeading = rgb{44, 62, 80}
	colorBody    = rgb{52, 73, 94}
	colorStripe  = rgb{245, 247, 250}
	colorSummary = rgb{52, 152, 219}
	colorIncome  = rgb{46, 204, 113}
	colorExpense = rgb{231, 76, 60}
	colorEntries = rgb{155, 89, 182}
)

// RenderPDF writes the report as an A4 PDF.
func RenderPDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 20, marginLeft)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	setText(pdf, colorHeading)
	pdf.Cell(0, 10, Title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorBody)
	pdf.Cell(0, 6, "Generated on: "+r.GeneratedAt.Format("January 02, 2006"))
	pdf.Ln(6)

	if !r.Window.IsAll() {
		pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", r.Window.Start.Format("Jan 02, 2006"), r.Window.End.Format("Jan 02, 2006")))
		pdf.Ln(6)
	}

	pdf.Ln(sectionGap / 2)

	summaryRows := make([][]string, len(r.SummaryLines))
	for i, l := range r.SummaryLines {
		summaryRows[i] = []string{l.Label, l.Value}
	}

	section(pdf, "Summary")
	table(pdf, colorSummary, []string{"Category", "Amount"}, []float64{110, 60}, summaryRows)

	if len(r.Income) > 0 {
		rows := make([][]string, len(r.Income))
		for i, in := range r.Income {
			rows[i] = []string{
				in.Date.Format("Jan 02, 2006"),
				amount.Format(in.DoorDash),
				amount.Format(in.UberEats),
				amount.Format(in.DiDi),
				amount.Format(in.Coles),
				amount.Format(in.Tips),
				amount.Format(in.Total),
			}
		}

		section(pdf, "Income Details")
		table(pdf, colorIncome,
			[]string{"Date", "DoorDash", "UberEats", "DiDi", "Coles", "Tips", "Total"},
			[]float64{32, 23, 23, 23, 23, 23, 23},
			rows)
	}

	if len(r.Entries) > 0 {
		rows := make([][]string, len(r.Entries))
		for i, e := range r.Entries {
			rows[i] = []string{e.Date.Format("Jan 02, 2006"), e.Source, e.Type, amount.Format(e.Amount)}
		}

		section(pdf, "Other Income")
		table(pdf, colorEntries, []string{"Date", "Source", "Type", "Amount"}, []float64{35, 55, 40, 40}, rows)
	}

	if len(r.Expenses) > 0 {
		rows := make([][]string, len(r.Expenses))
		for i, e := range r.Expenses {
			rows[i] = []string{e.Date.Format("Jan 02, 2006"), e.Description, amount.Format(e.Amount)}
		}

		section(pdf, "Expense Details")
		table(pdf, colorExpense, []string{"Date", "Description", "Amount"}, []float64{35, 95, 40}, rows)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

// section starts a titled block, moving to a new page when too close to the bottom.
func section(pdf *gofpdf.Fpdf, title string) {
	if pdf.GetY() > breakBefore {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 14)
	setText(pdf, colorHeading)
	pdf.Cell(pageWidth, 8, title)
	pdf.Ln(10)
}

func table(pdf *gofpdf.Fpdf, head rgb, header []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(head.r, head.g, head.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(200, 200, 200)

	for i, h := range header {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}

	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorBody)
	pdf.SetFillColor(colorStripe.r, colorStripe.g, colorStripe.b)

	for n, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 && len(cell) > 0 && (cell[0] == '$' || cell[0] == '-') {
				align = "R"
			}

			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, align, n%2 == 1, 0, "")
		}

		pdf.Ln(-1)
	}

	pdf.Ln(sectionGap)
}
