// Package export writes the financial report and the record timeline to disk.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/report"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

type Kind string

const (
	KindReport Kind = "report"
	KindCSV    Kind = "csv"
)

// Item is one file written by an export.
type Item struct {
	Kind Kind
	Path string
	Rows int
}

// Source supplies the report and timeline for a window. overview.Service
// satisfies it, so exported totals match the dashboard.
type Source interface {
	Report(ctx context.Context, w summary.Window) (report.Report, error)
	Timeline(ctx context.Context, w summary.Window) ([]summary.Row, error)
}

// Result is the report that was exported and the files written for it.
type Result struct {
	Report report.Report
	Items  []Item
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Export writes financial-report-YYYY-MM-DD.pdf and records-YYYY-MM-DD.csv
// for the rows inside w to outputDir, creating it if needed.
func (s *Service) Export(ctx context.Context, w summary.Window, outputDir string) (*Result, error) {
	rep, err := s.source.Report(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	rows, err := s.source.Timeline(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("loading timeline: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	pdfPath := filepath.Join(outputDir, rep.FileName())
	if err := writePDF(pdfPath, rep); err != nil {
		return nil, err
	}

	csvPath := filepath.Join(outputDir, fmt.Sprintf("records-%s.csv", calendar.FormatDate(rep.GeneratedAt)))
	if err := writeCSV(csvPath, rows); err != nil {
		return nil, err
	}

	return &Result{
		Report: rep,
		Items: []Item{
			{Kind: KindReport, Path: pdfPath, Rows: len(rep.Income) + len(rep.Entries) + len(rep.Expenses)},
			{Kind: KindCSV, Path: csvPath, Rows: len(rows)},
		},
	}, nil
}

func writePDF(path string, rep report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := report.RenderPDF(f, rep); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return f.Close()
}

func writeCSV(path string, rows []summary.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}

	return f.Close()
}

// WriteCSV writes rows as Date,Type,Description,Amount. Amounts are signed
// plain decimals so spreadsheets can sum them.
func WriteCSV(w io.Writer, rows []summary.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Type", "Description", "Amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range rows {
		record := []string{calendar.FormatDate(r.Date), string(r.Kind), r.Description, r.Amount.StringFixed(2)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// GenerateSummary renders the report's headline figures and the written
// files as plain text, one per line.
func (s *Service) GenerateSummary(res *Result) string {
	var sb strings.Builder

	rep := res.Report

	for _, line := range rep.SummaryLines {
		sb.WriteString(fmt.Sprintf("* %s: %s\n", line.Label, line.Value))
	}

	if !rep.Summary.WeeklyTarget.IsZero() {
		sb.WriteString(fmt.Sprintf("* Remaining to Target: %s\n", amount.Format(rep.Summary.Remaining)))
	}

	sb.WriteString("\n")

	for _, item := range res.Items {
		sb.WriteString(fmt.Sprintf("%s (%d rows) -> %s\n", item.Kind, item.Rows, filepath.Base(item.Path)))
	}

	return sb.String()
}
