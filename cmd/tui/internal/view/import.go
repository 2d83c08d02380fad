package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gigzen/internal/importer"
	"github.com/MrJamesThe3rd/gigzen/internal/importer/earnings"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateParsing
	importStatePreview
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	path       string
	data       []byte

	batch       *earnings.Batch
	previewList list.Model

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".CSV"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Earnings" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStatePreview:
		return "Enter: import | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case previewResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.data = msg.data
		m.batch = msg.batch
		m.state = importStatePreview
		m.previewList = newPreviewList(msg.batch)

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = resultStatus(msg.result)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.state = importStateParsing
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.previewCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateResult:
		m.state = importStateFilePick
		m.batch = nil
		m.data = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing %d rows...", m.batch.Len())

		return m, m.importCmd(m.data)
	}

	var cmd tea.Cmd
	m.previewList, cmd = m.previewList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select earnings CSV (daily, universal or expenses layout):\n\n" + m.filePicker.View(),
		)
	case importStateParsing, importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		header := faintStyle.Render(fmt.Sprintf("%s layout, %s, %d rows, %d skipped",
			m.batch.Kind, m.batch.Charset, m.batch.Len(), m.batch.Skipped))

		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.previewList.View())
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(okStyle.Render(m.status) + "\n\n(Esc to go back)")
}

func resultStatus(r *importer.Result) string {
	switch r.Kind {
	case earnings.KindDaily:
		return fmt.Sprintf("Imported %d days (%d merged into existing days), %d skipped.", r.Records, r.Merged, r.Skipped)
	case earnings.KindUniversal:
		return fmt.Sprintf("Imported %d income entries, %d skipped.", r.Entries, r.Skipped)
	}

	return fmt.Sprintf("Imported %d expenses, %d skipped.", r.Expenses, r.Skipped)
}

// Messages

type previewResultMsg struct {
	data  []byte
	batch *earnings.Batch
	err   error
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return previewResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		batch, err := m.importService.Preview(ctx, bytes.NewReader(data))
		if err != nil {
			return previewResultMsg{err: err}
		}

		return previewResultMsg{data: data, batch: batch}
	}
}

func (m ImportModel) importCmd(data []byte) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		res, err := m.importService.Import(ctx, bytes.NewReader(data))

		return importResultMsg{result: res, err: err}
	}
}

// Preview list

type previewItem struct {
	date   time.Time
	title  string
	detail string
}

func (i previewItem) Title() string       { return i.title }
func (i previewItem) Description() string { return i.detail }
func (i previewItem) FilterValue() string { return i.title }

func newPreviewList(b *earnings.Batch) list.Model {
	items := make([]list.Item, 0, b.Len())

	for _, r := range b.Daily {
		items = append(items, previewItem{
			date:  r.Date,
			title: "Daily takings",
			detail: fmt.Sprintf("DoorDash %s  Uber Eats %s  DiDi %s  Coles %s  Tips %s",
				FormatAmount(r.DoorDash), FormatAmount(r.UberEats), FormatAmount(r.DiDi),
				FormatAmount(r.Coles), FormatAmount(r.Tips)),
		})
	}

	for _, e := range b.Entries {
		items = append(items, previewItem{date: e.Date, title: e.Source, detail: fmt.Sprintf("%s  %s", e.IncomeType.Label(), FormatAmount(e.Amount))})
	}

	for _, e := range b.Expenses {
		items = append(items, previewItem{date: e.Date, title: e.Description, detail: FormatAmount(e.Amount.Neg())})
	}

	l := list.New(items, previewDelegate{}, 80, 20)
	l.Title = "Rows to import"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

type previewDelegate struct{}

func (d previewDelegate) Height() int                             { return 2 }
func (d previewDelegate) Spacing() int                            { return 0 }
func (d previewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d previewDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(previewItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	line1 := fmt.Sprintf("%s%s  %s", cursor, FormatDate(item.date), item.title)
	if index == m.Index() {
		line1 = activeStyle(line1)
	}

	fmt.Fprintf(w, "%s\n    %s\n", line1, faintStyle.Render(item.detail))
}
