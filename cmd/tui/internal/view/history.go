package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/patient"
)

type historyState int

const (
	historyStateSearch historyState = iota
	historyStatePatients
	historyStateWindow
	historyStateList
)

// txItem wraps a ledger transaction to implement list.Item.
type txItem struct {
	tx *ledger.Transaction
}

func (i txItem) Title() string {
	amount := FormatAmount(i.tx.Amount)
	if i.tx.Kind == ledger.KindPayment {
		amount = "-" + amount
	}

	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.tx.Category))

	return fmt.Sprintf("%s  %12s  %s  %s", FormatDateTime(i.tx.CreatedAt), amount, status, i.tx.Description)
}

func (i txItem) Description() string {
	if i.tx.PaymentMode != "" {
		return fmt.Sprintf("Paid by %s", i.tx.PaymentMode)
	}

	return ""
}

func (i txItem) FilterValue() string {
	return i.tx.Category + " " + i.tx.Description
}

// patientItem wraps a patient to implement list.Item.
type patientItem struct {
	p *patient.Patient
}

func (i patientItem) Title() string       { return i.p.FullName }
func (i patientItem) Description() string { return i.p.ID.String() }
func (i patientItem) FilterValue() string { return i.p.FullName }

// HistoryModel browses a patient's ledger across any window, independent of
// admissions.
type HistoryModel struct {
	CommonModel
	svc Services

	state    historyState
	search   textinput.Model
	patients list.Model
	picker   WindowPicker
	txs      list.Model

	selected *patient.Patient
	window   ledger.Window
	status   string
}

func NewHistoryModel(svc Services) HistoryModel {
	ti := textinput.New()
	ti.Placeholder = "patient name"
	ti.Prompt = "Find patient: "
	ti.Width = 40
	ti.Focus()

	pl := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	pl.Title = "Patients"
	pl.SetFilteringEnabled(false)

	tl := list.New([]list.Item{}, txItemDelegate{}, 0, 0)
	tl.Title = "Ledger"
	tl.SetShowStatusBar(true)
	tl.SetFilteringEnabled(true)

	return HistoryModel{
		svc:      svc,
		search:   ti,
		patients: pl,
		picker:   NewWindowPicker(),
		txs:      tl,
	}
}

func (m HistoryModel) Title() string { return "Patient Ledger" }

func (m HistoryModel) ShortHelp() string {
	switch m.state {
	case historyStatePatients:
		return "Enter: select | Esc: back"
	case historyStateList:
		return "/: filter | Esc: back"
	}

	return "Enter: confirm | Esc: back"
}

func (m HistoryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.patients.SetSize(msg.Width-4, msg.Height-8)
		m.txs.SetSize(msg.Width-4, msg.Height-8)

		return m, nil

	case patientsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		if len(msg.patients) == 0 {
			m.status = "No patients found."
			return m, nil
		}

		items := make([]list.Item, len(msg.patients))
		for i, p := range msg.patients {
			items[i] = patientItem{p: p}
		}

		m.patients.SetItems(items)
		m.status = ""
		m.state = historyStatePatients

		return m, nil

	case WindowSelectedMsg:
		m.window = msg.Window
		m.state = historyStateList

		return m, m.loadLedgerCmd()

	case ledgerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.txs))
		for i, tx := range msg.txs {
			items[i] = txItem{tx: tx}
		}

		m.txs.SetItems(items)
		m.txs.Title = fmt.Sprintf("%s  %s to %s", m.selected.FullName, FormatDate(m.window.From), FormatDate(m.window.To.AddDate(0, 0, -1)))
		m.status = windowTotals(msg.txs)

		return m, nil
	}

	switch m.state {
	case historyStateSearch:
		return m.updateSearch(msg)
	case historyStatePatients:
		return m.updatePatients(msg)
	case historyStateWindow:
		return m.updateWindow(msg)
	case historyStateList:
		return m.updateList(msg)
	}

	return m, nil
}

func (m HistoryModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			if m.search.Value() == "" {
				return m, nil
			}

			return m, m.searchCmd()
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m HistoryModel) updatePatients(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = historyStateSearch
			return m, nil
		case tea.KeyEnter:
			item, ok := m.patients.SelectedItem().(patientItem)
			if !ok {
				return m, nil
			}

			m.selected = item.p
			m.picker = NewWindowPicker()
			m.state = historyStateWindow

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.patients, cmd = m.patients.Update(msg)

	return m, cmd
}

func (m HistoryModel) updateWindow(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			m.state = historyStatePatients
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m HistoryModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if m.txs.FilterState() != list.Filtering {
			m.state = historyStateWindow
			m.status = ""

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.txs, cmd = m.txs.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	var body string

	switch m.state {
	case historyStateSearch:
		body = m.search.View() + "\n\n(Enter to search, Esc to back)"
	case historyStatePatients:
		body = m.patients.View()
	case historyStateWindow:
		body = fmt.Sprintf("Patient: %s\n\n%s", activeStyle(m.selected.FullName), m.picker.View())
	case historyStateList:
		body = m.txs.View()
	}

	if m.status != "" {
		body = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + body
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

// windowTotals summarizes the completed transactions of a window.
func windowTotals(txs []*ledger.Transaction) string {
	var charges, paid int64

	for _, tx := range txs {
		if tx.Status != ledger.StatusCompleted {
			continue
		}

		switch tx.Kind {
		case ledger.KindCharge:
			charges += tx.Amount
		case ledger.KindPayment:
			paid += tx.Amount
		}
	}

	return fmt.Sprintf("%d transactions | charges %s | paid %s | net %s",
		len(txs), FormatAmount(charges), FormatAmount(paid), FormatAmount(charges-paid))
}

// Messages

type patientsMsg struct {
	patients []*patient.Patient
	err      error
}

func (m HistoryModel) searchCmd() tea.Cmd {
	store, term := m.svc.Patients, m.search.Value()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		patients, err := store.Search(ctx, term, patientSearchLimit)

		return patientsMsg{patients: patients, err: err}
	}
}

type ledgerMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m HistoryModel) loadLedgerCmd() tea.Cmd {
	c, patientID, window := m.svc.Admissions, m.selected.ID, m.window

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := c.GetLedger(ctx, patientID, window)

		return ledgerMsg{txs: txs, err: err}
	}
}

// txItemDelegate renders ledger rows in the list.
type txItemDelegate struct{}

func (d txItemDelegate) Height() int                             { return 2 }
func (d txItemDelegate) Spacing() int                            { return 0 }
func (d txItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d txItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(txItem)
	if !ok {
		return
	}

	title := i.Title()
	desc := i.Description()

	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}
