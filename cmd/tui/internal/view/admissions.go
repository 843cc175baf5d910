package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	patientStore "github.com/MrJamesThe3rd/ipdledger/internal/patient/store"
)

// Services bundles what the billing desk screens call into.
type Services struct {
	Admissions *admission.Controller
	Beds       *bed.Registry
	Patients   *patientStore.Store
	Catalog    *catalog.Catalog
}

// OpenAdmissionMsg asks the shell to show the ledger of one admission.
type OpenAdmissionMsg struct {
	ID uuid.UUID
}

type admissionsState int

const (
	admissionsStateBrowse admissionsState = iota
	admissionsStateConfirm
)

var statusFilters = []admission.Status{"", admission.StatusActive, admission.StatusDischarged}

type AdmissionsModel struct {
	CommonModel
	svc Services

	state      admissionsState
	table      table.Model
	admissions []*admission.Admission
	beds       map[uuid.UUID]*bed.Bed
	form       *huh.Form
	confirmed  *bool

	filterIdx int
	loading   bool
	err       error
	status    string
}

func NewAdmissionsModel(svc Services) AdmissionsModel {
	t := newTable([]table.Column{
		{Title: "Admitted", Width: 17},
		{Title: "Status", Width: 11},
		{Title: "Patient", Width: 10},
		{Title: "Bed", Width: 16},
		{Title: "Charges", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Balance", Width: 12},
	})

	return AdmissionsModel{
		svc:       svc,
		table:     t,
		loading:   true,
		confirmed: new(bool),
	}
}

func (m AdmissionsModel) Title() string { return "Admissions" }

func (m AdmissionsModel) ShortHelp() string {
	if m.state == admissionsStateConfirm {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | Enter: open ledger | x: discharge | f: status filter | r: refresh"
}

func (m AdmissionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AdmissionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAdmissionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.admissions = msg.admissions
		m.beds = msg.beds
		m.refreshTable()

		return m, nil

	case dischargeResultMsg:
		m.state = admissionsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error discharging: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Discharged. Final balance %s", FormatAmount(msg.admission.BalanceDue))
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case admissionsStateBrowse:
		return m.updateBrowse(msg)
	case admissionsStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m AdmissionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
			m.loading = true

			return m, m.loadCmd()
		case "enter":
			a := m.selected()
			if a == nil {
				return m, nil
			}

			id := a.ID

			return m, func() tea.Msg { return OpenAdmissionMsg{ID: id} }
		case "x":
			return m.confirmDischarge()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AdmissionsModel) selected() *admission.Admission {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.admissions) {
		return nil
	}

	return m.admissions[idx]
}

func (m AdmissionsModel) confirmDischarge() (tea.Model, tea.Cmd) {
	a := m.selected()
	if a == nil || !a.IsActive() {
		m.status = "Select an active admission to discharge."
		return m, nil
	}

	*m.confirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("discharge").
				Title(fmt.Sprintf("Discharge from %s?", bedLabel(m.beds, a.BedID))).
				Description(fmt.Sprintf("Outstanding balance %s", FormatAmount(a.BalanceDue))).
				Affirmative("Discharge").
				Negative("Cancel").
				Value(m.confirmed),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = admissionsStateConfirm
	m.table.Blur()

	return m, m.form.Init()
}

func (m AdmissionsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = admissionsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !*m.confirmed {
		m.state = admissionsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, dischargeCmd(m.svc.Admissions, m.selected().ID)
}

func (m AdmissionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading admissions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err))
	}

	header := fmt.Sprintf("Filter: [f] Status: %s", activeStyle(filterLabel(statusFilters[m.filterIdx])))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == admissionsStateConfirm && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel("Discharge", m.form.View()))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func filterLabel(s admission.Status) string {
	if s == "" {
		return "All"
	}

	return string(s)
}

func bedLabel(beds map[uuid.UUID]*bed.Bed, id uuid.UUID) string {
	b, ok := beds[id]
	if !ok {
		return id.String()[:8]
	}

	return fmt.Sprintf("%s (%s)", b.Label, b.Ward)
}

func (m *AdmissionsModel) refreshTable() {
	m.table.SetRows(admissionRows(m.admissions, m.beds))
}

func admissionRows(admissions []*admission.Admission, beds map[uuid.UUID]*bed.Bed) []table.Row {
	rows := make([]table.Row, 0, len(admissions))
	for _, a := range admissions {
		rows = append(rows, table.Row{
			FormatDateTime(a.AdmittedAt),
			string(a.Status),
			a.PatientID.String()[:8],
			bedLabel(beds, a.BedID),
			FormatAmount(a.TotalCharges),
			FormatAmount(a.TotalPaid),
			FormatAmount(a.BalanceDue),
		})
	}

	return rows
}

// Messages

type loadAdmissionsMsg struct {
	admissions []*admission.Admission
	beds       map[uuid.UUID]*bed.Bed
	err        error
}

func (m AdmissionsModel) loadCmd() tea.Cmd {
	filter := admission.ListFilter{Status: statusFilters[m.filterIdx]}
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		admissions, err := svc.Admissions.List(ctx, filter)
		if err != nil {
			return loadAdmissionsMsg{err: err}
		}

		beds, err := svc.Beds.List(ctx, "")
		if err != nil {
			return loadAdmissionsMsg{err: err}
		}

		byID := make(map[uuid.UUID]*bed.Bed, len(beds))
		for _, b := range beds {
			byID[b.ID] = b
		}

		return loadAdmissionsMsg{admissions: admissions, beds: byID}
	}
}

type dischargeResultMsg struct {
	admission *admission.Admission
	err       error
}

func dischargeCmd(c *admission.Controller, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		a, err := c.Discharge(ctx, id)

		return dischargeResultMsg{admission: a, err: err}
	}
}
