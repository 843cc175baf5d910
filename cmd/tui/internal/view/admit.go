package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/patient"
)

const patientSearchLimit = 20

type admitState int

const (
	admitStateSearch admitState = iota
	admitStateLoading
	admitStateChoose
	admitStateSaving
	admitStateResult
)

type admitInput struct {
	term      string
	patientID uuid.UUID
	bedID     uuid.UUID
}

// AdmitModel walks the desk through finding a patient and putting them in a
// free bed.
type AdmitModel struct {
	CommonModel
	svc Services

	state admitState
	form  *huh.Form
	in    *admitInput

	patients []*patient.Patient
	beds     []*bed.Bed
	status   string
}

func NewAdmitModel(svc Services) AdmitModel {
	m := AdmitModel{svc: svc, in: &admitInput{}}
	m.form = m.searchForm()

	return m
}

func (m AdmitModel) Title() string { return "New Admission" }

func (m AdmitModel) ShortHelp() string {
	return "Enter: next | Esc: back"
}

func (m AdmitModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AdmitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case admitOptionsMsg:
		if msg.err != nil {
			m.state = admitStateResult
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.patients) == 0 {
			return m.restart(fmt.Sprintf("No patients match %q.", m.in.term))
		}

		if len(msg.beds) == 0 {
			m.state = admitStateResult
			m.status = "No beds are available."

			return m, nil
		}

		m.patients = msg.patients
		m.beds = msg.beds
		m.form = m.chooseForm()
		m.state = admitStateChoose

		return m, m.form.Init()

	case admitResultMsg:
		if msg.err != nil {
			m.state = admitStateResult
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		id := msg.id

		return m, func() tea.Msg { return OpenAdmissionMsg{ID: id} }
	}

	if m.state != admitStateSearch && m.state != admitStateChoose {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == admitStateSearch {
		m.state = admitStateLoading
		return m, m.loadOptionsCmd()
	}

	m.state = admitStateSaving

	return m, m.admitCmd()
}

func (m AdmitModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case admitStateChoose, admitStateResult:
		return m.restart("")
	}

	return m, Back
}

func (m AdmitModel) restart(status string) (tea.Model, tea.Cmd) {
	m.state = admitStateSearch
	m.status = status
	m.form = m.searchForm()

	return m, m.form.Init()
}

func (m AdmitModel) searchForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("term").
				Title("Find patient").
				Placeholder("name or part of it").
				Value(&m.in.term).
				Validate(validateRequired("search term")),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AdmitModel) chooseForm() *huh.Form {
	patients := make([]huh.Option[uuid.UUID], 0, len(m.patients))
	for _, p := range m.patients {
		patients = append(patients, huh.NewOption(fmt.Sprintf("%s  (%s)", p.FullName, p.ID.String()[:8]), p.ID))
	}

	beds := make([]huh.Option[uuid.UUID], 0, len(m.beds))
	for _, b := range m.beds {
		beds = append(beds, huh.NewOption(fmt.Sprintf("%s  [%s]  %s/day", b.Label, b.Ward, FormatAmount(b.DailyRate)), b.ID))
	}

	m.in.patientID = m.patients[0].ID
	m.in.bedID = m.beds[0].ID

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Key("patient").
				Title("Patient").
				Options(patients...).
				Value(&m.in.patientID),
			huh.NewSelect[uuid.UUID]().
				Key("bed").
				Title("Bed").
				Options(beds...).
				Height(8).
				Value(&m.in.bedID),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m AdmitModel) View() string {
	var body string

	switch m.state {
	case admitStateLoading:
		body = "Searching..."
	case admitStateSaving:
		body = "Admitting..."
	case admitStateResult:
		body = m.status + "\n\n(Esc to start over)"
	default:
		body = m.form.View()
		if m.status != "" {
			body = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + body
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(panel("New Admission", body))
}

// Messages

type admitOptionsMsg struct {
	patients []*patient.Patient
	beds     []*bed.Bed
	err      error
}

func (m AdmitModel) loadOptionsCmd() tea.Cmd {
	svc, term := m.svc, m.in.term

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		patients, err := svc.Patients.Search(ctx, term, patientSearchLimit)
		if err != nil {
			return admitOptionsMsg{err: err}
		}

		beds, err := svc.Beds.List(ctx, bed.StatusAvailable)
		if err != nil {
			return admitOptionsMsg{err: err}
		}

		return admitOptionsMsg{patients: patients, beds: beds}
	}
}

type admitResultMsg struct {
	id  uuid.UUID
	err error
}

func (m AdmitModel) admitCmd() tea.Cmd {
	c, patientID, bedID := m.svc.Admissions, m.in.patientID, m.in.bedID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		a, err := c.Admit(ctx, patientID, bedID)
		if err != nil {
			return admitResultMsg{err: err}
		}

		return admitResultMsg{id: a.ID}
	}
}
