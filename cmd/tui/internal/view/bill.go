package view

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/statement"
)

type billState int

const (
	billStateBrowse billState = iota
	billStateOrder
	billStatePayment
	billStateAccommodation
	billStateVoid
)

// customService is the select value for an item that is not on the price list.
const customService = ""

// BillModel shows the running statement of one admission and records new
// charges, payments and voids against it.
type BillModel struct {
	CommonModel
	svc Services
	id  uuid.UUID

	state     billState
	table     table.Model
	statement *statement.Statement
	form      *huh.Form

	loading bool
	err     error
	status  string

	in *billInput
}

// billInput holds form bindings shared by every copy of the model.
type billInput struct {
	service  string
	name     string
	price    string
	quantity string
	amount   string
	mode     ledger.PaymentMode
	category string
	note     string
	days     string
	confirm  bool
}

func NewBillModel(svc Services, id uuid.UUID) BillModel {
	t := newTable([]table.Column{
		{Title: "Date", Width: 17},
		{Title: "Category", Width: 15},
		{Title: "Description", Width: 34},
		{Title: "Charge", Width: 11},
		{Title: "Payment", Width: 11},
		{Title: "Balance", Width: 12},
		{Title: "", Width: 5},
	})

	return BillModel{
		svc:     svc,
		id:      id,
		table:   t,
		loading: true,
		in:      &billInput{},
	}
}

func (m BillModel) Title() string { return "Admission Bill" }

func (m BillModel) ShortHelp() string {
	if m.state != billStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | o: order service | a: bed days | p: payment | v: void | r: refresh"
}

func (m BillModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBillMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.statement = msg.statement
		m.table.SetRows(statementRows(msg.statement))

		return m, nil

	case billActionMsg:
		m.closeForm()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.summary

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	if m.state == billStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m BillModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "o":
			return m.openForm(billStateOrder, m.orderForm())
		case "a":
			return m.openForm(billStateAccommodation, m.accommodationForm())
		case "p":
			return m.openForm(billStatePayment, m.paymentForm())
		case "v":
			line := m.selectedLine()
			if line == nil || line.Void {
				m.status = "Select a completed transaction to void."
				return m, nil
			}

			return m.openForm(billStateVoid, m.voidForm(line))
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BillModel) selectedLine() *statement.Line {
	if m.statement == nil {
		return nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.statement.Lines) {
		return nil
	}

	return &m.statement.Lines[idx]
}

func (m BillModel) openForm(state billState, form *huh.Form) (tea.Model, tea.Cmd) {
	m.form = form
	m.state = state
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m *BillModel) closeForm() {
	m.state = billStateBrowse
	m.form = nil
	m.table.Focus()
}

func (m BillModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case billStateOrder:
		return m, m.orderCmd()
	case billStatePayment:
		return m, m.paymentCmd()
	case billStateAccommodation:
		return m, m.accommodationCmd()
	case billStateVoid:
		if !m.in.confirm {
			m.closeForm()
			return m, nil
		}

		return m, m.voidCmd()
	}

	return m, nil
}

func (m BillModel) orderForm() *huh.Form {
	m.in.service = customService
	m.in.name = ""
	m.in.price = ""
	m.in.quantity = "1"

	options := []huh.Option[string]{huh.NewOption("Other (enter name and price)", customService)}
	for _, item := range m.svc.Catalog.List() {
		label := fmt.Sprintf("%s  [%s]  %s", item.Name, item.Category, FormatAmount(item.UnitPrice))
		options = append(options, huh.NewOption(label, item.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("service").
				Title("Service").
				Options(options...).
				Height(10).
				Value(&m.in.service),
			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.in.quantity).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Service name").
				Value(&m.in.name).
				Validate(validateRequired("service name")),
			huh.NewInput().
				Key("price").
				Title("Unit price").
				Placeholder("0.00").
				Value(&m.in.price).
				Validate(validateAmount),
		).WithHideFunc(func() bool { return m.in.service != customService }),
	).WithWidth(50).WithShowHelp(false)
}

func (m BillModel) paymentForm() *huh.Form {
	m.in.amount = ""
	m.in.mode = ledger.PaymentCash
	m.in.category = ledger.CategoryPartialPayment
	m.in.note = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.in.amount).
				Validate(validateAmount),
			huh.NewSelect[ledger.PaymentMode]().
				Key("mode").
				Title("Mode").
				Options(
					huh.NewOption("Cash", ledger.PaymentCash),
					huh.NewOption("Card", ledger.PaymentCard),
					huh.NewOption("UPI", ledger.PaymentUPI),
					huh.NewOption("Bank transfer", ledger.PaymentBankTransfer),
					huh.NewOption("Insurance", ledger.PaymentInsurance),
				).
				Value(&m.in.mode),
			huh.NewSelect[string]().
				Key("category").
				Title("Kind").
				Options(
					huh.NewOption("Partial payment", ledger.CategoryPartialPayment),
					huh.NewOption("Advance payment", ledger.CategoryAdvancePayment),
				).
				Value(&m.in.category),
			huh.NewInput().
				Key("note").
				Title("Note (optional)").
				Value(&m.in.note),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m BillModel) accommodationForm() *huh.Form {
	m.in.days = "1"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("days").
				Title("Bed days to charge").
				Value(&m.in.days).
				Validate(validateCount),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m BillModel) voidForm(line *statement.Line) *huh.Form {
	m.in.confirm = false

	amount := line.Charge
	if line.Kind == ledger.KindPayment {
		amount = line.Payment
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("void").
				Title("Void this transaction?").
				Description(fmt.Sprintf("%s %s", line.Description, FormatAmount(amount))).
				Affirmative("Void").
				Negative("Cancel").
				Value(&m.in.confirm),
		),
	).WithWidth(50).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}

func validateAmount(s string) error {
	v, err := catalog.ParseAmount(s)
	if err != nil {
		return errors.New("enter an amount like 1250.00")
	}

	if v <= 0 {
		return errors.New("amount must be positive")
	}

	return nil
}

func validateCount(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}

	return nil
}

func (m BillModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading bill...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), tableView, m.categoryView())

	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel(m.formTitle(), m.form.View()))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BillModel) formTitle() string {
	switch m.state {
	case billStateOrder:
		return "Order Service"
	case billStatePayment:
		return "Record Payment"
	case billStateAccommodation:
		return "Charge Bed Days"
	case billStateVoid:
		return "Void Transaction"
	}

	return ""
}

func (m BillModel) headerView() string {
	s := m.statement

	stay := fmt.Sprintf("Admitted %s", FormatDateTime(s.AdmittedAt))
	if s.DischargedAt != nil {
		stay += fmt.Sprintf("  |  Discharged %s", FormatDateTime(*s.DischargedAt))
	}

	balance := FormatAmount(s.Totals.BalanceDue)
	if s.Totals.BalanceDue > 0 {
		balance = errorStyle(balance)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Patient %s  |  %s  |  %s\nCharges %s  |  Paid %s  |  Balance due %s",
			s.PatientID.String()[:8],
			activeStyle(string(s.Status)),
			stay,
			FormatAmount(s.Totals.TotalCharges),
			FormatAmount(s.Totals.TotalPaid),
			balance,
		))
}

func (m BillModel) categoryView() string {
	if len(m.statement.ByCategory) == 0 {
		return ""
	}

	categories := make([]string, 0, len(m.statement.ByCategory))
	for c := range m.statement.ByCategory {
		categories = append(categories, c)
	}

	sort.Strings(categories)

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, fmt.Sprintf("%s %s", c, FormatAmount(m.statement.ByCategory[c])))
	}

	return lipgloss.NewStyle().Faint(true).Render(strings.Join(parts, "  ·  "))
}

func statementRows(s *statement.Statement) []table.Row {
	rows := make([]table.Row, 0, len(s.Lines))
	for _, l := range s.Lines {
		charge, payment, flag := "", "", ""
		if l.Charge > 0 {
			charge = FormatAmount(l.Charge)
		}

		if l.Payment > 0 {
			payment = FormatAmount(l.Payment)
		}

		if l.Void {
			flag = "VOID"
		}

		rows = append(rows, table.Row{
			FormatDateTime(l.Date),
			l.Category,
			l.Description,
			charge,
			payment,
			FormatAmount(l.Balance),
			flag,
		})
	}

	return rows
}

// Messages

type loadBillMsg struct {
	statement *statement.Statement
	err       error
}

func (m BillModel) loadCmd() tea.Cmd {
	c, id := m.svc.Admissions, m.id

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		a, txs, err := c.Transactions(ctx, id)
		if err != nil {
			return loadBillMsg{err: err}
		}

		return loadBillMsg{statement: statement.Build(a, txs)}
	}
}

type billActionMsg struct {
	summary string
	err     error
}

func resultMsg(verb string, res *admission.Result, err error) tea.Msg {
	if err != nil {
		return billActionMsg{err: err}
	}

	return billActionMsg{summary: fmt.Sprintf(
		"%s %s. Balance due %s",
		verb, FormatAmount(res.Transaction.Amount), FormatAmount(res.Admission.BalanceDue),
	)}
}

func (m BillModel) orderCmd() tea.Cmd {
	c, id := m.svc.Admissions, m.id

	quantity, _ := strconv.ParseInt(strings.TrimSpace(m.in.quantity), 10, 64)
	req := catalog.OrderRequest{ServiceName: m.in.service, Quantity: quantity}

	if m.in.service == customService {
		price, _ := catalog.ParseAmount(m.in.price)
		req.CustomName = strings.TrimSpace(m.in.name)
		req.UnitPrice = price
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := c.OrderService(ctx, id, req)

		return resultMsg("Charged", res, err)
	}
}

func (m BillModel) paymentCmd() tea.Cmd {
	c, id := m.svc.Admissions, m.id

	amount, _ := catalog.ParseAmount(m.in.amount)
	req := admission.PaymentRequest{
		Amount:      amount,
		Mode:        m.in.mode,
		Category:    m.in.category,
		Description: strings.TrimSpace(m.in.note),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := c.RecordPayment(ctx, id, req)

		return resultMsg("Received", res, err)
	}
}

func (m BillModel) accommodationCmd() tea.Cmd {
	c, id := m.svc.Admissions, m.id
	days, _ := strconv.ParseInt(strings.TrimSpace(m.in.days), 10, 64)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := c.ChargeAccommodation(ctx, id, days)

		return resultMsg("Charged", res, err)
	}
}

func (m BillModel) voidCmd() tea.Cmd {
	line := m.selectedLine()
	if line == nil {
		return nil
	}

	c, id, txID := m.svc.Admissions, m.id, line.TransactionID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := c.VoidTransaction(ctx, id, txID)

		return resultMsg("Voided", res, err)
	}
}
