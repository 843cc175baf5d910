package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ipdledger/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	admissionStore "github.com/MrJamesThe3rd/ipdledger/internal/admission/store"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	bedStore "github.com/MrJamesThe3rd/ipdledger/internal/bed/store"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/config"
	"github.com/MrJamesThe3rd/ipdledger/internal/database"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/ipdledger/internal/ledger/store"
	patientStore "github.com/MrJamesThe3rd/ipdledger/internal/patient/store"
)

type model struct {
	svc view.Services

	currentView View

	admissionsView view.AdmissionsModel
	admitView      view.AdmitModel
	billView       view.BillModel
	historyView    view.HistoryModel
	pricesView     view.PricesModel
}

type View int

const (
	ViewMenu       View = 0
	ViewAdmissions View = 1
	ViewAdmit      View = 2
	ViewBill       View = 3
	ViewHistory    View = 4
	ViewPrices     View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.Billing.CatalogPath != "" {
		if cat, err = catalog.LoadFile(cfg.Billing.CatalogPath); err != nil {
			slog.Error("failed to load catalog", "path", cfg.Billing.CatalogPath, "error", err)
			os.Exit(1)
		}
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	beds := bed.NewRegistry(bedStore.New(db))
	patients := patientStore.New(db)

	controller := admission.NewController(admission.Deps{
		Repo:       admissionStore.New(db),
		Beds:       beds,
		Patients:   patients,
		Ledger:     ledgerSvc,
		Orders:     catalog.NewOrderer(cat, ledgerSvc),
		Reconciler: billing.NewEngine(ledgerSvc),
		Tx:         database.NewTransactor(db),
	}, admission.Policy{
		AllowPostDischargePayments: cfg.Billing.AllowPostDischargePayments,
	})

	svc := view.Services{
		Admissions: controller,
		Beds:       beds,
		Patients:   patients,
		Catalog:    cat,
	}

	return model{
		svc:         svc,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdmissions
				m.admissionsView = view.NewAdmissionsModel(m.svc)

				return m, m.admissionsView.Init()
			case "2":
				m.currentView = ViewAdmit
				m.admitView = view.NewAdmitModel(m.svc)

				return m, m.admitView.Init()
			case "3":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.svc)

				return m, m.historyView.Init()
			case "4":
				m.currentView = ViewPrices
				m.pricesView = view.NewPricesModel(m.svc.Catalog)

				return m, m.pricesView.Init()
			}
		}

	case view.OpenAdmissionMsg:
		m.currentView = ViewBill
		m.billView = view.NewBillModel(m.svc, msg.ID)

		return m, m.billView.Init()

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAdmissions:
		var newModel tea.Model
		newModel, cmd = m.admissionsView.Update(msg)
		m.admissionsView = newModel.(view.AdmissionsModel)
	case ViewAdmit:
		var newModel tea.Model
		newModel, cmd = m.admitView.Update(msg)
		m.admitView = newModel.(view.AdmitModel)
	case ViewBill:
		var newModel tea.Model
		newModel, cmd = m.billView.Update(msg)
		m.billView = newModel.(view.BillModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewPrices:
		var newModel tea.Model
		newModel, cmd = m.pricesView.Update(msg)
		m.pricesView = newModel.(view.PricesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"IPD Billing Desk\n\n" +
				"1. Admissions\n" +
				"2. New Admission\n" +
				"3. Patient Ledger\n" +
				"4. Price List\n\n" +
				"q. Quit",
		)
	case ViewAdmissions:
		return m.admissionsView.View()
	case ViewAdmit:
		return m.admitView.View()
	case ViewBill:
		return m.billView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewPrices:
		return m.pricesView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
