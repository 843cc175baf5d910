package view

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
)

// PricesModel lists the service catalog, optionally narrowed to a category.
type PricesModel struct {
	CommonModel

	table       table.Model
	items       []catalog.Item
	categories  []string
	categoryIdx int
}

func NewPricesModel(c *catalog.Catalog) PricesModel {
	items := c.List()

	seen := map[string]bool{}
	categories := []string{""}

	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}

	sort.Strings(categories[1:])

	m := PricesModel{
		table: newTable([]table.Column{
			{Title: "Service", Width: 36},
			{Title: "Category", Width: 16},
			{Title: "Unit price", Width: 12},
		}),
		items:      items,
		categories: categories,
	}
	m.refreshTable()

	return m
}

func (m PricesModel) Title() string { return "Price List" }

func (m PricesModel) ShortHelp() string { return "Esc: back | c: category" }

func (m PricesModel) Init() tea.Cmd { return nil }

func (m PricesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "c":
			m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
			m.refreshTable()

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *PricesModel) refreshTable() {
	category := m.categories[m.categoryIdx]

	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		if category != "" && item.Category != category {
			continue
		}

		rows = append(rows, table.Row{item.Name, item.Category, FormatAmount(item.UnitPrice)})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m PricesModel) View() string {
	category := "All"
	if c := m.categories[m.categoryIdx]; c != "" {
		category = c
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(fmt.Sprintf("Filter: [c] Category: %s", activeStyle(category))),
		tableView,
	))
}
