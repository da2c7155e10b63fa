package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/unichar/internal/ucd"
)

// Categories view styles
var (
	catTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	catTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	catMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	tabDiscovered = iota
	tabCatalog
	numCategoryTabs
)

// CategoriesModel lists categories with their counts. The first tab shows
// what the dataset contains in first-seen order, the second every category
// the catalog knows about.
type CategoriesModel struct {
	idx   *ucd.Index
	tab   int
	table table.Model

	width  int
	height int
}

// NewCategoriesModel creates the categories view.
func NewCategoriesModel() CategoriesModel {
	t := table.New(
		table.WithColumns(categoryColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(categoryTableStyles())

	m := CategoriesModel{table: t}
	m.refresh()
	return m
}

func categoryColumns() []table.Column {
	return []table.Column{
		{Title: "Code", Width: 5},
		{Title: "Description", Width: 26},
		{Title: "Characters", Width: 10},
	}
}

func categoryTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#3d5a80")).
		Foreground(lipgloss.Color("#a8dadc")).
		Bold(true)
	styles.Cell = styles.Cell.
		Foreground(lipgloss.Color("#f1faee"))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#ffe66d")).
		Background(lipgloss.Color("#2d3436")).
		Bold(true)
	return styles
}

// SetIndex replaces the index whose counts are shown.
func (m *CategoriesModel) SetIndex(idx *ucd.Index) {
	m.idx = idx
	m.refresh()
}

// SetSize updates the view dimensions.
func (m *CategoriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(max(width, 45))
	m.table.SetHeight(max(height-9, 3))
}

// Capturing reports whether keystrokes are consumed as text. They never are.
func (m CategoriesModel) Capturing() bool {
	return false
}

// entries returns the categories listed on the current tab.
func (m CategoriesModel) entries() []ucd.Category {
	if m.tab == tabCatalog {
		return ucd.Categories()
	}
	return m.idx.Categories()
}

func (m *CategoriesModel) refresh() {
	entries := m.entries()
	rows := make([]table.Row, 0, len(entries))
	for _, c := range entries {
		name := ucd.DisplayName(c)
		if _, known := ucd.Describe(c); !known {
			name = "(not in catalog)"
		}
		rows = append(rows, table.Row{string(c), name, fmt.Sprintf("%d", m.idx.Count(c))})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the category under the cursor.
func (m CategoriesModel) Selected() (ucd.Category, bool) {
	row := m.table.SelectedRow()
	if row == nil {
		return "", false
	}
	return ucd.Category(row[0]), true
}

// Update handles messages.
func (m CategoriesModel) Update(msg tea.Msg) (CategoriesModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % numCategoryTabs
			m.refresh()
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + numCategoryTabs - 1) % numCategoryTabs
			m.refresh()
			return m, nil
		case "enter":
			c, ok := m.Selected()
			if !ok || m.idx.Count(c) == 0 {
				return m, nil
			}
			return m, func() tea.Msg { return CategorySelectedMsg{Category: c} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the categories view.
func (m CategoriesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n\n")

	tabs := []string{"In dataset", "Catalog"}
	var tabViews []string
	for i, t := range tabs {
		style := catTabStyle
		if i == m.tab {
			style = catTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		b.WriteString(catMutedStyle.Render("  No data loaded"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: switch tab • j/k: navigate • enter: show in Explore"))

	return b.String()
}
