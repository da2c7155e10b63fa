package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/unichar/internal/tui/components"
	"github.com/f3rmion/unichar/internal/ucd"
)

// Styles (use from parent package or define locally)
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	filterButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee")).
				Background(lipgloss.Color("#3d5a80")).
				Padding(0, 1)

	filterButtonActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#1d3557")).
				Padding(0, 1)

	filterCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc"))

	gridCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	gridCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#ffe66d")).
			Padding(0, 1)

	gridBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffe66d")).
			Padding(0, 1)

	charInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Italic(true)
)

const filterListWidth = 30

// ExploreModel browses the index by category and search term.
type ExploreModel struct {
	idx     *ucd.Index
	source  string
	loading bool
	err     error

	// Filtering
	query      ucd.Query
	categories []ucd.Category
	catCursor  int
	catOffset  int
	records    []ucd.Record

	// Search
	searchInput textinput.Model
	searching   bool

	grid components.Grid

	width  int
	height int
}

// NewExploreModel creates the explorer in its loading state.
func NewExploreModel(columns int) ExploreModel {
	si := textinput.New()
	si.Placeholder = "category description..."
	si.CharLimit = 40
	si.Width = 30

	return ExploreModel{
		loading:     true,
		searchInput: si,
		grid:        components.Grid{Columns: columns, Rows: 10},
	}
}

// SetIndex installs the loaded index, or records why it couldn't load.
func (m *ExploreModel) SetIndex(idx *ucd.Index, source string, err error) {
	m.loading = false
	m.idx = idx
	m.source = source
	m.err = err
	m.categories = idx.Categories()
	m.catCursor, m.catOffset = 0, 0
	m.query = ucd.Query{}
	m.searchInput.SetValue("")
	m.refresh()
}

// SetFilter shows only category c, whatever was selected before.
func (m *ExploreModel) SetFilter(c ucd.Category) {
	m.query = ucd.Query{}
	m.searchInput.SetValue("")
	m.query.Toggle(c)
	for i, cat := range m.categories {
		if cat == c {
			m.catCursor = i
			m.adjustCatScroll()
			break
		}
	}
	m.refresh()
}

// SetSize updates the view dimensions.
func (m *ExploreModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.grid.Rows = max(m.height-10, 3)
	m.grid.Move(0, len(m.records))
	m.adjustCatScroll()
}

// Capturing reports whether keystrokes are going into the search box.
func (m ExploreModel) Capturing() bool {
	return m.searching
}

// Records returns what the grid currently shows.
func (m ExploreModel) Records() []ucd.Record {
	return m.records
}

// Query returns the active filter and search term.
func (m ExploreModel) Query() ucd.Query {
	return m.query
}

// Current returns the record under the grid cursor.
func (m ExploreModel) Current() (ucd.Record, bool) {
	if m.grid.Cursor < 0 || m.grid.Cursor >= len(m.records) {
		return ucd.Record{}, false
	}
	return m.records[m.grid.Cursor], true
}

func (m *ExploreModel) refresh() {
	m.records = m.query.Apply(m.idx)
	m.grid.Reset()
	m.grid.Move(0, len(m.records))
}

// Update handles messages.
func (m ExploreModel) Update(msg tea.Msg) (ExploreModel, tea.Cmd) {
	if m.idx == nil {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.query.Term = ""
			m.refresh()
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if term := m.searchInput.Value(); term != m.query.Term {
			m.query.Term = term
			m.refresh()
		}
		return m, cmd
	}

	page := m.grid.Columns * m.grid.Rows
	switch keyMsg.String() {
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
			m.adjustCatScroll()
		}
	case "down", "j":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
			m.adjustCatScroll()
		}
	case "enter", " ":
		if m.catCursor < len(m.categories) {
			m.query.Toggle(m.categories[m.catCursor])
			m.refresh()
		}
	case "left", "h":
		m.grid.Move(-1, len(m.records))
	case "right", "l":
		m.grid.Move(1, len(m.records))
	case "K", "shift+up":
		m.grid.Move(-m.grid.Columns, len(m.records))
	case "J", "shift+down":
		m.grid.Move(m.grid.Columns, len(m.records))
	case "pgup", "ctrl+u":
		m.grid.Move(-page, len(m.records))
	case "pgdown", "ctrl+d":
		m.grid.Move(page, len(m.records))
	case "home", "g":
		m.grid.Move(-len(m.records), len(m.records))
	case "end", "G":
		m.grid.Move(len(m.records), len(m.records))
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query.Term)
		cmd := m.searchInput.Focus()
		return m, cmd
	case "c":
		m.query = ucd.Query{}
		m.searchInput.SetValue("")
		m.refresh()
	case "a", "i":
		if rec, ok := m.Current(); ok {
			return m, func() tea.Msg { return AppendCharMsg{Char: rec.Code} }
		}
	}

	return m, nil
}

func (m *ExploreModel) adjustCatScroll() {
	visible := m.visibleCategories()
	if m.catCursor < m.catOffset {
		m.catOffset = m.catCursor
	}
	if m.catCursor >= m.catOffset+visible {
		m.catOffset = m.catCursor - visible + 1
	}
}

func (m ExploreModel) visibleCategories() int {
	return max(m.height-6, 5)
}

// View renders the explorer.
func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Explore"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(loadingStyle.Render("Loading Unicode data..."))
		return b.String()
	case m.err != nil:
		b.WriteString(errorStyle.Render("Could not load Unicode data"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Run 'unichar fetch' or press 4 to open a UnicodeData.txt file"))
		return b.String()
	case m.idx == nil:
		return b.String()
	}

	// Search bar
	if m.searching {
		b.WriteString(searchBoxStyle.Render("Search: " + m.searchInput.View()))
		b.WriteString("\n")
	} else if m.query.Term != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Search: \"%s\" (press 'c' to clear)", m.query.Term)))
		b.WriteString("\n")
	}

	left := m.renderFilters()
	right := m.renderGrid()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: categories • enter: filter • ←/→ J/K: grid • /: search • a: add to inspector • c: clear"))

	return b.String()
}

func (m ExploreModel) renderFilters() string {
	var lines []string

	end := min(m.catOffset+m.visibleCategories(), len(m.categories))
	for i := m.catOffset; i < end; i++ {
		cat := m.categories[i]

		style := filterButtonStyle
		if m.query.IsActive(cat) {
			style = filterButtonActiveStyle
		}

		prefix := "  "
		if i == m.catCursor {
			prefix = "> "
		}

		label := runewidth.Truncate(ucd.DisplayName(cat), filterListWidth-10, "…")
		lines = append(lines, prefix+style.Render(label)+" "+filterCountStyle.Render(fmt.Sprintf("%d", m.idx.Count(cat))))
	}

	if len(m.categories) > len(lines) {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("  %d/%d", m.catCursor+1, len(m.categories))))
	}

	return lipgloss.NewStyle().Width(filterListWidth).Render(strings.Join(lines, "\n"))
}

func (m ExploreModel) renderGrid() string {
	var b strings.Builder

	heading := "All categories"
	if c, ok := m.query.Active(); ok && m.query.Term == "" {
		heading = ucd.DisplayName(c)
	}
	if m.query.Term != "" {
		heading = fmt.Sprintf("Categories matching \"%s\"", m.query.Term)
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s · %d characters", heading, len(m.records))))
	b.WriteString("\n")

	if len(m.records) == 0 {
		b.WriteString(helpStyle.Render("No characters match"))
		return b.String()
	}

	b.WriteString(gridBoxStyle.Render(m.grid.Render(m.records, gridCellStyle, gridCursorStyle)))
	b.WriteString("\n")

	if rec, ok := m.Current(); ok {
		info := fmt.Sprintf("%s %s · %s · row %d/%d",
			components.Cell(rec), rec.Label(), ucd.DisplayName(rec.Category),
			m.grid.Cursor/max(m.grid.Columns, 1)+1, m.grid.TotalRows(len(m.records)))
		b.WriteString(charInfoStyle.Render(info))
	}

	return b.String()
}
