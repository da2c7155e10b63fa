package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/unichar/internal/clipboard"
	"github.com/f3rmion/unichar/internal/fullwidth"
	"github.com/f3rmion/unichar/internal/inspect"
	"github.com/f3rmion/unichar/internal/pinyin"
	"github.com/f3rmion/unichar/internal/tui/bigchar"
	"github.com/f3rmion/unichar/internal/ucd"
)

var (
	rowHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	rowCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436")).
			Bold(true)

	checkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	crossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true)

	convertedBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#4ecdc4")).
				Padding(0, 1)

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// Column widths of the character table.
const (
	colChar     = 6
	colCode     = 10
	colCategory = 22
	colWidth    = 6
	colReading  = 16
)

const (
	glyphCols = 16
	glyphRows = 8
)

type inspectClearCopiedMsg struct{}

func inspectClearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return inspectClearCopiedMsg{}
	})
}

// InspectModel shows typed text one character per row and converts the
// checked characters to fullwidth.
type InspectModel struct {
	input textinput.Model
	opts  inspect.Options
	sel   *inspect.Selection

	// Row navigation
	cursor int
	offset int

	// Output field
	converted string

	// Glyph preview
	glyphs       *bigchar.Renderer
	glyphPreview bool

	canCopy bool
	copied  bool
	err     error

	width  int
	height int
}

// NewInspectModel creates the inspector. readings may be nil to hide the
// reading column; glyphs may be nil to hide the preview.
func NewInspectModel(readings *pinyin.Parser, glyphs *bigchar.Renderer) InspectModel {
	ti := textinput.New()
	ti.Placeholder = "Type text to inspect..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	opts := inspect.Options{Readings: readings}
	return InspectModel{
		input:        ti,
		opts:         opts,
		sel:          inspect.New("", opts),
		glyphs:       glyphs,
		glyphPreview: glyphs.Available(),
		canCopy:      clipboard.Available(),
	}
}

// SetIndex makes the category column available. Check marks survive.
func (m *InspectModel) SetIndex(idx *ucd.Index) {
	m.opts.Index = idx

	var checked []int
	for i, row := range m.sel.Rows() {
		if row.Checked {
			checked = append(checked, i)
		}
	}
	m.sel = inspect.New(m.sel.Text(), m.opts)
	m.sel.Check(checked...)
}

// SetSize updates the view dimensions.
func (m *InspectModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.adjustScroll()
}

// Capturing reports whether keystrokes go to the text input. They always do.
func (m InspectModel) Capturing() bool {
	return true
}

// Selection returns the current per-character rows.
func (m InspectModel) Selection() *inspect.Selection {
	return m.sel
}

// Converted returns the contents of the converted text field.
func (m InspectModel) Converted() string {
	return m.converted
}

// AppendChar adds r to the end of the input, as if it had been typed.
func (m *InspectModel) AppendChar(r rune) {
	m.input.SetValue(m.input.Value() + string(r))
	m.input.CursorEnd()
	m.rebuild()
}

// rebuild discards the selection and starts over from the current input.
func (m *InspectModel) rebuild() {
	m.sel = inspect.New(m.input.Value(), m.opts)
	m.converted = m.sel.Converted()
	if m.cursor >= m.sel.Len() {
		m.cursor = max(m.sel.Len()-1, 0)
	}
	m.adjustScroll()
}

// Update handles messages.
func (m InspectModel) Update(msg tea.Msg) (InspectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}
			return m, nil
		case "down":
			if m.cursor < m.sel.Len()-1 {
				m.cursor++
				m.adjustScroll()
			}
			return m, nil
		case "ctrl+s", "ctrl+@":
			if m.sel.Toggle(m.cursor) {
				m.converted = m.sel.Converted()
			}
			return m, nil
		case "ctrl+a":
			m.converted = m.sel.ConvertAll()
			return m, nil
		case "ctrl+l":
			m.input.SetValue("")
			m.rebuild()
			return m, nil
		case "ctrl+y":
			if m.converted == "" {
				return m, nil
			}
			if err := clipboard.Write(m.converted); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.copied = true
			return m, inspectClearCopiedAfter(2 * time.Second)
		}

	case inspectClearCopiedMsg:
		m.copied = false
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rebuild()
	}
	return m, cmd
}

func (m *InspectModel) visibleRows() int {
	h := m.height - 12
	if m.glyphPreview {
		h -= glyphRows
	}
	return max(h, 3)
}

func (m *InspectModel) adjustScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// View renders the inspector.
func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Inspect"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.sel.Len() == 0 {
		b.WriteString(helpStyle.Render("Type text to see each character, or press 'a' on a grid character in Explore"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		if m.glyphPreview {
			if row, ok := m.sel.Row(m.cursor); ok {
				if art := m.glyphs.Render(row.Char, glyphCols, glyphRows); art != "" {
					b.WriteString(glyphStyle.Render(art))
					b.WriteString("\n")
				}
			}
		}
	}

	// Converted text field
	header := subtitleStyle.Render("Converted")
	if n := m.sel.Len(); n > 0 {
		convertible := len(fullwidth.Convertible(m.sel.Text()))
		header += " " + helpStyle.Render(fmt.Sprintf("%d of %d convertible", convertible, n))
	}
	if m.copied {
		header += "  " + copiedStyle.Render("✓ Copied!")
	}
	b.WriteString(header)
	b.WriteString("\n")
	width := 50
	if m.width > 0 && m.width-6 < width {
		width = max(m.width-6, 10)
	}
	b.WriteString(convertedBoxStyle.Width(width).Render(m.converted))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	help := "↑/↓: rows • ctrl+s: check • ctrl+a: convert all • "
	if m.canCopy {
		help += "ctrl+y: copy • "
	}
	b.WriteString(helpStyle.Render(help + "ctrl+l: clear"))

	return b.String()
}

func (m InspectModel) renderTable() string {
	var lines []string

	header := pad("Char", colChar) + pad("Code", colCode) + pad("Category", colCategory) + pad("Width", colWidth)
	if m.opts.Readings != nil {
		header += pad("Reading", colReading)
	}
	header += "Convert"
	lines = append(lines, rowHeaderStyle.Render(header))

	rows := m.sel.Rows()
	end := min(m.offset+m.visibleRows(), len(rows))
	for i := m.offset; i < end; i++ {
		row := rows[i]

		category := ""
		if row.Category != "" {
			category = ucd.DisplayName(row.Category)
		}

		line := pad(displayChar(row.Char), colChar) +
			pad(row.Code, colCode) +
			pad(category, colCategory) +
			pad(row.Width, colWidth)
		if m.opts.Readings != nil {
			line += pad(row.Reading, colReading)
		}

		style := rowStyle
		if i == m.cursor {
			style = rowCursorStyle
		}
		lines = append(lines, style.Render(line)+renderConvertCell(row))
	}

	if len(rows) > end-m.offset {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("row %d of %d", m.cursor+1, len(rows))))
	}

	return strings.Join(lines, "\n")
}

// renderConvertCell draws a check box for convertible rows and a red cross
// for the rest.
func renderConvertCell(row inspect.Row) string {
	switch {
	case !row.Convertible:
		return crossStyle.Render("✗")
	case row.Checked:
		return checkStyle.Render("[x]")
	default:
		return rowStyle.Render("[ ]")
	}
}

// displayChar keeps control characters from disturbing the layout.
func displayChar(r rune) string {
	if r < 0x20 || r == 0x7F || (r >= 0x80 && r < 0xA0) {
		return "·"
	}
	return string(r)
}

// pad truncates or fills s to exactly w terminal cells.
func pad(s string, w int) string {
	if runewidth.StringWidth(s) >= w {
		s = runewidth.Truncate(s, w-1, "…")
	}
	return runewidth.FillRight(s, w)
}
