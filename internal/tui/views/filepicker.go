package views

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// File picker styles
var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	fpSelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))

	fpHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	fpErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	fpMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	fpRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3d5a80"))
)

// DataKind says how a listed entry would be opened.
type DataKind int

const (
	KindDir    DataKind = iota
	KindText            // UnicodeData.txt style text
	KindExport          // sqlite export written by 'unichar export'
)

func (k DataKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindExport:
		return "sqlite"
	default:
		return "text"
	}
}

func kindOf(name string, dir bool) DataKind {
	switch {
	case dir:
		return KindDir
	case strings.EqualFold(filepath.Ext(name), ".db"):
		return KindExport
	default:
		return KindText
	}
}

// FileEntry is one line of the listing.
type FileEntry struct {
	Name string
	Path string
	Kind DataKind
	Size int64
}

// IsDir reports whether the entry is a directory.
func (e FileEntry) IsDir() bool {
	return e.Kind == KindDir
}

// FilePickerModel browses the filesystem for dataset files.
type FilePickerModel struct {
	dir        string
	extensions []string
	entries    []FileEntry
	selected   int
	offset     int
	err        error

	width  int
	height int
}

// NewFilePickerModel lists startDir, or the home directory when startDir
// doesn't exist. Only files with one of the extensions are shown.
func NewFilePickerModel(startDir string, extensions ...string) FilePickerModel {
	if _, err := os.Stat(startDir); startDir == "" || err != nil {
		startDir, _ = os.UserHomeDir()
		if startDir == "" {
			startDir = "/"
		}
	}

	m := FilePickerModel{extensions: extensions}
	m.chdir(startDir)
	return m
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.dir
}

// Entries returns the listed entries: the parent link, directories, then
// matching files.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// Capturing reports whether keystrokes are consumed as text. They never are.
func (m FilePickerModel) Capturing() bool {
	return false
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.move(0)
}

// chdir switches to dir and reads it.
func (m *FilePickerModel) chdir(dir string) {
	m.dir = dir
	m.selected, m.offset = 0, 0
	m.entries, m.err = m.list(dir)
}

func (m FilePickerModel) list(dir string) ([]FileEntry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []FileEntry
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		e := FileEntry{
			Name: de.Name(),
			Path: filepath.Join(dir, de.Name()),
			Kind: kindOf(de.Name(), de.IsDir()),
		}
		if e.IsDir() {
			dirs = append(dirs, e)
			continue
		}
		if !m.accepts(e.Name) {
			continue
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
		}
		files = append(files, e)
	}

	byName := func(a, b FileEntry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	var out []FileEntry
	if parent := filepath.Dir(dir); parent != dir {
		out = append(out, FileEntry{Name: "..", Path: parent, Kind: KindDir})
	}
	out = append(out, dirs...)
	return append(out, files...), nil
}

func (m FilePickerModel) accepts(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	return slices.ContainsFunc(m.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// move shifts the selection by delta, clamped to the listing.
func (m *FilePickerModel) move(delta int) {
	m.selected = max(min(m.selected+delta, len(m.entries)-1), 0)

	visible := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
}

func (m FilePickerModel) visibleRows() int {
	return max(m.height-8, 5) // title, path, rules, help
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	half := m.visibleRows() / 2
	switch keyMsg.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "ctrl+d":
		m.move(half)
	case "ctrl+u":
		m.move(-half)
	case "g", "home":
		m.move(-len(m.entries))
	case "G", "end":
		m.move(len(m.entries))
	case "backspace", "h":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.chdir(parent)
		}
	case "~":
		if home, _ := os.UserHomeDir(); home != "" {
			m.chdir(home)
		}
	case "enter", "l", "right":
		if m.selected >= len(m.entries) {
			break
		}
		entry := m.entries[m.selected]
		if entry.IsDir() {
			m.chdir(entry.Path)
			break
		}
		return m, func() tea.Msg { return FileSelectedMsg{Path: entry.Path} }
	}
	return m, nil
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(fpTitleStyle.Render("Open Unicode Data (" + strings.Join(m.extensions, ", ") + ")"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.dir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fpErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	ruleWidth := max(min(m.width-4, 60), 10)
	rule := fpRuleStyle.Render(strings.Repeat("─", ruleWidth))
	b.WriteString(rule)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(fpHelpStyle.Render("  (no matching files found)"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.entries))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderEntry(i, ruleWidth))
		b.WriteString("\n")
	}
	if len(m.entries) > end-m.offset {
		b.WriteString(fpMutedStyle.Render(runewidth.FillLeft("↕ scroll", ruleWidth)))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(fpHelpStyle.Render("enter: open • backspace: parent • ~: home"))

	return b.String()
}

// renderEntry draws one listing line: marker, name, then kind and size
// pushed to the right edge.
func (m FilePickerModel) renderEntry(i, width int) string {
	e := m.entries[i]

	prefix := "  "
	style := fpFileStyle
	switch {
	case i == m.selected:
		prefix = "> "
		style = fpSelectedStyle
	case e.IsDir():
		style = fpDirStyle
	}

	name := e.Name
	if e.IsDir() {
		name += "/"
	}
	line := prefix + style.Render(name)
	if e.IsDir() {
		return line
	}

	info := e.Kind.String() + "  " + humanize.Bytes(uint64(e.Size))
	gap := max(width-runewidth.StringWidth(prefix+name)-runewidth.StringWidth(info), 1)
	return line + strings.Repeat(" ", gap) + fpMutedStyle.Render(info)
}
