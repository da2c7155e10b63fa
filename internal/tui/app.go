package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/f3rmion/unichar/internal/config"
	"github.com/f3rmion/unichar/internal/logx"
	"github.com/f3rmion/unichar/internal/pinyin"
	"github.com/f3rmion/unichar/internal/tui/bigchar"
	"github.com/f3rmion/unichar/internal/tui/views"
	"github.com/f3rmion/unichar/internal/ucd"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewExplore ViewType = iota
	ViewInspect
	ViewCategories
	ViewFilePicker
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	Icon     string
	View     ViewType
	Shortcut string
}

// IndexLoadedMsg is sent when a load started by the app finishes.
type IndexLoadedMsg struct {
	Index  *ucd.Index
	Source string
	Err    error
}

// Options configures the app.
type Options struct {
	Config    *config.Config
	ConfigDir string
	Sources   []string // Candidates tried in order at startup
}

// AppModel is the main unified TUI model
type AppModel struct {
	config  *config.Config
	sources []string

	// Dataset state
	source  string
	loading bool
	status  string
	failed  bool

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	exploreView    views.ExploreModel
	inspectView    views.InspectModel
	categoriesView views.CategoriesModel
	filePickerView views.FilePickerModel

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application. The dataset is loaded in the
// background once the program starts.
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	var readings *pinyin.Parser
	if cfg.UI.Readings {
		readings = pinyin.NewParser()
	}
	var glyphs *bigchar.Renderer
	if cfg.UI.GlyphPreview {
		glyphs = bigchar.New()
	}

	menuItems := []MenuItem{
		{Label: "Explore", Icon: "▦", View: ViewExplore, Shortcut: "1"},
		{Label: "Inspect", Icon: "Ａ", View: ViewInspect, Shortcut: "2"},
		{Label: "Categories", Icon: "≡", View: ViewCategories, Shortcut: "3"},
		{Label: "Open Data", Icon: "⌂", View: ViewFilePicker, Shortcut: "4"},
	}

	return AppModel{
		config:       cfg,
		sources:      opts.Sources,
		loading:      true,
		sidebarWidth: 20,
		currentView:  ViewExplore,
		menuItems:    menuItems,

		exploreView:    views.NewExploreModel(cfg.UI.GridColumns),
		inspectView:    views.NewInspectModel(readings, glyphs),
		categoriesView: views.NewCategoriesModel(),
		filePickerView: views.NewFilePickerModel(opts.ConfigDir, ".txt", ".db"),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadIndex())
}

// loadIndex tries the configured sources in the background.
func (m AppModel) loadIndex() tea.Cmd {
	sources := m.sources
	return func() tea.Msg {
		idx, source, err := ucd.Open(context.Background(), sources)
		return IndexLoadedMsg{Index: idx, Source: source, Err: err}
	}
}

// loadSource loads a single file picked in the file picker.
func loadSource(path string) tea.Cmd {
	return func() tea.Msg {
		idx, err := ucd.LoadSource(context.Background(), path)
		return IndexLoadedMsg{Index: idx, Source: path, Err: err}
	}
}

// capturing reports whether the active view wants every keystroke.
func (m AppModel) capturing() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewExplore:
		return m.exploreView.Capturing()
	case ViewInspect:
		return m.inspectView.Capturing()
	case ViewCategories:
		return m.categoriesView.Capturing()
	case ViewFilePicker:
		return m.filePickerView.Capturing()
	}
	return false
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.capturing() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "tab":
				m.sidebarActive = true
				return m, nil
			case "esc":
				// The explorer's search box uses esc itself
				if m.currentView != ViewExplore {
					m.sidebarActive = true
					return m, nil
				}
			}
			break
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1", "2", "3", "4":
			m.switchTo(m.menuItems[msg.String()[0]-'1'].View)
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 3

		m.exploreView.SetSize(contentWidth, contentHeight)
		m.inspectView.SetSize(contentWidth, contentHeight)
		m.categoriesView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)

		return m, nil

	case IndexLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			logx.Printf("loading unicode data: %v", msg.Err)
			m.failed = true
			m.status = "Unicode data unavailable"
			// Keep a previously loaded dataset when a picked file fails
			if m.source == "" {
				m.exploreView.SetIndex(nil, "", msg.Err)
			} else {
				m.status = fmt.Sprintf("Could not open %s", msg.Source)
			}
			return m, nil
		}

		logx.Printf("loaded %d characters from %s", msg.Index.Len(), msg.Source)
		m.failed = false
		m.source = msg.Source
		m.status = fmt.Sprintf("%s characters · %s", humanize.Comma(int64(msg.Index.Len())), msg.Source)
		m.exploreView.SetIndex(msg.Index, msg.Source, nil)
		m.inspectView.SetIndex(msg.Index)
		m.categoriesView.SetIndex(msg.Index)
		return m, nil

	case views.AppendCharMsg:
		m.inspectView.AppendChar(msg.Char)
		m.switchTo(ViewInspect)
		return m, nil

	case views.CategorySelectedMsg:
		m.exploreView.SetFilter(msg.Category)
		m.switchTo(ViewExplore)
		return m, nil

	case views.FileSelectedMsg:
		m.loading = true
		m.status = "Loading " + msg.Path
		m.switchTo(ViewExplore)
		return m, loadSource(msg.Path)
	}

	// Delegate to active view if not in sidebar mode
	if m.sidebarActive {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewExplore:
		m.exploreView, cmd = m.exploreView.Update(msg)
	case ViewInspect:
		m.inspectView, cmd = m.inspectView.Update(msg)
	case ViewCategories:
		m.categoriesView, cmd = m.categoriesView.Update(msg)
	case ViewFilePicker:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewExplore:
		content = m.exploreView.View()
	case ViewInspect:
		content = m.inspectView.View()
	case ViewCategories:
		content = m.categoriesView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 3).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus())
}

func (m AppModel) renderStatus() string {
	switch {
	case m.loading && m.status == "":
		return StatusStyle.Render(" Loading Unicode data...")
	case m.failed:
		return StatusErrorStyle.Render(" " + m.status)
	default:
		return StatusStyle.Render(" " + m.status)
	}
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" Ｕ unichar "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Icon + " " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 5
	for i := 0; i < m.height-usedHeight-3; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 3).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	key := func(k, desc string) string {
		return HelpKeyStyle.Render(k) + HelpDescStyle.Render(desc) + "\n"
	}

	helpText := HelpTitleStyle.Render("unichar - Unicode character explorer") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += key("1-4", "Switch views")
	helpText += key("tab", "Toggle sidebar focus")
	helpText += key("?", "Show this help")
	helpText += key("q", "Quit")

	helpText += HelpSectionStyle.Render("Explore") + "\n"
	helpText += key("↑/↓ enter", "Pick category filter")
	helpText += key("←/→ J/K", "Move in the grid")
	helpText += key("/", "Search descriptions")
	helpText += key("a", "Add character to Inspect")
	helpText += key("c", "Clear filter and search")

	helpText += HelpSectionStyle.Render("Inspect") + "\n"
	helpText += key("↑/↓", "Move between rows")
	helpText += key("ctrl+s", "Check row for conversion")
	helpText += key("ctrl+a", "Convert everything")
	helpText += key("ctrl+y", "Copy converted text")
	helpText += key("esc", "Back to sidebar")

	helpText += HelpSectionStyle.Render("Categories") + "\n"
	helpText += key("←/→", "Dataset or catalog")
	helpText += key("enter", "Show in Explore")

	helpText += HelpSectionStyle.Render("Open Data") + "\n"
	helpText += key("enter", "Open file or enter dir")
	helpText += key("backspace", "Go to parent dir")

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
