package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/unichar/internal/config"
	"github.com/f3rmion/unichar/internal/tui/views"
	"github.com/f3rmion/unichar/internal/ucd"
)

const data = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
0031;DIGIT ONE;Nd;0;EN;;1;1;1;N;;;;;
`

func newTestApp(t *testing.T, sources ...string) AppModel {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Readings = false
	cfg.UI.GlyphPreview = false
	m := NewApp(Options{Config: cfg, ConfigDir: t.TempDir(), Sources: sources})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadIndexFromSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "UnicodeData.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m := newTestApp(t, filepath.Join(t.TempDir(), "missing.txt"), path)
	msg := m.loadIndex()()
	loaded, ok := msg.(IndexLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	require.Equal(t, path, loaded.Source)

	m = update(t, m, loaded)
	require.False(t, m.loading)
	require.False(t, m.failed)
	require.Equal(t, "3 characters · "+path, m.status)
	require.Len(t, m.exploreView.Records(), 3)
	require.Contains(t, m.View(), "3 characters")
}

func TestLoadFailure(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, IndexLoadedMsg{Err: errors.New("no data")})
	require.True(t, m.failed)
	require.Contains(t, m.exploreView.View(), "Could not load Unicode data")

	// A failed pick keeps what was already loaded.
	m = update(t, m, IndexLoadedMsg{Index: ucd.ParseString(data), Source: "a.txt"})
	m = update(t, m, IndexLoadedMsg{Source: "b.txt", Err: errors.New("bad file")})
	require.True(t, m.failed)
	require.Equal(t, "a.txt", m.source)
	require.Equal(t, "Could not open b.txt", m.status)
	require.Len(t, m.exploreView.Records(), 3)
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, IndexLoadedMsg{Index: ucd.ParseString(data), Source: "test"})

	m = update(t, m, runes("3"))
	require.Equal(t, ViewCategories, m.currentView)
	m = update(t, m, runes("4"))
	require.Equal(t, ViewFilePicker, m.currentView)
	m = update(t, m, runes("2"))
	require.Equal(t, ViewInspect, m.currentView)

	// The inspector takes digits as text.
	m = update(t, m, runes("1"))
	require.Equal(t, ViewInspect, m.currentView)
	require.Equal(t, "1", m.inspectView.Selection().Text())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	require.True(t, m.sidebarActive)
	m = update(t, m, runes("1"))
	require.Equal(t, ViewExplore, m.currentView)
	require.False(t, m.sidebarActive)
}

func TestAppendCharSwitchesToInspect(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, IndexLoadedMsg{Index: ucd.ParseString(data), Source: "test"})

	m = update(t, m, views.AppendCharMsg{Char: 'A'})
	require.Equal(t, ViewInspect, m.currentView)
	require.Equal(t, "A", m.inspectView.Selection().Text())
	row, ok := m.inspectView.Selection().Row(0)
	require.True(t, ok)
	require.Equal(t, ucd.Category("Lu"), row.Category)
}

func TestCategorySelectedFiltersExplore(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, IndexLoadedMsg{Index: ucd.ParseString(data), Source: "test"})
	m = update(t, m, runes("3"))

	m = update(t, m, views.CategorySelectedMsg{Category: "Nd"})
	require.Equal(t, ViewExplore, m.currentView)
	records := m.exploreView.Records()
	require.Len(t, records, 1)
	require.Equal(t, '1', records[0].Code)
}

func TestFileSelectedLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m := newTestApp(t)
	next, cmd := m.Update(views.FileSelectedMsg{Path: path})
	m = next.(AppModel)
	require.True(t, m.loading)
	require.NotNil(t, cmd)

	m = update(t, m, cmd())
	require.Equal(t, path, m.source)
	require.Len(t, m.exploreView.Records(), 3)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp(t)
	m = update(t, m, runes("?"))
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Inspect")

	m = update(t, m, runes("x"))
	require.False(t, m.showHelp)
}
