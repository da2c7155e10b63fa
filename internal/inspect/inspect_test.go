package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/f3rmion/unichar/internal/inspect"
	"github.com/f3rmion/unichar/internal/pinyin"
	"github.com/f3rmion/unichar/internal/ucd"
)

const data = `0021;EXCLAMATION MARK;Po;0;ON;;;;;N;;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
4E2D;<CJK Ideograph>;Lo;0;L;;;;;N;;;;;
`

// SelectionSuite covers per-character rows and checked conversion.
type SelectionSuite struct {
	suite.Suite
	opts inspect.Options
}

func (s *SelectionSuite) SetupTest() {
	s.opts = inspect.Options{Index: ucd.ParseString(data)}
}

// TestRows is the "A中" scenario: A gets a checkbox, 中 a cross.
func (s *SelectionSuite) TestRows() {
	sel := inspect.New("A中", s.opts)
	require.Equal(s.T(), 2, sel.Len())

	a, ok := sel.Row(0)
	require.True(s.T(), ok)
	require.Equal(s.T(), inspect.Row{
		Char:        'A',
		Code:        "U+0041",
		Convertible: true,
		Category:    "Lu",
		Width:       "Na",
	}, a)

	han, ok := sel.Row(1)
	require.True(s.T(), ok)
	require.Equal(s.T(), '中', han.Char)
	require.Equal(s.T(), "U+4E2D", han.Code)
	require.False(s.T(), han.Convertible)
	require.Equal(s.T(), ucd.Category("Lo"), han.Category)
	require.Equal(s.T(), "W", han.Width)

	_, ok = sel.Row(2)
	require.False(s.T(), ok)
}

// TestWithoutIndex still reports everything but the category.
func (s *SelectionSuite) TestWithoutIndex() {
	sel := inspect.New("Ａ a", inspect.Options{})
	rows := sel.Rows()
	require.Len(s.T(), rows, 3)
	require.Empty(s.T(), rows[0].Category)
	require.Equal(s.T(), "F", rows[0].Width)
	require.False(s.T(), rows[0].Convertible)
	require.False(s.T(), rows[1].Convertible, "space is not convertible")
	require.True(s.T(), rows[2].Convertible)
}

// TestReadings fills the reading column for Han characters only.
func (s *SelectionSuite) TestReadings() {
	s.opts.Readings = pinyin.NewParser()
	sel := inspect.New("A好", s.opts)
	rows := sel.Rows()
	require.Empty(s.T(), rows[0].Reading)
	require.Contains(s.T(), rows[1].Reading, "hǎo")
}

// TestToggle only affects convertible rows.
func (s *SelectionSuite) TestToggle() {
	sel := inspect.New("A中!", s.opts)

	require.True(s.T(), sel.Toggle(0))
	require.False(s.T(), sel.Toggle(1), "中 can't be checked")
	require.False(s.T(), sel.Toggle(7))
	require.False(s.T(), sel.Toggle(-1))
	require.Equal(s.T(), []rune{'A'}, sel.Checked())

	require.True(s.T(), sel.Toggle(2))
	require.Equal(s.T(), "Ａ！", sel.Converted())

	require.True(s.T(), sel.Toggle(0))
	require.Equal(s.T(), "！", sel.Converted())
}

// TestConvertedKeepsDocumentOrder checks rows in input order, duplicates included.
func (s *SelectionSuite) TestConvertedKeepsDocumentOrder() {
	sel := inspect.New("abab", s.opts)
	require.Equal(s.T(), 3, sel.Check(3, 0, 2))
	require.Equal(s.T(), "ａａｂ", sel.Converted())
}

// TestCheck ignores repeats, out-of-range and non-convertible rows.
func (s *SelectionSuite) TestCheck() {
	sel := inspect.New("a中b", s.opts)
	require.Equal(s.T(), 1, sel.Check(0, 0, 1, 9, -2))
	require.Equal(s.T(), []rune{'a'}, sel.Checked())
}

// TestConvertAll is the "Aa!" scenario.
func (s *SelectionSuite) TestConvertAll() {
	sel := inspect.New("Aa!", s.opts)
	require.Equal(s.T(), "Ａａ！", sel.ConvertAll())
	require.Empty(s.T(), sel.Converted(), "nothing checked yet")

	mixed := inspect.New("A 中!", s.opts)
	require.Equal(s.T(), "Ａ 中！", mixed.ConvertAll())
}

// TestRebuildDiscardsChecks mirrors the rebuild on every keystroke.
func (s *SelectionSuite) TestRebuildDiscardsChecks() {
	sel := inspect.New("ab", s.opts)
	sel.Check(0, 1)

	sel = inspect.New(sel.Text()+"c", s.opts)
	require.Empty(s.T(), sel.Checked())
	require.Equal(s.T(), "abc", sel.Text())
}

// TestRowsIsCopy keeps the selection's state private.
func (s *SelectionSuite) TestRowsIsCopy() {
	sel := inspect.New("a", s.opts)
	rows := sel.Rows()
	rows[0].Checked = true
	require.Empty(s.T(), sel.Checked())
}

// TestEmpty has no rows and converts to nothing.
func (s *SelectionSuite) TestEmpty() {
	sel := inspect.New("", s.opts)
	require.Zero(s.T(), sel.Len())
	require.Empty(s.T(), sel.Converted())
	require.Empty(s.T(), sel.ConvertAll())
}

func TestSelectionSuite(t *testing.T) {
	suite.Run(t, new(SelectionSuite))
}
