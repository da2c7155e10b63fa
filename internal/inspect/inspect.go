// Package inspect breaks typed text into per-character rows and tracks which
// rows the user has checked for fullwidth conversion.
package inspect

import (
	"golang.org/x/text/width"

	"github.com/f3rmion/unichar/internal/fullwidth"
	"github.com/f3rmion/unichar/internal/pinyin"
	"github.com/f3rmion/unichar/internal/ucd"
)

// Options supplies the optional lookups used to annotate rows.
type Options struct {
	Index    *ucd.Index     // category column; nil while the dataset is loading
	Readings *pinyin.Parser // reading column; nil disables it
}

// Row describes one character of the input.
type Row struct {
	Char        rune
	Code        string // U+XXXX
	Convertible bool
	Checked     bool
	Category    ucd.Category // empty when unknown
	Width       string       // East Asian width abbreviation (Na, W, F, H, A, N)
	Reading     string       // pinyin for Han characters
}

// Selection is the per-input set of rows. It is rebuilt from scratch on every
// input change; only the check marks are mutable.
type Selection struct {
	text string
	rows []Row
}

// New builds a fresh selection for text, one row per rune in document order.
func New(text string, opts Options) *Selection {
	s := &Selection{text: text}
	for _, r := range text {
		row := Row{
			Char:        r,
			Code:        ucd.CodeLabel(r),
			Convertible: fullwidth.IsConvertible(r),
			Width:       widthAbbrev(width.LookupRune(r).Kind()),
		}
		if c, ok := opts.Index.Lookup(r); ok {
			row.Category = c
		}
		if opts.Readings != nil {
			row.Reading = opts.Readings.Summary(r)
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// Text returns the input the selection was built from.
func (s *Selection) Text() string {
	return s.text
}

// Len returns the number of rows.
func (s *Selection) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the rows.
func (s *Selection) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Row returns row i.
func (s *Selection) Row(i int) (Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[i], true
}

// Toggle flips the check mark of row i. Rows that can't be converted have no
// check box, so toggling them does nothing and returns false.
func (s *Selection) Toggle(i int) bool {
	if i < 0 || i >= len(s.rows) || !s.rows[i].Convertible {
		return false
	}
	s.rows[i].Checked = !s.rows[i].Checked
	return true
}

// Check sets the check mark on each listed row (0-based), ignoring rows that
// are out of range or not convertible. It returns how many rows it checked.
func (s *Selection) Check(positions ...int) int {
	n := 0
	for _, i := range positions {
		if i < 0 || i >= len(s.rows) || !s.rows[i].Convertible {
			continue
		}
		if !s.rows[i].Checked {
			s.rows[i].Checked = true
			n++
		}
	}
	return n
}

// Checked returns the checked characters in row order.
func (s *Selection) Checked() []rune {
	var out []rune
	for _, row := range s.rows {
		if row.Checked {
			out = append(out, row.Char)
		}
	}
	return out
}

// Converted returns the fullwidth forms of the checked characters only.
func (s *Selection) Converted() string {
	return fullwidth.Aggregate(s.Checked())
}

// ConvertAll returns the whole input with every convertible character
// replaced by its fullwidth form.
func (s *Selection) ConvertAll() string {
	return fullwidth.ConvertAll(s.text)
}

func widthAbbrev(k width.Kind) string {
	switch k {
	case width.EastAsianAmbiguous:
		return "A"
	case width.EastAsianWide:
		return "W"
	case width.EastAsianNarrow:
		return "Na"
	case width.EastAsianFullwidth:
		return "F"
	case width.EastAsianHalfwidth:
		return "H"
	default:
		return "N"
	}
}
