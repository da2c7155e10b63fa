// Package ucd indexes the Unicode character database by general category.
package ucd

import "fmt"

// Category is a two-letter Unicode general category code (e.g. "Lu", "Nd").
type Category string

// Major category groups, taken from the first letter of the code.
const (
	GroupLetter      = 'L'
	GroupMark        = 'M'
	GroupNumber      = 'N'
	GroupPunctuation = 'P'
	GroupSymbol      = 'S'
	GroupSeparator   = 'Z'
	GroupOther       = 'C'
)

// Group returns the major class letter of the category, or 0 for an empty code.
func (c Category) Group() byte {
	if c == "" {
		return 0
	}
	return c[0]
}

// Record is a single character from the database.
type Record struct {
	Code     rune     // Unicode scalar value
	Category Category // General category assigned by the dataset
}

// String returns the character itself. Supplementary-plane codepoints convert
// to their full scalar value; lone surrogates render as U+FFFD.
func (r Record) String() string {
	return string(r.Code)
}

// Label returns the codepoint in U+XXXX form.
func (r Record) Label() string {
	return CodeLabel(r.Code)
}

// CodeLabel formats a codepoint as U+XXXX (at least four hex digits).
func CodeLabel(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
