// Package fullwidth converts printable ASCII to the Unicode fullwidth forms.
package fullwidth

import "strings"

// Range of convertible codepoints: printable ASCII without the space.
const (
	First  rune = 0x21   // '!'
	Last   rune = 0x7E   // '~'
	Offset rune = 0xFEE0 // distance from ASCII to the Halfwidth and Fullwidth Forms block
)

// IsConvertible reports whether r has a fullwidth counterpart.
func IsConvertible(r rune) bool {
	return r >= First && r <= Last
}

// Convert returns the fullwidth form of r. Runes outside the convertible
// range are returned unchanged.
func Convert(r rune) rune {
	if !IsConvertible(r) {
		return r
	}
	return r + Offset
}

// ConvertAll rewrites s, substituting the fullwidth form of every convertible
// rune and leaving the rest in place.
func ConvertAll(s string) string {
	return strings.Map(Convert, s)
}
