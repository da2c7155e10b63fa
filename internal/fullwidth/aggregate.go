package fullwidth

import "strings"

// Aggregate concatenates the converted form of each selected rune, in order.
func Aggregate(sel []rune) string {
	var b strings.Builder
	b.Grow(len(sel) * 3)
	for _, r := range sel {
		b.WriteRune(Convert(r))
	}
	return b.String()
}

// Convertible returns the runes of s that IsConvertible accepts, in order.
func Convertible(s string) []rune {
	var out []rune
	for _, r := range s {
		if IsConvertible(r) {
			out = append(out, r)
		}
	}
	return out
}
