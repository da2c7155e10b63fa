// Package pinyin looks up Mandarin readings for Han characters.
package pinyin

import (
	"fmt"
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Tone is a Mandarin tone number: 1-4, or 5 for the neutral tone.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // ˉ
	Tone2       Tone = 2 // ˊ
	Tone3       Tone = 3 // ˇ
	Tone4       Tone = 4 // ˋ
	Tone5       Tone = 5 // neutral
)

// Reading is one pronunciation of a character.
type Reading struct {
	Full string // with tone mark, e.g. "hǎo"
	Base string // without tone mark, e.g. "hao"
	Tone Tone
}

// String returns the reading in numbered form, e.g. "hao3".
func (r Reading) String() string {
	return fmt.Sprintf("%s%d", r.Base, r.Tone)
}

// Parser resolves readings with go-pinyin.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a parser that returns every reading of a character.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Parser{args: args}
}

// Readings returns all readings of r. Characters outside the Han script
// have none.
func (p *Parser) Readings(r rune) []Reading {
	if p == nil || !unicode.Is(unicode.Han, r) {
		return nil
	}

	result := gopinyin.Pinyin(string(r), p.args)
	if len(result) == 0 {
		return nil
	}

	readings := make([]Reading, 0, len(result[0]))
	for _, full := range result[0] {
		tone, base := extractTone(full)
		readings = append(readings, Reading{Full: full, Base: base, Tone: tone})
	}
	return readings
}

// Summary joins the tone-marked readings of r with "/", or returns "" when
// r has none.
func (p *Parser) Summary(r rune) string {
	readings := p.Readings(r)
	if len(readings) == 0 {
		return ""
	}

	parts := make([]string, len(readings))
	for i, reading := range readings {
		parts[i] = reading.Full
	}
	return strings.Join(parts, "/")
}

// Numbered joins the numbered readings of r with "/", e.g. "hao3/hao4".
func (p *Parser) Numbered(r rune) string {
	readings := p.Readings(r)
	parts := make([]string, len(readings))
	for i, reading := range readings {
		parts[i] = reading.String()
	}
	return strings.Join(parts, "/")
}

var toneMarks = map[rune]struct {
	base rune
	tone Tone
}{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
	'ń': {'n', Tone2}, 'ň': {'n', Tone3}, 'ǹ': {'n', Tone4}, 'ḿ': {'m', Tone2},
}

// extractTone returns the tone number and the syllable without tone marks.
func extractTone(syllable string) (Tone, string) {
	tone := ToneUnknown
	var result strings.Builder

	for _, r := range syllable {
		if mark, ok := toneMarks[r]; ok {
			result.WriteRune(mark.base)
			tone = mark.tone
		} else {
			result.WriteRune(r)
		}
	}

	// No tone mark means neutral tone
	if tone == ToneUnknown {
		tone = Tone5
	}

	return tone, result.String()
}
