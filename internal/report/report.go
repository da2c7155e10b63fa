// Package report summarises a character index as Markdown or HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/f3rmion/unichar/internal/ucd"
)

// SampleSize is how many characters of each category the report shows.
const SampleSize = 8

// Markdown renders a table with one line per discovered category.
func Markdown(idx *ucd.Index, source string) string {
	var b strings.Builder

	b.WriteString("# Unicode categories\n\n")
	if source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", source)
	}
	fmt.Fprintf(&b, "%d characters in %d categories.\n\n", idx.Len(), len(idx.Categories()))

	b.WriteString("| Code | Category | Characters | Sample |\n")
	b.WriteString("|------|----------|-----------:|--------|\n")
	for _, cat := range idx.Categories() {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			cat,
			escapeCell(ucd.DisplayName(cat)),
			idx.Count(cat),
			escapeCell(sample(idx.Bucket(cat))),
		)
	}

	return b.String()
}

// HTML renders the Markdown report with goldmark.
func HTML(idx *ucd.Index, source string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Unicode categories</title></head><body>\n")
	if err := md.Convert([]byte(Markdown(idx, source)), &buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	buf.WriteString("</body></html>\n")

	return buf.Bytes(), nil
}

// sample lists the first few printable characters of a bucket.
func sample(records []ucd.Record) string {
	var parts []string
	for _, rec := range records {
		if len(parts) == SampleSize {
			break
		}
		if rec.Category.Group() == ucd.GroupOther || rec.Category.Group() == ucd.GroupSeparator {
			parts = append(parts, rec.Label())
			continue
		}
		parts = append(parts, rec.String())
	}
	return strings.Join(parts, " ")
}

// escapeCell backslash-escapes ASCII punctuation so sample characters can't
// break the table or turn into inline markup.
func escapeCell(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
