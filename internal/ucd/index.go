package ucd

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// minFields is the number of ';'-separated fields a usable line must have.
const minFields = 3

// Index maps each general category to its characters, in dataset order.
// It is built once and never modified afterwards; a nil *Index behaves as
// an empty index.
type Index struct {
	order   []Category // first-seen order of categories
	buckets map[Category][]Record
	where   map[rune]Category
}

func newIndex() *Index {
	return &Index{
		buckets: make(map[Category][]Record),
		where:   make(map[rune]Category),
	}
}

// maxLineLen bounds a single line. Longer lines are malformed and skipped.
const maxLineLen = 64 * 1024

// Parse builds an index from UnicodeData.txt formatted text. Malformed lines,
// including over-long ones, are skipped; an error is returned only if
// reading r fails.
func Parse(r io.Reader) (*Index, error) {
	idx := newIndex()

	br := bufio.NewReaderSize(r, maxLineLen)
	for {
		line, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading unicode data: %w", err)
		}

		if isPrefix {
			// Drop the rest of the line.
			for isPrefix && err == nil {
				_, isPrefix, err = br.ReadLine()
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading unicode data: %w", err)
			}
			continue
		}

		if rec, ok := parseLine(string(line)); ok {
			idx.add(rec)
		}
	}

	return idx, nil
}

// ParseString builds an index from an in-memory copy of the database.
func ParseString(text string) *Index {
	// strings.Reader never fails and long lines are skipped, so Parse can't
	// return an error here.
	idx, _ := Parse(strings.NewReader(text))
	return idx
}

// parseLine extracts the codepoint (field 0) and category (field 2) of a line.
func parseLine(line string) (Record, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ";")
	if len(fields) < minFields {
		return Record{}, false
	}

	code, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 16, 32)
	if err != nil || code > utf8.MaxRune {
		return Record{}, false
	}

	category := Category(strings.TrimSpace(fields[2]))
	if category == "" {
		return Record{}, false
	}

	return Record{Code: rune(code), Category: category}, true
}

// add appends rec to its bucket. A codepoint seen before moves to the new
// bucket: the last line wins.
func (idx *Index) add(rec Record) {
	if prev, ok := idx.where[rec.Code]; ok {
		idx.remove(prev, rec.Code)
	}

	if _, ok := idx.buckets[rec.Category]; !ok {
		idx.order = append(idx.order, rec.Category)
	}
	idx.buckets[rec.Category] = append(idx.buckets[rec.Category], rec)
	idx.where[rec.Code] = rec.Category
}

func (idx *Index) remove(c Category, code rune) {
	bucket := idx.buckets[c]
	i := slices.IndexFunc(bucket, func(r Record) bool { return r.Code == code })
	if i < 0 {
		return
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) > 0 {
		idx.buckets[c] = bucket
		return
	}

	delete(idx.buckets, c)
	if j := slices.Index(idx.order, c); j >= 0 {
		idx.order = slices.Delete(idx.order, j, j+1)
	}
}

// Categories returns the discovered categories in first-seen order.
func (idx *Index) Categories() []Category {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.order)
}

// Bucket returns the characters of one category in dataset order.
func (idx *Index) Bucket(c Category) []Record {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.buckets[c])
}

// Count returns the number of characters in a category.
func (idx *Index) Count(c Category) int {
	if idx == nil {
		return 0
	}
	return len(idx.buckets[c])
}

// Len returns the total number of indexed characters.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.where)
}

// Lookup returns the category the dataset assigns to r.
func (idx *Index) Lookup(r rune) (Category, bool) {
	if idx == nil {
		return "", false
	}
	c, ok := idx.where[r]
	return c, ok
}

// Build assembles an index from records that are already parsed, e.g. read
// back from an export. The same last-wins rule applies.
func Build(records []Record) *Index {
	idx := newIndex()
	for _, rec := range records {
		if rec.Category == "" || rec.Code < 0 || rec.Code > utf8.MaxRune {
			continue
		}
		idx.add(rec)
	}
	return idx
}
