package ucd

import "strings"

// ByCategory returns the characters of category c in dataset order. With a
// nil category it returns every bucket concatenated in category order.
func ByCategory(idx *Index, c *Category) []Record {
	if c != nil {
		return idx.Bucket(*c)
	}

	out := make([]Record, 0, idx.Len())
	for _, cat := range idx.Categories() {
		out = append(out, idx.buckets[cat]...)
	}
	return out
}

// Search returns the characters whose category description contains term,
// ignoring case. Categories without a description never match. An empty term
// matches every described category.
func Search(idx *Index, term string) []Record {
	term = strings.ToLower(term)

	var out []Record
	for _, cat := range idx.Categories() {
		desc, ok := Describe(cat)
		if !ok || !strings.Contains(strings.ToLower(desc), term) {
			continue
		}
		out = append(out, idx.buckets[cat]...)
	}
	return out
}

// Filter is the single-select category filter. The zero value shows all.
type Filter struct {
	active Category
	set    bool
}

// Toggle selects c, or clears the filter when c is already selected.
func (f *Filter) Toggle(c Category) {
	if f.set && f.active == c {
		f.Clear()
		return
	}
	f.active = c
	f.set = true
}

// Clear reverts to showing every category.
func (f *Filter) Clear() {
	f.active = ""
	f.set = false
}

// Active returns the selected category, if any.
func (f Filter) Active() (Category, bool) {
	return f.active, f.set
}

// IsActive reports whether c is the selected category.
func (f Filter) IsActive(c Category) bool {
	return f.set && f.active == c
}

// Apply returns the characters the filter selects from idx.
func (f Filter) Apply(idx *Index) []Record {
	if !f.set {
		return ByCategory(idx, nil)
	}
	c := f.active
	return ByCategory(idx, &c)
}

// Query combines the category filter with the free-text search. A non-empty
// search term replaces the category filter's result.
type Query struct {
	Filter
	Term string
}

// Apply returns the characters to display for the current query.
func (q Query) Apply(idx *Index) []Record {
	if q.Term != "" {
		return Search(idx, q.Term)
	}
	return q.Filter.Apply(idx)
}
