package ucd

// catalogEntry pairs a category code with its human-readable description.
type catalogEntry struct {
	code Category
	desc string
}

// catalog is the fixed table of general categories, in display order.
var catalog = []catalogEntry{
	{"Ll", "Lowercase Letter"},
	{"Lm", "Modifier Letter"},
	{"Lo", "Other Letter"},
	{"Lt", "Titlecase Letter"},
	{"Lu", "Uppercase Letter"},
	{"Mc", "Spacing Mark"},
	{"Me", "Enclosing Mark"},
	{"Mn", "Nonspacing Mark"},
	{"Nd", "Decimal Number"},
	{"Nl", "Letter Number"},
	{"No", "Other Number"},
	{"Pc", "Connector Punctuation"},
	{"Pd", "Dash Punctuation"},
	{"Pe", "Close Punctuation"},
	{"Pf", "Final Punctuation"},
	{"Pi", "Initial Punctuation"},
	{"Po", "Other Punctuation"},
	{"Ps", "Open Punctuation"},
	{"Sc", "Currency Symbol"},
	{"Sk", "Modifier Symbol"},
	{"Sm", "Math Symbol"},
	{"So", "Other Symbol"},
	{"Zl", "Line Separator"},
	{"Zp", "Paragraph Separator"},
	{"Zs", "Space Separator"},
	{"Cc", "Control"},
	{"Cf", "Format"},
	{"Cs", "Surrogate"},
	{"Co", "Private Use"},
	{"Cn", "Unassigned"},
}

var descriptions = func() map[Category]string {
	m := make(map[Category]string, len(catalog))
	for _, e := range catalog {
		m[e.code] = e.desc
	}
	return m
}()

// Describe returns the description of a category. A miss is not an error:
// it reports false and leaves any fallback to the caller.
func Describe(c Category) (string, bool) {
	desc, ok := descriptions[c]
	return desc, ok
}

// DisplayName returns the description of a category, falling back to the raw
// code for categories the catalog doesn't know.
func DisplayName(c Category) string {
	if desc, ok := descriptions[c]; ok {
		return desc
	}
	return string(c)
}

// Categories returns every catalog code in display order.
func Categories() []Category {
	codes := make([]Category, len(catalog))
	for i, e := range catalog {
		codes[i] = e.code
	}
	return codes
}
