package dataset

// Option configures parsing.
type Option func(*options)

type options struct {
	sheet     string
	represent map[string]string
}

func newOptions(opts []Option) *options {
	o := &options{represent: defaultRepresentedCountries}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSheet selects the XLSX sheet to read; the first sheet is used otherwise.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// WithRepresentedCountries maps player names to the national team they
// represent when it differs from their birth country. A nil map disables
// the mapping.
func WithRepresentedCountries(m map[string]string) Option {
	return func(o *options) {
		o.represent = m
	}
}

// Players born abroad who represent a CONMEBOL nation.
var defaultRepresentedCountries = map[string]string{ //nolint:gochecknoglobals // lookup table
	"B. Brereton Díaz": "Chile",
	"G. Lapadula":      "Peru",
	"O. Sonne":         "Peru",
	"E. Morales":       "Bolivia",
	"J. Yeboah":        "Ecuador",
	"J. Sarmiento":     "Ecuador",
	"N. Fonseca":       "Venezuela",
}
