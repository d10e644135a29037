package dedupe

import "strings"

// Option applies a configuration option to the InMemoryDeduper.
type Option func(d *inMemoryDeduper, capacity *int)

// WithCapacity pre-sizes the set for the expected number of keys.
func WithCapacity(n int) Option {
	return func(_ *inMemoryDeduper, capacity *int) {
		if n > 0 {
			*capacity = n
		}
	}
}

// WithCaseFolding treats keys that differ only in case or surrounding
// whitespace as the same identity.
func WithCaseFolding() Option {
	return func(d *inMemoryDeduper, _ *int) {
		d.normalize = func(s string) string {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
}
