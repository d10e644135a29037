package percentile

import "github.com/okian/scout/internal/domain/model"

// Option configures Normalize.
type Option func(*options)

type options struct {
	identity    model.IdentityKey
	deduplicate bool
	foldCase    bool
}

func newOptions(opts ...Option) options {
	o := options{identity: model.IdentityName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIdentityKey sets how rows are addressed and deduplicated.
func WithIdentityKey(k model.IdentityKey) Option {
	return func(o *options) {
		if k != "" {
			o.identity = k
		}
	}
}

// WithCaseFolding makes deduplication ignore case and surrounding
// whitespace in identities.
func WithCaseFolding(enabled bool) Option {
	return func(o *options) {
		o.foldCase = enabled
	}
}

// WithDeduplication keeps only the first row per identity when enabled.
func WithDeduplication(enabled bool) Option {
	return func(o *options) {
		o.deduplicate = enabled
	}
}
