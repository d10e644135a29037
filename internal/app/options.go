package service

import (
	"github.com/okian/scout/internal/adapters/dataset"
	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog sets the role profiles; the built-in catalog is used otherwise.
func WithCatalog(c *profile.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithStore sets the dataset store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithFetcher sets the remote dataset fetcher.
func WithFetcher(f *dataset.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithDatasetPath loads the file at path on Start.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithDatasetURL fetches url on Start when no path is set.
func WithDatasetURL(url string) Option {
	return func(s *Service) {
		s.datasetURL = url
	}
}

// WithParseOptions passes options to every dataset parse.
func WithParseOptions(opts ...dataset.Option) Option {
	return func(s *Service) {
		s.parseOpts = append(s.parseOpts, opts...)
	}
}

// WithDefaultLanguage sets the category language used when a query has none.
func WithDefaultLanguage(lang string) Option {
	return func(s *Service) {
		if lang != "" {
			s.language = lang
		}
	}
}

// WithDefaultScope sets the population scope used when a query has none.
func WithDefaultScope(scope filter.Scope) Option {
	return func(s *Service) {
		if scope != "" {
			s.scope = scope
		}
	}
}

// WithIdentityKey sets the default identity key.
func WithIdentityKey(k model.IdentityKey) Option {
	return func(s *Service) {
		if k != "" {
			s.identity = k
		}
	}
}

// WithDedupe sets whether duplicate identities are dropped by default.
func WithDedupe(enabled bool) Option {
	return func(s *Service) {
		s.dedupe = enabled
	}
}

// WithDedupeCaseFolding treats identities that differ only in case or
// surrounding whitespace as the same player when deduplicating.
func WithDedupeCaseFolding(enabled bool) Option {
	return func(s *Service) {
		s.foldCase = enabled
	}
}

// WithMaxTopN caps the top-N a query may ask for.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}
