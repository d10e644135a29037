package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

const breakerName = "dataset-fetch"

// Fetcher downloads a published spreadsheet export over HTTP. Consecutive
// failures open a circuit breaker so a dead source is not hammered.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBytes    int64
	maxFailures uint32
	openTimeout time.Duration
	breaker     *gobreaker.CircuitBreaker
	log         logger.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTimeout bounds a single download.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxBytes limits the response body size.
func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// WithBreaker sets how many consecutive failures open the circuit and how
// long it stays open.
func WithBreaker(maxFailures int, openTimeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if maxFailures > 0 {
			f.maxFailures = uint32(maxFailures)
		}
		if openTimeout > 0 {
			f.openTimeout = openTimeout
		}
	}
}

// WithFetchLogger sets the logger.
func WithFetchLogger(l logger.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      http.DefaultClient,
		timeout:     10 * time.Second,
		maxBytes:    32 << 20,
		maxFailures: 3,
		openTimeout: 30 * time.Second,
		log:         logger.Named("dataset"),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     f.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= f.maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			f.log.Warn(context.Background(), "circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
			metrics.UpdateBreakerState(name, int(to))
		},
	})
	metrics.UpdateBreakerState(breakerName, int(gobreaker.StateClosed))
	return f
}

// State reports the breaker state.
func (f *Fetcher) State() gobreaker.State {
	return f.breaker.State()
}

// Fetch downloads and parses the dataset at rawURL. The format comes from
// a "format" query parameter, the URL extension or the response
// Content-Type, in that order.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, opts ...Option) ([]model.Player, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid url %q", ErrFetch, rawURL)
	}

	res, err := f.breaker.Execute(func() (interface{}, error) {
		return f.download(ctx, u)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return nil, err
	}
	body := res.(download) //nolint:forcetypeassert // Execute returns what download returned

	format, err := formatOf(u, body.contentType)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, bytes.NewReader(body.data), format, opts...)
}

type download struct {
	data        []byte
	contentType string
}

func (f *Fetcher) download(ctx context.Context, u *url.URL) (download, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return download{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return download{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return download{}, fmt.Errorf("%w: %s returned %d", ErrFetch, u.Redacted(), resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return download{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if int64(len(data)) > f.maxBytes {
		return download{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxBytes)
	}
	return download{data: data, contentType: resp.Header.Get("Content-Type")}, nil
}

func formatOf(u *url.URL, contentType string) (Format, error) {
	if q := u.Query().Get("format"); q != "" {
		return ParseFormat(q)
	}
	if format, err := FormatFromName(u.Path); err == nil {
		return format, nil
	}
	if contentType != "" {
		return FormatFromMediaType(contentType)
	}
	return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnsupportedFormat, u.Redacted())
}
