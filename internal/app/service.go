// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/okian/scout/internal/adapters/dataset"
	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/percentile"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/internal/domain/ranking"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// DefaultTopN is used when a query does not ask for a size.
const DefaultTopN = 5

// ErrInvalidTopN is returned when the requested top-N is outside [1, max].
var ErrInvalidTopN = errors.New("invalid top-n")

// Metric source labels.
const (
	sourceFile   = "file"
	sourceURL    = "url"
	sourceUpload = "upload"
)

// Service ranks players of the current dataset by role.
type Service struct {
	mu sync.RWMutex

	catalog *profile.Catalog
	store   repository.Store
	fetcher *dataset.Fetcher

	// Startup dataset
	datasetPath string
	datasetURL  string
	parseOpts   []dataset.Option

	// Query defaults
	language string
	scope    filter.Scope
	identity model.IdentityKey
	dedupe   bool
	foldCase bool
	maxTopN  int

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		language: "es",
		scope:    filter.DefaultScope,
		identity: model.IdentityName,
		dedupe:   true,
		maxTopN:  50,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resolves missing dependencies and loads the configured dataset.
// A configured dataset that cannot be loaded fails Start.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.catalog == nil {
		cat, err := profile.Default(ctx)
		if err != nil {
			return err
		}
		s.catalog = cat
	}
	if s.store == nil {
		s.store = repository.NewSnapshotStore()
	}
	if s.fetcher == nil {
		s.fetcher = dataset.NewFetcher(dataset.WithFetchLogger(s.logger))
	}

	switch {
	case s.datasetPath != "":
		if _, err := s.loadFile(ctx, s.datasetPath); err != nil {
			return err
		}
	case s.datasetURL != "":
		if _, err := s.loadURL(ctx, s.datasetURL); err != nil {
			return err
		}
	default:
		s.logger.Warn(ctx, "no dataset configured; waiting for upload")
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "scouting service started",
		logger.Int("roles", len(s.catalog.Roles())),
		logger.Int("players", s.store.Count(ctx)),
		logger.String("scope", string(s.scope)),
		logger.String("identity", string(s.identity)),
		logger.Bool("dedupe", s.dedupe),
	)
	return nil
}

// LoadFile replaces the dataset with the file at path.
func (s *Service) LoadFile(ctx context.Context, path string) (*repository.Snapshot, error) {
	return s.loadFile(ctx, path)
}

// LoadURL replaces the dataset with the export at url.
func (s *Service) LoadURL(ctx context.Context, url string) (*repository.Snapshot, error) {
	return s.loadURL(ctx, url)
}

// ReplaceDataset parses r and publishes it as the new dataset. On error the
// previous dataset stays in place.
func (s *Service) ReplaceDataset(ctx context.Context, r io.Reader, format dataset.Format, source string) (*repository.Snapshot, error) {
	players, err := dataset.Parse(ctx, r, format, s.parseOpts...)
	return s.publish(ctx, players, err, sourceUpload, source)
}

func (s *Service) loadFile(ctx context.Context, path string) (*repository.Snapshot, error) {
	players, err := dataset.LoadFile(ctx, path, s.parseOpts...)
	return s.publish(ctx, players, err, sourceFile, path)
}

func (s *Service) loadURL(ctx context.Context, url string) (*repository.Snapshot, error) {
	players, err := s.fetcher.Fetch(ctx, url, s.parseOpts...)
	return s.publish(ctx, players, err, sourceURL, url)
}

func (s *Service) publish(ctx context.Context, players []model.Player, err error, kind, source string) (*repository.Snapshot, error) {
	if err != nil {
		metrics.RecordDatasetLoadError(kind)
		s.logger.Error(ctx, "dataset load failed",
			logger.String("source", source),
			logger.Error(err),
		)
		return nil, err
	}
	snap, err := s.store.Replace(ctx, players, source)
	if err != nil {
		return nil, err
	}
	metrics.RecordDatasetLoaded(kind, snap.Len(), snap.LoadedAt.Unix())
	s.logger.Info(ctx, "dataset loaded",
		logger.String("source", source),
		logger.Int("players", snap.Len()),
		logger.Any("sequence", snap.Sequence),
	)
	return snap, nil
}

// Roles lists the configured roles.
func (s *Service) Roles() []profile.RoleInfo {
	return s.catalog.Roles()
}

// Query asks for one role table. Zero values take the service defaults.
type Query struct {
	Role     string
	Language string
	Scope    filter.Scope
	Identity model.IdentityKey
	Dedupe   *bool
	Criteria filter.Criteria
	TopN     int
}

// Result is a computed role table. Rows are the displayed rows in dataset
// order; Top is the best TopN of them by overall percentile.
type Result struct {
	Role           string
	Language       string
	Scope          filter.Scope
	Categories     []string
	PopulationSize int
	Rows           []percentile.Row
	Top            []percentile.Row
	TopN           int
}

// Rank scores, normalizes and selects players for q. Every call recomputes
// from the current snapshot.
func (s *Service) Rank(ctx context.Context, q Query) (Result, error) {
	start := time.Now()

	rp, err := s.catalog.Profile(q.Role, s.orDefaultLanguage(q.Language))
	if err != nil {
		return Result{}, err
	}
	n := q.TopN
	if n == 0 {
		n = min(DefaultTopN, s.maxTopN)
	}
	if n < 1 || n > s.maxTopN {
		return Result{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTopN, n, s.maxTopN)
	}
	scope := q.Scope
	if scope == "" {
		scope = s.scope
	}
	identity := q.Identity
	if identity == "" {
		identity = s.identity
	}
	dedupe := s.dedupe
	if q.Dedupe != nil {
		dedupe = *q.Dedupe
	}

	snap, err := s.store.Current(ctx)
	if err != nil {
		return Result{}, err
	}

	sel := filter.Select(snap.Players, rp, scope, q.Criteria)
	table := percentile.Normalize(ctx, sel.Population, rp,
		percentile.WithIdentityKey(identity),
		percentile.WithDeduplication(dedupe),
		percentile.WithCaseFolding(s.foldCase),
	)

	rows := make([]percentile.Row, 0, table.Len())
	for _, r := range table.Rows {
		if sel.Show(r.Player) {
			rows = append(rows, r)
		}
	}
	top, err := ranking.TopN(rows, n)
	if err != nil {
		return Result{}, err
	}

	metrics.RecordRankingComputed(rp.Role, string(sel.Scope))
	metrics.RecordPopulationSize(table.Len())
	metrics.RecordDuplicatesDropped(len(sel.Population) - table.Len())
	if table.Len() == 0 {
		metrics.RecordEmptyPopulation(rp.Role, string(sel.Scope))
	}
	metrics.RecordRankingLatency(float64(time.Since(start).Microseconds()) / 1000)

	s.logger.Debug(ctx, "ranking computed",
		logger.String("role", rp.Role),
		logger.String("language", rp.Language),
		logger.String("scope", string(sel.Scope)),
		logger.Int("population", table.Len()),
		logger.Int("displayed", len(rows)),
	)

	return Result{
		Role:           rp.Role,
		Language:       rp.Language,
		Scope:          sel.Scope,
		Categories:     table.Categories,
		PopulationSize: table.Len(),
		Rows:           rows,
		Top:            top,
		TopN:           n,
	}, nil
}

// Radar returns the chart payload for q.
func (s *Service) Radar(ctx context.Context, q Query) (types.Radar, error) {
	res, err := s.Rank(ctx, q)
	if err != nil {
		return types.Radar{}, err
	}
	return ToRadar(res), nil
}

// Table returns every displayed row for q.
func (s *Service) Table(ctx context.Context, q Query) (types.Table, error) {
	res, err := s.Rank(ctx, q)
	if err != nil {
		return types.Table{}, err
	}
	return ToTable(res), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := types.Stats{}
	if s.catalog != nil {
		st.Roles = len(s.catalog.Roles())
	}
	if s.started {
		st.UptimeSecond = int64(time.Since(s.startedAt).Seconds())
	}
	if s.store == nil {
		return st
	}
	if snap, err := s.store.Current(ctx); err == nil {
		st.Players = snap.Len()
		st.Source = snap.Source
		st.Sequence = snap.Sequence
		st.LoadedAt = snap.LoadedAt
	}
	metrics.UpdatePlayersLoaded(st.Players)
	return st
}

func (s *Service) orDefaultLanguage(lang string) string {
	if lang == "" {
		return s.language
	}
	return lang
}
