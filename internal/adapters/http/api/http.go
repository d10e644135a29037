// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okian/scout/internal/adapters/dataset"
	"github.com/okian/scout/internal/adapters/repository"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	RolesDependencies
	RankDependencies
	DatasetDependencies
}

// RolesDependencies lists configured roles.
type RolesDependencies interface {
	Roles() []profile.RoleInfo
}

// RankDependencies computes role tables.
type RankDependencies interface {
	Rank(ctx context.Context, q service.Query) (service.Result, error)
}

// DatasetDependencies replaces the dataset.
type DatasetDependencies interface {
	ReplaceDataset(ctx context.Context, r io.Reader, format dataset.Format, source string) (*repository.Snapshot, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats(ctx context.Context) types.Stats
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	rolesHandler       *RolesHandler
	radarHandler       *RadarHandler
	percentilesHandler *PercentilesHandler
	datasetHandler     *DatasetHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := newOptions(opts)
	return &Server{
		healthHandler:      NewHealthHandler(statsProvider),
		statsHandler:       NewStatsHandler(statsProvider),
		rolesHandler:       NewRolesHandler(deps),
		radarHandler:       NewRadarHandler(deps),
		percentilesHandler: NewPercentilesHandler(deps),
		datasetHandler:     NewDatasetHandler(deps, o.maxUploadBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/roles", MetricsMiddleware(s.rolesHandler.HandleGetRoles, "roles"))
	mux.HandleFunc("/radar", MetricsMiddleware(s.radarHandler.HandleGetRadar, "radar"))
	mux.HandleFunc("/percentiles", MetricsMiddleware(s.percentilesHandler.HandleGetPercentiles, "percentiles"))
	mux.HandleFunc("/dataset", MetricsMiddleware(s.datasetHandler.HandlePutDataset, "dataset"))
}

// Option configures the Server.
type Option func(*options)

type options struct {
	maxUploadBytes int64
}

func newOptions(opts []Option) *options {
	o := &options{maxUploadBytes: 32 << 20}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxUploadBytes limits PUT /dataset bodies.
func WithMaxUploadBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxUploadBytes = n
		}
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
