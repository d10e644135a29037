package api

import (
	"net/http"

	service "github.com/okian/scout/internal/app"
)

// RadarHandler serves the top-N chart payload.
type RadarHandler struct {
	deps RankDependencies
}

// NewRadarHandler creates a new radar handler.
func NewRadarHandler(deps RankDependencies) *RadarHandler {
	return &RadarHandler{deps: deps}
}

// HandleGetRadar handles GET /radar?role=...&top=N requests.
func (h *RadarHandler) HandleGetRadar(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_radar"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseQuery(op, r.URL.Query())
	if err != nil {
		fail(w, err)
		return
	}
	res, err := h.deps.Rank(r.Context(), q)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, service.ToRadar(res))
}
