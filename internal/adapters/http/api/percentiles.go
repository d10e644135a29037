package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/adapters/export"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/pkg/logger"
)

// PercentilesHandler serves the full displayed table.
type PercentilesHandler struct {
	deps RankDependencies
	log  logger.Logger
}

// NewPercentilesHandler creates a new percentiles handler.
func NewPercentilesHandler(deps RankDependencies) *PercentilesHandler {
	return &PercentilesHandler{deps: deps, log: logger.Named("api")}
}

// HandleGetPercentiles handles GET /percentiles?role=...[&format=csv|xlsx] requests.
func (h *PercentilesHandler) HandleGetPercentiles(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_percentiles"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	values := r.URL.Query()
	format := strings.ToLower(values.Get("format"))
	switch format {
	case "", "json", "csv", "xlsx":
	default:
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("format %q", format)))
		return
	}

	q, err := parseQuery(op, values)
	if err != nil {
		fail(w, err)
		return
	}
	res, err := h.deps.Rank(r.Context(), q)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	table := service.ToTable(res)

	filename := fmt.Sprintf("%s-%s.%s", strings.ToLower(res.Role), res.Scope, format)
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		err = export.WriteCSV(w, table)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		err = export.WriteXLSX(w, table)
	default:
		writeJSON(w, http.StatusOK, table)
	}
	// Headers are already sent, so a failed export can only be logged.
	if err != nil {
		h.log.Error(r.Context(), "percentiles export failed",
			logger.String("role", res.Role),
			logger.String("format", format),
			logger.Error(err),
		)
	}
}
