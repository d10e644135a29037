package api

import (
	"net/http"

	"github.com/okian/scout/internal/domain/profile"
)

// RolesHandler lists configured roles.
type RolesHandler struct {
	deps RolesDependencies
}

// NewRolesHandler creates a new roles handler.
func NewRolesHandler(deps RolesDependencies) *RolesHandler {
	return &RolesHandler{deps: deps}
}

type rolesResponse struct {
	Roles []profile.RoleInfo `json:"roles"`
}

// HandleGetRoles handles GET /roles requests.
func (h *RolesHandler) HandleGetRoles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rolesResponse{Roles: h.deps.Roles()})
}
