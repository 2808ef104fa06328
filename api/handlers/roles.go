package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/models"
)

// RoleChecker classifies Discord members by their guild roles
type RoleChecker interface {
	CheckRoles(ctx context.Context, ids []string) map[string]models.RoleCheck
}

// Roles exported for testing purposes
type Roles struct {
	Discord RoleChecker
}

// CheckRolesHandler reports for each id in ?ids=a,b whether it is admin or moderator
func (ro Roles) CheckRolesHandler(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		config.ErrorStatus("Nessun ID fornito", http.StatusBadRequest, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, ro.Discord.CheckRoles(r.Context(), ids))
}
