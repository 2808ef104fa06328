package handlers

import (
	"context"
	"net/http"

	"github.com/fivelives/tablet-api/models"
)

// StatusChecker reports whether the game server is listed online
type StatusChecker interface {
	Status(ctx context.Context) models.ServerStatus
}

// Status exported for testing purposes
type Status struct {
	FiveM StatusChecker
}

// StatusHandler returns the server listing summary. It never fails, an
// unreachable listing reads as offline.
func (s Status) StatusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.FiveM.Status(r.Context()))
}
