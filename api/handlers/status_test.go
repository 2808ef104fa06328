package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivelives/tablet-api/api/handlers"
	"github.com/fivelives/tablet-api/models"
)

type fakeStatus models.ServerStatus

func (f fakeStatus) Status(context.Context) models.ServerStatus {
	return models.ServerStatus(f)
}

func TestStatus_StatusHandler(t *testing.T) {
	s := handlers.Status{FiveM: fakeStatus{Online: true, Players: int64Ptr(42), MaxPlayers: int64Ptr(128)}}

	rr := serve(t, s.StatusHandler, "GET", "/api/status", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"online":true,"players":42,"maxPlayers":128}`, rr.Body.String())
}

func TestStatus_StatusHandlerOffline(t *testing.T) {
	s := handlers.Status{FiveM: fakeStatus{}}

	rr := serve(t, s.StatusHandler, "GET", "/api/server-status", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"online":false}`, rr.Body.String())
}
