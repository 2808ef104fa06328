package fivem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/config"
)

func TestStatusOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abc123", r.URL.Path)
		_, _ = w.Write([]byte(`{"EndPoint":"abc123","Data":{"clients":12,"sv_maxclients":64,"hostname":"FiveLives"}}`))
	}))
	defer srv.Close()

	status := New(config.FiveMConfig{APIBase: srv.URL, JoinCode: "abc123"}).Status(context.Background())
	assert.True(t, status.Online)
	require.NotNil(t, status.Players)
	assert.Equal(t, int64(12), *status.Players)
	assert.Equal(t, int64(64), *status.MaxPlayers)
}

func TestStatusOffline(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not listed", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"missing data", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"error":"x"}`)) }},
		{"slow", func(w http.ResponseWriter, r *http.Request) { time.Sleep(200 * time.Millisecond) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := New(config.FiveMConfig{APIBase: srv.URL, JoinCode: "abc123", Timeout: 50 * time.Millisecond})
			status := client.Status(context.Background())
			assert.False(t, status.Online)
			assert.Nil(t, status.Players)
		})
	}
}
