package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bot bot-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/guilds/42/members/1":
			_, _ = w.Write([]byte(`{"user":{"id":"1"},"roles":["10","20"]}`))
		case "/guilds/42/members/2":
			_, _ = w.Write([]byte(`{"user":{"id":"2"},"roles":["30"]}`))
		case "/guilds/42/members/3":
			_, _ = w.Write([]byte(`{"user":{"id":"3"},"roles":["99"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Unknown Member","code":10007}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(base string) config.DiscordConfig {
	return config.DiscordConfig{
		APIBase:      base,
		BotToken:     "bot-token",
		GuildID:      "42",
		AdminRoleIDs: []string{"10"},
		ModRoleIDs:   []string{"20", "30"},
	}
}

func TestCheckRoles(t *testing.T) {
	srv := newTestServer(t)
	client := New(testConfig(srv.URL))

	got := client.CheckRoles(context.Background(), []string{"1", "2", "3", "404"})
	assert.Equal(t, map[string]models.RoleCheck{
		"1":   {IsAdmin: true, IsMod: true},
		"2":   {IsAdmin: false, IsMod: true},
		"3":   {},
		"404": {},
	}, got)
}

func TestMemberRolesBadToken(t *testing.T) {
	srv := newTestServer(t)
	cfg := testConfig(srv.URL)
	cfg.BotToken = "wrong"

	assert.Empty(t, New(cfg).MemberRoles(context.Background(), "1"))
}

func TestMemberRolesUnreachable(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL
	srv.Close()

	assert.Empty(t, New(testConfig(base)).MemberRoles(context.Background(), "1"))
}

func TestMemberRolesCancelledContext(t *testing.T) {
	srv := newTestServer(t)
	cfg := testConfig(srv.URL)
	cfg.RequestsPerSecond = 1
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, New(cfg).MemberRoles(ctx, "1"))
}

func TestCheckRolesMarksLookupsOutOfTime(t *testing.T) {
	srv := newTestServer(t)
	cfg := testConfig(srv.URL)
	cfg.RequestsPerSecond = 1
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	got := New(cfg).CheckRoles(ctx, []string{"1", "2", "3"})

	require.Len(t, got, 3)
	incomplete := 0
	for id, check := range got {
		if check.Error == "" {
			continue
		}
		assert.Equal(t, MsgLookupIncomplete, check.Error, id)
		assert.False(t, check.IsAdmin || check.IsMod, id)
		incomplete++
	}
	assert.Equal(t, 2, incomplete)
}
