package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("ADMIN_ROLE_IDS", "1, 2,,3")
	t.Setenv("TOKEN_TTL", "30m")
	conf := New()

	assert.Equal(t, "pg.internal", conf.AppDB.Host)
	assert.Equal(t, 4, conf.AppDB.MaxConns)
	assert.Equal(t, []string{"1", "2", "3"}, conf.Discord.AdminRoleIDs)
	assert.Equal(t, 30*time.Minute, conf.TokenTTL)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("AGENT_JOBS", "")
	t.Setenv("LOG_AUTHORIZED_PORTS", "")
	conf := New()

	assert.Equal(t, 2*time.Hour, conf.TokenTTL)
	assert.Equal(t, []string{"police", "sceriffi", "doj"}, conf.AgentJobs)
	assert.Equal(t, []string{"30120"}, conf.LogAuthorizedPorts)
	assert.Equal(t, 5*time.Second, conf.FiveM.Timeout)
	assert.Equal(t, "sql", conf.LogStore)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "error it borked", body["error"])
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,b,"))
}
