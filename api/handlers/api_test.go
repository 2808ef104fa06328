package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/handlers"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases/mocks"
	"github.com/fivelives/tablet-api/models"
)

const testSecret = "router-secret"

type testApp struct {
	handler http.Handler
	game    sqlmock.Sqlmock
	app     sqlmock.Sqlmock
	logs    *mocks.LogDatabase
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	gameDB, game, err := sqlmock.New()
	require.NoError(t, err)
	appDB, app, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = gameDB.Close()
		_ = appDB.Close()
	})

	logs := &mocks.LogDatabase{}
	a := handlers.App{
		Config: config.Config{
			SecretKey:          testSecret,
			TokenTTL:           time.Hour,
			LogAuthorizedIPs:   []string{"0.0.0.0"},
			LogAuthorizedPorts: []string{"30120"},
			AgentJobs:          []string{"police"},
			AllowedOrigins:     []string{"*"},
		},
		GameDB: sqlx.NewDb(gameDB, "mysql"),
		AppDB:  sqlx.NewDb(appDB, "postgres"),
		LogDB:  logs,
	}
	a.Router = a.New()
	return testApp{handler: a.Handler(), game: game, app: app, logs: logs}
}

func (ta testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ta.handler.ServeHTTP(rr, req)
	return rr
}

func TestApp_HealthCheck(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive":true}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
}

func TestApp_Metrics(t *testing.T) {
	ta := newTestApp(t)
	ta.do(httptest.NewRequest("GET", "/health", nil))

	rr := ta.do(httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `tablet_http_requests_total{method="GET",path="/health",status="200"}`)
}

func TestApp_AuthenticatedRoutes(t *testing.T) {
	ta := newTestApp(t)

	for _, req := range []*http.Request{
		httptest.NewRequest("GET", "/api/personaggi", nil),
		httptest.NewRequest("POST", "/api/reports/crea/4", strings.NewReader(`{}`)),
	} {
		rr := ta.do(req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, req.URL.Path)
		assert.JSONEq(t, `{"error":"Token mancante"}`, rr.Body.String(), req.URL.Path)
	}
}

func TestApp_CreateAnnotationWithToken(t *testing.T) {
	ta := newTestApp(t)
	ta.app.ExpectExec(`INSERT INTO rapporti`).
		WithArgs(int64(4), "17").
		WillReturnResult(sqlmock.NewResult(0, 1))
	token, err := api.IssueToken(testSecret, "17", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports/crea/4", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := ta.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, ta.app.ExpectationsWereMet())
}

func TestApp_PublicRoute(t *testing.T) {
	ta := newTestApp(t)
	ta.app.ExpectQuery(`SELECT id, nome, stato FROM aziende`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "stato"}).AddRow(1, "Benny's", 1))

	req := httptest.NewRequest("GET", "/api/procura/aziende", nil)
	req.Header.Set("Origin", "https://tablet.example")
	rr := ta.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"nome":"Benny's","stato":1}]`, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NoError(t, ta.app.ExpectationsWereMet())
}

func TestApp_LogIngestionAllowList(t *testing.T) {
	ta := newTestApp(t)
	ta.logs.On("InsertWebhook", mock.Anything, mock.Anything).Return(nil).Once()

	refused := httptest.NewRequest("POST", "/api/logs/ox_lib", strings.NewReader(webhookBody))
	rr := ta.do(refused)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"Accesso non autorizzato"}`, rr.Body.String())

	allowed := httptest.NewRequest("POST", "/api/logs/ox_lib/deaths", strings.NewReader(webhookBody))
	allowed.RemoteAddr = "0.0.0.0:30120"
	rr = ta.do(allowed)
	assert.Equal(t, http.StatusOK, rr.Code)
	ta.logs.AssertExpectations(t)
}

func TestApp_BatchLogsOpenToAnyAddress(t *testing.T) {
	ta := newTestApp(t)
	ta.logs.On("InsertServerLog", mock.Anything, models.ServerLog{
		Plugin:      "esx",
		PluginType:  "join",
		Description: "Mario joined",
	}).Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/logs", strings.NewReader(`[{"plugin":"esx","plugin_type":"join","description":"Mario joined"}]`))
	req.RemoteAddr = "203.0.113.7:51234"
	rr := ta.do(req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"inserted":1}`, rr.Body.String())
	ta.logs.AssertExpectations(t)
}

func TestApp_UnknownMethod(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(httptest.NewRequest("DELETE", "/api/jobs", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
