package fivem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/models"
)

// Client reads the public FiveM server listing
type Client struct {
	cfg        config.FiveMConfig
	httpClient *http.Client
}

// New creates a FiveM listing client
func New(cfg config.FiveMConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Status reports whether the server is listed and how many players it has.
// Any failure reports the server offline.
func (c *Client) Status(ctx context.Context) models.ServerStatus {
	start := time.Now()
	status, err := c.status(ctx)
	api.RecordUpstream("fivem", err == nil, time.Since(start))
	if err != nil {
		zap.S().Warnw("fivem status lookup failed", "joinCode", c.cfg.JoinCode, "error", err)
		return models.ServerStatus{Online: false}
	}
	return status
}

func (c *Client) status(ctx context.Context) (models.ServerStatus, error) {
	endpoint := fmt.Sprintf("%s/%s", c.cfg.APIBase, url.PathEscape(c.cfg.JoinCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("get server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ServerStatus{}, fmt.Errorf("get server: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("read server: %w", err)
	}

	clients := gjson.GetBytes(body, "Data.clients")
	maxClients := gjson.GetBytes(body, "Data.sv_maxclients")
	if !clients.Exists() || !maxClients.Exists() {
		return models.ServerStatus{}, fmt.Errorf("unexpected listing payload")
	}
	players, maxPlayers := clients.Int(), maxClients.Int()
	return models.ServerStatus{Online: true, Players: &players, MaxPlayers: &maxPlayers}, nil
}
