package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/models"
)

// maxConcurrentLookups bounds the member lookups of a single CheckRoles call
const maxConcurrentLookups = 4

// MsgLookupIncomplete marks a role check whose lookup ran out of time
const MsgLookupIncomplete = "Verifica ruoli non completata"

// errNoTime is returned when the request deadline ends before a lookup is sent
var errNoTime = errors.New("no time left for the member lookup")

// Client looks up guild members through the Discord bot API
type Client struct {
	cfg        config.DiscordConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Discord client. Outbound calls are rate limited to
// cfg.RequestsPerSecond; zero disables the limit.
func New(cfg config.DiscordConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// MemberRoles returns the role ids of a guild member. Any failure yields no roles.
func (c *Client) MemberRoles(ctx context.Context, discordID string) []string {
	roles, _ := c.lookup(ctx, discordID)
	return roles
}

// lookup reports whether the member request completed. A false result means
// the roles are unknown, not empty.
func (c *Client) lookup(ctx context.Context, discordID string) ([]string, bool) {
	start := time.Now()
	roles, err := c.memberRoles(ctx, discordID)
	api.RecordUpstream("discord", err == nil, time.Since(start))
	if err != nil {
		zap.S().Warnw("discord member lookup failed", "discordId", discordID, "error", err)
		return nil, !errors.Is(err, errNoTime) && ctx.Err() == nil
	}
	return roles, true
}

func (c *Client) memberRoles(ctx context.Context, discordID string) ([]string, error) {
	// Wait fails without waiting when the deadline is closer than the next token
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", errNoTime, err)
	}

	endpoint := fmt.Sprintf("%s/guilds/%s/members/%s", c.cfg.APIBase, url.PathEscape(c.cfg.GuildID), url.PathEscape(discordID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.cfg.BotToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get member: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read member: %w", err)
	}

	var roles []string
	for _, r := range gjson.GetBytes(body, "roles").Array() {
		roles = append(roles, r.String())
	}
	return roles, nil
}

// CheckRoles classifies each Discord id as admin and/or moderator. Ids whose
// lookup could not finish before ctx ended carry MsgLookupIncomplete.
func (c *Client) CheckRoles(ctx context.Context, ids []string) map[string]models.RoleCheck {
	var mu sync.Mutex
	results := make(map[string]models.RoleCheck, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			roles, done := c.lookup(gctx, id)
			check := models.RoleCheck{
				IsAdmin: intersects(roles, c.cfg.AdminRoleIDs),
				IsMod:   intersects(roles, c.cfg.ModRoleIDs),
			}
			if !done {
				check.Error = MsgLookupIncomplete
			}
			mu.Lock()
			results[id] = check
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func intersects(roles, wanted []string) bool {
	for _, r := range roles {
		for _, w := range wanted {
			if r == w {
				return true
			}
		}
	}
	return false
}
