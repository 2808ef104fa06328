package identity

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fivelives/tablet-api/models"
)

const discordPrefix = "discord:"

// Snapshot reads the txAdmin player registry. The file is rewritten by the
// game server while it runs, so it is read again on every Load.
type Snapshot struct {
	path string
}

// NewSnapshot returns a reader for the registry file at path
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Load parses the registry file
func (s *Snapshot) Load() (*models.PlayerRegistry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read player registry: %w", err)
	}
	reg := &models.PlayerRegistry{}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("parse player registry %s: %w", s.path, err)
	}
	return reg, nil
}

// FindByDiscord returns the first registry player carrying the given
// Discord id, or nil
func FindByDiscord(reg *models.PlayerRegistry, discordID string) *models.Player {
	if reg == nil || discordID == "" {
		return nil
	}
	want := discordPrefix + discordID
	for i := range reg.Players {
		for _, id := range reg.Players[i].IDs {
			if id == want {
				return &reg.Players[i]
			}
		}
	}
	return nil
}

// IndexByDiscord maps Discord ids to their registry player
func IndexByDiscord(reg *models.PlayerRegistry) map[string]*models.Player {
	out := map[string]*models.Player{}
	if reg == nil {
		return out
	}
	for i := range reg.Players {
		for _, id := range reg.Players[i].IDs {
			discordID := strings.TrimPrefix(id, discordPrefix)
			if discordID == id || discordID == "" {
				continue
			}
			if _, seen := out[discordID]; !seen {
				out[discordID] = &reg.Players[i]
			}
		}
	}
	return out
}
