package models

// ServerStatus is the FiveM listing summary of the game server
type ServerStatus struct {
	Online     bool   `json:"online"`
	Players    *int64 `json:"players,omitempty"`
	MaxPlayers *int64 `json:"maxPlayers,omitempty"`
}

// RoleCheck classifies a Discord member
type RoleCheck struct {
	IsAdmin bool   `json:"isAdmin"`
	IsMod   bool   `json:"isMod"`
	Error   string `json:"error,omitempty"`
}
