package models

import "database/sql"

// User maps a tablet account to its Discord and FiveM identities
type User struct {
	ID      string         `db:"id"`
	Discord sql.NullString `db:"discord"`
	FiveM   sql.NullString `db:"fivem"`
}

// Player is an entry of the txAdmin player registry
type Player struct {
	License          string   `json:"license"`
	IDs              []string `json:"ids"`
	TSLastConnection int64    `json:"tsLastConnection"`
	// PlayTime is expressed in minutes
	PlayTime int64 `json:"playTime"`
}

// PlayerRegistry is the txAdmin players database snapshot
type PlayerRegistry struct {
	Players []Player `json:"players"`
}

// Access describes when a linked account last played and for how long
type Access struct {
	DiscordID        string   `json:"discordId"`
	UserID           string   `json:"userId"`
	LastServerJoinAt *int64   `json:"lastServerJoinAt"`
	HoursPlayed      *float64 `json:"hoursPlayed"`
}

// PlayerCharacters groups the characters of one Discord account
type PlayerCharacters struct {
	DiscordID string          `json:"discord_id"`
	Data      []CharacterInfo `json:"data"`
}

// CharacterInfo is a character enriched with session data
type CharacterInfo struct {
	Identifier       string   `json:"identifier"`
	FirstName        *string  `json:"firstname"`
	LastName         *string  `json:"lastname"`
	Job              *string  `json:"job"`
	JobGrade         *int64   `json:"jobGrade"`
	Job2             *string  `json:"job2"`
	Job2Grade        *int64   `json:"job2Grade"`
	LastServerJoinAt *int64   `json:"lastServerJoinAt"`
	HoursPlayed      *float64 `json:"hoursPlayed"`
}
