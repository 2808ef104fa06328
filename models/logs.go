package models

import (
	"encoding/json"
	"time"
)

// WebhookLog is a Discord style webhook payload forwarded by a game plugin
type WebhookLog struct {
	ID        string          `json:"id"`
	Plugin    string          `json:"plugin"`
	Type      *string         `json:"type"`
	AvatarURL *string         `json:"avatar_url"`
	Embeds    json.RawMessage `json:"embeds"`
	Username  *string         `json:"username"`
	Date      time.Time       `json:"date"`
}

// WebhookPayload is the body posted by plugins to /api/logs/{plugin}
type WebhookPayload struct {
	AvatarURL *string           `json:"avatar_url"`
	Username  *string           `json:"username"`
	Embeds    []json.RawMessage `json:"embeds"`
}

// ServerLog is one entry of a batch posted to /api/logs
type ServerLog struct {
	Plugin      string `json:"plugin"`
	PluginType  string `json:"plugin_type"`
	Description string `json:"description"`
}

// Complete reports whether every field of the entry is set
func (s ServerLog) Complete() bool {
	return s.Plugin != "" && s.PluginType != "" && s.Description != ""
}

// FailedLog records a batch entry that could not be stored
type FailedLog struct {
	Entry ServerLog `json:"entry"`
	Error string    `json:"error"`
}

// BatchLogResponse is the outcome of a batch ingestion
type BatchLogResponse struct {
	Success  bool        `json:"success"`
	Inserted *int        `json:"inserted,omitempty"`
	Failed   []FailedLog `json:"failed,omitempty"`
}
