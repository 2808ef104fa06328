package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

// maxLogBody caps the size of a plugin log payload
const maxLogBody = 1 << 20

// Logs exported for testing purposes
type Logs struct {
	DB databases.LogDatabase
}

// WebhookHandler stores the first embed of a Discord style webhook payload
// posted by a game plugin. The typed route also records the log type.
func (l Logs) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxLogBody))
	if err != nil || !gjson.ValidBytes(body) {
		config.ErrorStatus("No JSON data received", http.StatusBadRequest, w, err)
		return
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() || len(parsed.Map()) == 0 {
		config.ErrorStatus("No JSON data received", http.StatusBadRequest, w, nil)
		return
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		config.ErrorStatus("No JSON data received", http.StatusBadRequest, w, err)
		return
	}
	if len(payload.Embeds) == 0 {
		config.ErrorStatus("No embeds received", http.StatusBadRequest, w, nil)
		return
	}

	entry := models.WebhookLog{
		Plugin:   vars["plugin"],
		Embeds:   payload.Embeds[0],
		Username: payload.Username,
	}
	if logType, ok := vars["type"]; ok {
		entry.Type = &logType
	} else {
		entry.AvatarURL = payload.AvatarURL
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := l.DB.InsertWebhook(ctx, entry); err != nil {
		api.RecordLog("webhook", false, 1)
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	api.RecordLog("webhook", true, 1)
	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: "Log successfully inserted"})
}

// AllLogsHandler lists the stored webhook logs, newest first
func (l Logs) AllLogsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	entries, err := l.DB.FindWebhooks(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// BatchHandler stores a single server log entry or a list of them. Incomplete
// entries are skipped, entries that fail to store are reported back.
func (l Logs) BatchHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxLogBody))
	if err != nil {
		config.ErrorStatus("Body JSON mancante", http.StatusBadRequest, w, err)
		return
	}
	if len(body) > 0 && !gjson.ValidBytes(body) {
		config.ErrorStatus("Body JSON non valido", http.StatusBadRequest, w, nil)
		return
	}

	entries := batchEntries(gjson.ParseBytes(body))
	if len(entries) == 0 {
		config.ErrorStatus("Body JSON mancante", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	inserted := 0
	failed := []models.FailedLog{}
	for _, raw := range entries {
		entry := models.ServerLog{
			Plugin:      raw.Get("plugin").String(),
			PluginType:  raw.Get("plugin_type").String(),
			Description: raw.Get("description").String(),
		}
		if !entry.Complete() {
			zap.S().Warnw("skipping incomplete server log", "entry", raw.Raw)
			continue
		}
		if err := l.DB.InsertServerLog(ctx, entry); err != nil {
			zap.S().Errorw("failed to store server log", "plugin", entry.Plugin, "error", err)
			failed = append(failed, models.FailedLog{Entry: entry, Error: err.Error()})
			continue
		}
		inserted++
	}

	api.RecordLog("batch", true, inserted)
	if len(failed) > 0 {
		api.RecordLog("batch", false, len(failed))
		writeJSON(w, http.StatusInternalServerError, models.BatchLogResponse{Success: false, Failed: failed})
		return
	}
	writeJSON(w, http.StatusCreated, models.BatchLogResponse{Success: true, Inserted: &inserted})
}

// batchEntries normalizes the body into a list of entries. Empty objects and
// lists count as no entries.
func batchEntries(body gjson.Result) []gjson.Result {
	switch {
	case body.IsArray():
		return body.Array()
	case body.IsObject() && len(body.Map()) > 0:
		return []gjson.Result{body}
	}
	return nil
}
