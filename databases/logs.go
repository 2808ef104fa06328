package databases

// go generate: mockery --name LogDatabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fivelives/tablet-api/models"
)

const (
	webhookLogName = "logs"
	serverLogName  = "server_logs"
)

// LogDatabase contains the methods to use with the plugin logs
type LogDatabase interface {
	InsertWebhook(ctx context.Context, entry models.WebhookLog) error
	FindWebhooks(ctx context.Context) ([]models.WebhookLog, error)
	InsertServerLog(ctx context.Context, entry models.ServerLog) error
}

type sqlLogDatabase struct {
	db *sqlx.DB
}

// NewSQLLogDatabase stores logs in the app database
func NewSQLLogDatabase(db *sqlx.DB) LogDatabase {
	return &sqlLogDatabase{
		db: db,
	}
}

type webhookRow struct {
	ID        string         `db:"id"`
	Plugin    string         `db:"plugin"`
	Type      *string        `db:"type"`
	AvatarURL *string        `db:"avatar_url"`
	Embeds    sql.NullString `db:"embeds"`
	Username  *string        `db:"username"`
	Date      time.Time      `db:"date"`
}

func (l *sqlLogDatabase) InsertWebhook(ctx context.Context, entry models.WebhookLog) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO logs (plugin, avatar_url, embeds, username, type)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.Plugin, entry.AvatarURL, jsonParam(entry.Embeds), entry.Username, entry.Type)
	return err
}

// FindWebhooks lists the logs newest first, labelling typed entries as "plugin - type"
func (l *sqlLogDatabase) FindWebhooks(ctx context.Context) ([]models.WebhookLog, error) {
	var rows []webhookRow
	err := l.db.SelectContext(ctx, &rows, `
		SELECT id,
			CASE WHEN type IS NULL THEN plugin ELSE plugin || ' - ' || type END AS plugin,
			avatar_url, embeds, username, type, date
		FROM logs
		ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}

	entries := make([]models.WebhookLog, 0, len(rows))
	for _, row := range rows {
		entry := models.WebhookLog{
			ID:        row.ID,
			Plugin:    row.Plugin,
			Type:      row.Type,
			AvatarURL: row.AvatarURL,
			Username:  row.Username,
			Date:      row.Date,
		}
		if row.Embeds.Valid {
			entry.Embeds = json.RawMessage(row.Embeds.String)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (l *sqlLogDatabase) InsertServerLog(ctx context.Context, entry models.ServerLog) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO server_logs (plugin, plugin_type, description) VALUES ($1, $2, $3)`,
		entry.Plugin, entry.PluginType, entry.Description)
	return err
}

type mongoLogDatabase struct {
	db DatabaseHelper
}

// NewMongoLogDatabase stores logs in a mongo database
func NewMongoLogDatabase(db DatabaseHelper) LogDatabase {
	return &mongoLogDatabase{
		db: db,
	}
}

type webhookDocument struct {
	ID        string    `bson:"_id"`
	Plugin    string    `bson:"plugin"`
	Type      *string   `bson:"type,omitempty"`
	AvatarURL *string   `bson:"avatar_url,omitempty"`
	Embeds    string    `bson:"embeds"`
	Username  *string   `bson:"username,omitempty"`
	Date      time.Time `bson:"date"`
}

type serverLogDocument struct {
	ID          string    `bson:"_id"`
	Plugin      string    `bson:"plugin"`
	PluginType  string    `bson:"plugin_type"`
	Description string    `bson:"description"`
	Date        time.Time `bson:"date"`
}

func (m *mongoLogDatabase) InsertWebhook(ctx context.Context, entry models.WebhookLog) error {
	doc := webhookDocument{
		ID:        uuid.New().String(),
		Plugin:    entry.Plugin,
		Type:      entry.Type,
		AvatarURL: entry.AvatarURL,
		Embeds:    string(entry.Embeds),
		Username:  entry.Username,
		Date:      time.Now().UTC(),
	}
	_, err := m.db.Collection(webhookLogName).InsertOne(ctx, doc)
	return err
}

func (m *mongoLogDatabase) FindWebhooks(ctx context.Context) ([]models.WebhookLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := m.db.Collection(webhookLogName).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []webhookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]models.WebhookLog, 0, len(docs))
	for _, doc := range docs {
		plugin := doc.Plugin
		if doc.Type != nil {
			plugin = plugin + " - " + *doc.Type
		}
		entry := models.WebhookLog{
			ID:        doc.ID,
			Plugin:    plugin,
			Type:      doc.Type,
			AvatarURL: doc.AvatarURL,
			Username:  doc.Username,
			Date:      doc.Date,
		}
		if doc.Embeds != "" {
			entry.Embeds = json.RawMessage(doc.Embeds)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (m *mongoLogDatabase) InsertServerLog(ctx context.Context, entry models.ServerLog) error {
	doc := serverLogDocument{
		ID:          uuid.New().String(),
		Plugin:      entry.Plugin,
		PluginType:  entry.PluginType,
		Description: entry.Description,
		Date:        time.Now().UTC(),
	}
	_, err := m.db.Collection(serverLogName).InsertOne(ctx, doc)
	return err
}
