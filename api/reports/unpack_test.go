package reports

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivelives/tablet-api/models"
)

func TestParsePeople(t *testing.T) {
	tests := []struct {
		name string
		raw  sql.NullString
		want []models.PersonView
	}{
		{"null column", sql.NullString{}, []models.PersonView{}},
		{"not json", sql.NullString{String: "{", Valid: true}, []models.PersonView{}},
		{"not a list", sql.NullString{String: `{"citizenid":"A"}`, Valid: true}, []models.PersonView{}},
		{"missing name", sql.NullString{String: `[{"citizenid":"A"}]`, Valid: true}, []models.PersonView{}},
		{"ok", sql.NullString{String: `[{"citizenid":"A","name":"Anna"}]`, Valid: true}, []models.PersonView{{ID: "A", Nome: "Anna"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePeople(tt.raw))
		})
	}
}

func TestParsePlates(t *testing.T) {
	assert.Equal(t, []string{"AA", "BB"}, ParsePlates(sql.NullString{String: `[{"plate":"AA"},{"plate":"BB"}]`, Valid: true}))
	assert.Equal(t, []string{}, ParsePlates(sql.NullString{String: `[{"model":"adder"}]`, Valid: true}))
}

func TestParseItemsNullMetadata(t *testing.T) {
	items := ParseItems(sql.NullString{String: `[{"name":"water","count":3,"metadata":{"img":null}}]`, Valid: true})
	assert.Equal(t, []models.Item{{ID: "water", Amount: 3}}, items)
}

func TestReportDate(t *testing.T) {
	assert.Nil(t, reportDate(sql.NullString{}))
	assert.Equal(t, int64(12), reportDate(sql.NullString{String: "12", Valid: true}))
	assert.Equal(t, "2024-06-10 12:00:00", reportDate(sql.NullString{String: "2024-06-10 12:00:00", Valid: true}))
}
