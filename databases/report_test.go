package databases_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

var reportCols = []string{"id", "nome", "ora", "posizione", "responsabile", "descrizione", "criminali", "vittime", "agenti", "prove", "veicoli"}

func TestReportDatabase_FindOne(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT .* FROM origen_police_reports o\s+LEFT JOIN ox_inventory e ON e.name = CONCAT\('evidence-', o.id\) WHERE o.id = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow(7, "rapina", "1700000000", "Legion", "char1:abc", "desc", `[]`, `[]`, `[]`, nil, `[{"plate":"AB123"}]`))

	row, err := databases.NewReportDatabase(db).FindOne(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, "rapina", row.Title.String)
	assert.False(t, row.Evidence.Valid)
	assert.Equal(t, `[{"plate":"AB123"}]`, row.Vehicles.String)
}

func TestReportDatabase_FindOneMissing(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT .* WHERE o.id = \?`).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows(reportCols))

	row, err := databases.NewReportDatabase(db).FindOne(context.Background(), 8)
	assert.Nil(t, row)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestReportDatabase_FindByJob(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT .* WHERE o.job = \? ORDER BY o.id DESC`).
		WithArgs("police").
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow(9, "b", nil, nil, nil, nil, nil, nil, nil, nil, nil).
			AddRow(3, "a", nil, nil, nil, nil, nil, nil, nil, nil, nil))

	rows, err := databases.NewReportDatabase(db).FindByJob(context.Background(), "police")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(9), rows[0].ID)
}

func TestReportDatabase_Exists(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM origen_police_reports WHERE id = \?`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := databases.NewReportDatabase(db).Exists(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReportDatabase_InsertOne(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectExec(`INSERT INTO origen_police_reports \(author\) VALUES \(\?\)`).
		WithArgs("char1:abc").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := databases.NewReportDatabase(db).InsertOne(context.Background(), "char1:abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestReportDatabase_UpdateOne(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	people := json.RawMessage(`[{"citizenid":"c1","name":"Mario"}]`)
	mock.ExpectExec(`UPDATE origen_police_reports\s+SET title = \?, location = \?, description = \?, implicated = \?, victims = \?, cops = \?\s+WHERE id = \?`).
		WithArgs("t", "l", "d", string(people), "[]", "[]", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := databases.NewReportDatabase(db).UpdateOne(context.Background(), 5, models.ReportUpdate{
		Title: "t", Location: "l", Description: "d",
		Implicated: people, Victims: json.RawMessage(`[]`), Cops: json.RawMessage(`[]`),
	})
	assert.NoError(t, err)
}

func TestReportDatabase_UpdateOneError(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectExec(`UPDATE origen_police_reports`).WillReturnError(errors.New("gone away"))

	err := databases.NewReportDatabase(db).UpdateOne(context.Background(), 5, models.ReportUpdate{})
	assert.EqualError(t, err, "update report 5: gone away")
}

func TestReportDatabase_DeleteOne(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectExec(`DELETE FROM origen_police_reports WHERE id = \?`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, databases.NewReportDatabase(db).DeleteOne(context.Background(), 5))
}
