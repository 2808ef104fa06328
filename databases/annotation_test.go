package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/databases"
)

func TestAnnotationDatabase_FindOne(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectQuery(`SELECT id, articoli, responsabile FROM rapporti WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "articoli", "responsabile"}).AddRow(5, `["art. 3"]`, nil))

	ann, err := databases.NewAnnotationDatabase(db).FindOne(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, `["art. 3"]`, ann.Articles.String)
	assert.False(t, ann.Responsabile.Valid)
}

func TestAnnotationDatabase_FindOneMissing(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectQuery(`FROM rapporti WHERE id = \$1`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "articoli", "responsabile"}))

	_, err := databases.NewAnnotationDatabase(db).FindOne(context.Background(), 6)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestAnnotationDatabase_Upsert(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectExec(`INSERT INTO rapporti \(id, articoli\) VALUES \(\$1, \$2\)\s+ON CONFLICT \(id\) DO UPDATE SET articoli = EXCLUDED.articoli`).
		WithArgs(5, `["art. 1"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO rapporti \(id, articoli\)`).
		WithArgs(6, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	anns := databases.NewAnnotationDatabase(db)
	assert.NoError(t, anns.Upsert(context.Background(), 5, []byte(`["art. 1"]`)))
	assert.NoError(t, anns.Upsert(context.Background(), 6, nil))
}

func TestAnnotationDatabase_InsertOne(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectExec(`INSERT INTO rapporti \(id, responsabile\) VALUES \(\$1, \$2\)`).
		WithArgs(9, "17").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, databases.NewAnnotationDatabase(db).InsertOne(context.Background(), 9, "17"))
}

func TestAnnotationDatabase_UpsertPenalty(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectExec(`INSERT INTO pene \(reportid, citizenid, articoli\) VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(reportid, citizenid\) DO UPDATE SET articoli = EXCLUDED.articoli`).
		WithArgs(5, "c1", `[1,2]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, databases.NewAnnotationDatabase(db).UpsertPenalty(context.Background(), 5, "c1", []byte(`[1,2]`)))
}

func TestAnnotationDatabase_FindPenaltiesByReport(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectQuery(`SELECT reportid, citizenid, articoli FROM pene WHERE reportid = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"reportid", "citizenid", "articoli"}).
			AddRow(5, "c1", `[1]`).
			AddRow(5, "c2", nil))

	pens, err := databases.NewAnnotationDatabase(db).FindPenaltiesByReport(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, pens, 2)
	assert.Equal(t, "c1", pens[0].CitizenID)
	assert.False(t, pens[1].Articles.Valid)
}

func TestAnnotationDatabase_DeleteReport(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pene WHERE reportid = \$1`).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM rapporti WHERE id = \$1`).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, databases.NewAnnotationDatabase(db).DeleteReport(context.Background(), 5))
}

func TestAnnotationDatabase_DeleteReportRollsBack(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pene WHERE reportid = \$1`).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM rapporti WHERE id = \$1`).WithArgs(5).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := databases.NewAnnotationDatabase(db).DeleteReport(context.Background(), 5)
	assert.EqualError(t, err, "delete annotation of report 5: locked")
}
