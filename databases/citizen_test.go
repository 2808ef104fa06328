package databases_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/databases"
)

func TestCitizenDatabase_FindByJobs(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`FROM users WHERE job IN \(\?, \?\)`).
		WithArgs("police", "doj").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "job", "grade"}).AddRow("char1:a", "Mario Rossi", "police", 3))

	chars, err := databases.NewCitizenDatabase(db).FindByJobs(context.Background(), []string{"police", "doj"})
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, "Mario Rossi", chars[0].Name)
	assert.Equal(t, int64(3), *chars[0].Grade)
}

func TestCitizenDatabase_FindByJobsEmpty(t *testing.T) {
	db, _ := newMockDB(t, "mysql")
	chars, err := databases.NewCitizenDatabase(db).FindByJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestCitizenDatabase_FindByLicense(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`WHERE SUBSTRING_INDEX\(identifier, ':', -1\) = \?`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "job", "grade", "dateofbirth"}).
			AddRow("char1:abc", "Mario Rossi", nil, nil, "1990-01-01"))

	chars, err := databases.NewCitizenDatabase(db).FindByLicense(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Nil(t, chars[0].Job)
}

func TestCitizenDatabase_FindByLicenses(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SUBSTRING_INDEX\(identifier, ':', -1\) IN \(\?, \?\)`).
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "firstname", "lastname", "job", "job_grade"}).
			AddRow("char1:a", "Mario", "Rossi", "police", 1))

	chars, err := databases.NewCitizenDatabase(db).FindByLicenses(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, "char1:a", chars[0].Identifier)
}

func TestCitizenDatabase_JobOfMissing(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT job FROM users WHERE identifier = \?`).
		WithArgs("char9:x").
		WillReturnRows(sqlmock.NewRows([]string{"job"}))

	_, err := databases.NewCitizenDatabase(db).JobOf(context.Background(), "char9:x")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestCitizenDatabase_Metadata(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT metadata FROM users WHERE identifier = \?`).
		WithArgs("char1:a").
		WillReturnRows(sqlmock.NewRows([]string{"metadata"}).AddRow(`{"police_badge":"1234"}`))

	meta, err := databases.NewCitizenDatabase(db).Metadata(context.Background(), "char1:a")
	require.NoError(t, err)
	assert.Equal(t, `{"police_badge":"1234"}`, meta)
}

func TestCitizenDatabase_Vehicles(t *testing.T) {
	db, mock := newMockDB(t, "mysql")
	mock.ExpectQuery(`SELECT plate AS targa, nickname AS nome, vehicle FROM owned_vehicles`).
		WillReturnRows(sqlmock.NewRows([]string{"targa", "nome", "vehicle"}).AddRow("AB123", nil, `{"model":123}`))

	rows, err := databases.NewCitizenDatabase(db).Vehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AB123", rows[0].Plate)
}
