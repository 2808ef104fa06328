package databases

// go generate: mockery --name CitizenDatabase

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

// CitizenDatabase contains the read only projections of the game database
// characters, jobs and vehicles
type CitizenDatabase interface {
	FindByLicense(ctx context.Context, license string) ([]models.Character, error)
	FindByLicenses(ctx context.Context, licenses []string) ([]models.CharacterSummary, error)
	FindByJobs(ctx context.Context, jobs []string) ([]models.Character, error)
	Citizens(ctx context.Context) ([]models.Character, error)
	Jobs(ctx context.Context) ([]models.Job, error)
	Grades(ctx context.Context) ([]models.Grade, error)
	JobOf(ctx context.Context, identifier string) (string, error)
	Metadata(ctx context.Context, identifier string) (string, error)
	Inventories(ctx context.Context, license string) ([]models.InventoryRow, error)
	Vehicles(ctx context.Context) ([]models.VehicleRow, error)
}

type citizenDatabase struct {
	db *sqlx.DB
}

// NewCitizenDatabase initializes a new instance of citizen database with the provided db connection
func NewCitizenDatabase(db *sqlx.DB) CitizenDatabase {
	return &citizenDatabase{
		db: db,
	}
}

func (c *citizenDatabase) FindByLicense(ctx context.Context, license string) ([]models.Character, error) {
	chars := []models.Character{}
	err := c.db.SelectContext(ctx, &chars, `
		SELECT identifier AS id, CONCAT(firstname, ' ', lastname) AS nome, job, job_grade AS grade, dateofbirth
		FROM users
		WHERE SUBSTRING_INDEX(identifier, ':', -1) = ?`, license)
	return chars, err
}

func (c *citizenDatabase) FindByLicenses(ctx context.Context, licenses []string) ([]models.CharacterSummary, error) {
	chars := []models.CharacterSummary{}
	if len(licenses) == 0 {
		return chars, nil
	}
	query, args, err := sqlx.In(`
		SELECT identifier, firstname, lastname, job, job_grade
		FROM users
		WHERE SUBSTRING_INDEX(identifier, ':', -1) IN (?)`, licenses)
	if err != nil {
		return nil, err
	}
	err = c.db.SelectContext(ctx, &chars, c.db.Rebind(query), args...)
	return chars, err
}

func (c *citizenDatabase) FindByJobs(ctx context.Context, jobs []string) ([]models.Character, error) {
	chars := []models.Character{}
	if len(jobs) == 0 {
		return chars, nil
	}
	query, args, err := sqlx.In(`
		SELECT identifier AS id, CONCAT(firstname, ' ', lastname) AS nome, job, job_grade AS grade
		FROM users
		WHERE job IN (?)`, jobs)
	if err != nil {
		return nil, err
	}
	err = c.db.SelectContext(ctx, &chars, c.db.Rebind(query), args...)
	return chars, err
}

func (c *citizenDatabase) Citizens(ctx context.Context) ([]models.Character, error) {
	chars := []models.Character{}
	err := c.db.SelectContext(ctx, &chars, `
		SELECT identifier AS id, CONCAT(firstname, ' ', lastname) AS nome, job, job_grade AS grade, dateofbirth
		FROM users
		WHERE identifier LIKE 'char%'`)
	return chars, err
}

func (c *citizenDatabase) Jobs(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	err := c.db.SelectContext(ctx, &jobs, `SELECT name AS id, label FROM jobs`)
	return jobs, err
}

func (c *citizenDatabase) Grades(ctx context.Context) ([]models.Grade, error) {
	grades := []models.Grade{}
	err := c.db.SelectContext(ctx, &grades, `SELECT id, job_name AS job, grade, label FROM job_grades`)
	return grades, err
}

func (c *citizenDatabase) JobOf(ctx context.Context, identifier string) (string, error) {
	var job string
	err := c.db.GetContext(ctx, &job, `SELECT job FROM users WHERE identifier = ?`, identifier)
	if err != nil {
		return "", notFound(err)
	}
	return job, nil
}

// Metadata returns the raw metadata JSON column of a character
func (c *citizenDatabase) Metadata(ctx context.Context, identifier string) (string, error) {
	var meta *string
	err := c.db.GetContext(ctx, &meta, `SELECT metadata FROM users WHERE identifier = ?`, identifier)
	if err != nil {
		return "", notFound(err)
	}
	if meta == nil {
		return "", nil
	}
	return *meta, nil
}

func (c *citizenDatabase) Inventories(ctx context.Context, license string) ([]models.InventoryRow, error) {
	var rows []models.InventoryRow
	err := c.db.SelectContext(ctx, &rows, `
		SELECT identifier AS id, inventory
		FROM users
		WHERE SUBSTRING_INDEX(identifier, ':', -1) = ?`, license)
	return rows, err
}

func (c *citizenDatabase) Vehicles(ctx context.Context) ([]models.VehicleRow, error) {
	var rows []models.VehicleRow
	err := c.db.SelectContext(ctx, &rows, `SELECT plate AS targa, nickname AS nome, vehicle FROM owned_vehicles`)
	return rows, err
}
