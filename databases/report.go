package databases

// go generate: mockery --name ReportDatabase

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

const reportColumns = `
	o.id,
	o.title AS nome,
	o.date AS ora,
	o.location AS posizione,
	o.author AS responsabile,
	o.description AS descrizione,
	o.implicated AS criminali,
	o.victims AS vittime,
	o.cops AS agenti,
	e.data AS prove,
	o.vehicles AS veicoli
FROM origen_police_reports o
LEFT JOIN ox_inventory e ON e.name = CONCAT('evidence-', o.id)`

// ReportDatabase contains the methods to use with the police reports of the game database
type ReportDatabase interface {
	FindOne(ctx context.Context, id int64) (*models.ReportRow, error)
	FindByJob(ctx context.Context, job string) ([]models.ReportRow, error)
	Exists(ctx context.Context, id int64) (bool, error)
	InsertOne(ctx context.Context, author string) (int64, error)
	UpdateOne(ctx context.Context, id int64, update models.ReportUpdate) error
	DeleteOne(ctx context.Context, id int64) error
}

type reportDatabase struct {
	db *sqlx.DB
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db *sqlx.DB) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (r *reportDatabase) FindOne(ctx context.Context, id int64) (*models.ReportRow, error) {
	row := &models.ReportRow{}
	err := r.db.GetContext(ctx, row, `SELECT `+reportColumns+` WHERE o.id = ?`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

func (r *reportDatabase) FindByJob(ctx context.Context, job string) ([]models.ReportRow, error) {
	var rows []models.ReportRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+reportColumns+` WHERE o.job = ? ORDER BY o.id DESC`, job)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportDatabase) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM origen_police_reports WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *reportDatabase) InsertOne(ctx context.Context, author string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO origen_police_reports (author) VALUES (?)`, author)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reportDatabase) UpdateOne(ctx context.Context, id int64, update models.ReportUpdate) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE origen_police_reports
		SET title = ?, location = ?, description = ?, implicated = ?, victims = ?, cops = ?
		WHERE id = ?`,
		update.Title, update.Location, update.Description,
		string(update.Implicated), string(update.Victims), string(update.Cops), id)
	if err != nil {
		return fmt.Errorf("update report %d: %w", id, err)
	}
	return nil
}

func (r *reportDatabase) DeleteOne(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM origen_police_reports WHERE id = ?`, id)
	return err
}
