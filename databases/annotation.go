package databases

// go generate: mockery --name AnnotationDatabase

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

// AnnotationDatabase contains the methods to use with the report articles and
// per citizen penalties kept in the app database
type AnnotationDatabase interface {
	FindOne(ctx context.Context, reportID int64) (*models.Annotation, error)
	Find(ctx context.Context) ([]models.Annotation, error)
	InsertOne(ctx context.Context, reportID int64, author string) error
	Upsert(ctx context.Context, reportID int64, articles []byte) error
	FindPenalties(ctx context.Context) ([]models.Penalty, error)
	FindPenaltiesByReport(ctx context.Context, reportID int64) ([]models.Penalty, error)
	UpsertPenalty(ctx context.Context, reportID int64, citizenID string, articles []byte) error
	DeleteReport(ctx context.Context, reportID int64) error
}

type annotationDatabase struct {
	db *sqlx.DB
}

// NewAnnotationDatabase initializes a new instance of annotation database with the provided db connection
func NewAnnotationDatabase(db *sqlx.DB) AnnotationDatabase {
	return &annotationDatabase{
		db: db,
	}
}

func (a *annotationDatabase) FindOne(ctx context.Context, reportID int64) (*models.Annotation, error) {
	ann := &models.Annotation{}
	err := a.db.GetContext(ctx, ann, `SELECT id, articoli, responsabile FROM rapporti WHERE id = $1`, reportID)
	if err != nil {
		return nil, notFound(err)
	}
	return ann, nil
}

func (a *annotationDatabase) Find(ctx context.Context) ([]models.Annotation, error) {
	var anns []models.Annotation
	if err := a.db.SelectContext(ctx, &anns, `SELECT id, articoli, responsabile FROM rapporti`); err != nil {
		return nil, err
	}
	return anns, nil
}

func (a *annotationDatabase) InsertOne(ctx context.Context, reportID int64, author string) error {
	_, err := a.db.ExecContext(ctx, `INSERT INTO rapporti (id, responsabile) VALUES ($1, $2)`, reportID, author)
	return err
}

func (a *annotationDatabase) Upsert(ctx context.Context, reportID int64, articles []byte) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO rapporti (id, articoli) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET articoli = EXCLUDED.articoli`,
		reportID, jsonParam(articles))
	return err
}

func (a *annotationDatabase) FindPenalties(ctx context.Context) ([]models.Penalty, error) {
	var pens []models.Penalty
	if err := a.db.SelectContext(ctx, &pens, `SELECT reportid, citizenid, articoli FROM pene`); err != nil {
		return nil, err
	}
	return pens, nil
}

func (a *annotationDatabase) FindPenaltiesByReport(ctx context.Context, reportID int64) ([]models.Penalty, error) {
	var pens []models.Penalty
	err := a.db.SelectContext(ctx, &pens, `SELECT reportid, citizenid, articoli FROM pene WHERE reportid = $1`, reportID)
	if err != nil {
		return nil, err
	}
	return pens, nil
}

func (a *annotationDatabase) UpsertPenalty(ctx context.Context, reportID int64, citizenID string, articles []byte) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO pene (reportid, citizenid, articoli) VALUES ($1, $2, $3)
		ON CONFLICT (reportid, citizenid) DO UPDATE SET articoli = EXCLUDED.articoli`,
		reportID, citizenID, jsonParam(articles))
	return err
}

// DeleteReport removes the penalties and the annotation of a report in one transaction
func (a *annotationDatabase) DeleteReport(ctx context.Context, reportID int64) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pene WHERE reportid = $1`, reportID); err != nil {
		return fmt.Errorf("delete penalties of report %d: %w", reportID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rapporti WHERE id = $1`, reportID); err != nil {
		return fmt.Errorf("delete annotation of report %d: %w", reportID, err)
	}
	return tx.Commit()
}

// jsonParam passes an empty document as NULL so jsonb columns never receive ""
func jsonParam(doc []byte) interface{} {
	if len(doc) == 0 {
		return nil
	}
	return string(doc)
}
