package databases

// go generate: mockery --name ProcuraDatabase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

// ErrInvalidField is returned when an incremental update targets a column
// that is not one of the editable cash fields
var ErrInvalidField = errors.New("invalid taxation field")

// editable cash columns of tassazioni, used to build the update statement
var taxationFields = map[string]string{
	"cassaprecedente": `UPDATE tassazioni SET cassaprecedente = $1 WHERE azienda = $2 AND settimana = $3`,
	"totaleuscite":    `UPDATE tassazioni SET totaleuscite = $1 WHERE azienda = $2 AND settimana = $3`,
	"cassacorrente":   `UPDATE tassazioni SET cassacorrente = $1 WHERE azienda = $2 AND settimana = $3`,
}

// ProcuraDatabase contains the methods to use with the taxation records and the
// legal code catalog of the app database
type ProcuraDatabase interface {
	Companies(ctx context.Context) ([]models.Company, error)
	Weeks(ctx context.Context) ([]models.Week, error)
	Taxations(ctx context.Context) ([]models.Taxation, error)
	Taxes(ctx context.Context, company, week int64) (*models.Taxes, error)
	Articles(ctx context.Context) ([]models.Article, error)
	SimpleArticles(ctx context.Context) ([]models.SimpleArticle, error)
	Categories(ctx context.Context) ([]models.Category, error)
	SetCompanyStatus(ctx context.Context, company, week, status int64) error
	SetTaxationValue(ctx context.Context, company, week int64, field string, value float64) error
	SetCollected(ctx context.Context, company, week int64, checked bool, value float64) error
	SetDeposited(ctx context.Context, company, week int64, checked bool) error
	OpenNextWeek(ctx context.Context) (*models.Week, int64, error)
}

type procuraDatabase struct {
	db *sqlx.DB
}

// NewProcuraDatabase initializes a new instance of procura database with the provided db connection
func NewProcuraDatabase(db *sqlx.DB) ProcuraDatabase {
	return &procuraDatabase{
		db: db,
	}
}

func (p *procuraDatabase) Companies(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	err := p.db.SelectContext(ctx, &companies, `SELECT id, nome, stato FROM aziende ORDER BY nome`)
	return companies, err
}

func (p *procuraDatabase) Weeks(ctx context.Context) ([]models.Week, error) {
	weeks := []models.Week{}
	err := p.db.SelectContext(ctx, &weeks, `SELECT id, inizio::text AS inizio, fine::text AS fine FROM settimane ORDER BY id DESC`)
	return weeks, err
}

func (p *procuraDatabase) Taxations(ctx context.Context) ([]models.Taxation, error) {
	taxations := []models.Taxation{}
	err := p.db.SelectContext(ctx, &taxations, `
		SELECT id, azienda, settimana, cassaprecedente, totaleuscite, cassacorrente, imposte,
			datariscossione::text AS datariscossione, datadeposito::text AS datadeposito
		FROM tassazioni
		ORDER BY id DESC`)
	return taxations, err
}

func (p *procuraDatabase) Taxes(ctx context.Context, company, week int64) (*models.Taxes, error) {
	taxes := &models.Taxes{}
	err := p.db.GetContext(ctx, taxes, `SELECT imposte FROM tassazioni WHERE azienda = $1 AND settimana = $2`, company, week)
	if err != nil {
		return nil, notFound(err)
	}
	return taxes, nil
}

func (p *procuraDatabase) Articles(ctx context.Context) ([]models.Article, error) {
	articles := []models.Article{}
	err := p.db.SelectContext(ctx, &articles, `SELECT id, categoria, articolo, descrizione, pena_mesi, multa FROM articoli ORDER BY id`)
	return articles, err
}

func (p *procuraDatabase) SimpleArticles(ctx context.Context) ([]models.SimpleArticle, error) {
	articles := []models.SimpleArticle{}
	err := p.db.SelectContext(ctx, &articles, `SELECT id, nome, descrizione FROM simplearticoli ORDER BY id`)
	return articles, err
}

func (p *procuraDatabase) Categories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := p.db.SelectContext(ctx, &categories, `SELECT id, nome FROM categorie ORDER BY id`)
	return categories, err
}

// SetCompanyStatus flips a company on or off. Turning it off drops every open
// taxation row from week onward; turning it on opens one row per week from
// week onward, leaving existing rows alone.
func (p *procuraDatabase) SetCompanyStatus(ctx context.Context, company, week, status int64) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE aziende SET stato = $1 WHERE id = $2`, status, company); err != nil {
		return fmt.Errorf("update status of company %d: %w", company, err)
	}

	if status == 0 {
		_, err = tx.ExecContext(ctx, `
			DELETE FROM tassazioni
			WHERE azienda = $1 AND settimana >= $2 AND datariscossione IS NULL AND datadeposito IS NULL`,
			company, week)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tassazioni (azienda, settimana)
			SELECT $1, id FROM settimane WHERE id >= $2
			ON CONFLICT (azienda, settimana) DO NOTHING`,
			company, week)
	}
	if err != nil {
		return fmt.Errorf("sync taxations of company %d: %w", company, err)
	}
	return tx.Commit()
}

func (p *procuraDatabase) SetTaxationValue(ctx context.Context, company, week int64, field string, value float64) error {
	query, ok := taxationFields[field]
	if !ok {
		return ErrInvalidField
	}
	_, err := p.db.ExecContext(ctx, query, value, company, week)
	return err
}

// SetCollected writes the collection date and the tax amount together
func (p *procuraDatabase) SetCollected(ctx context.Context, company, week int64, checked bool, value float64) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE tassazioni
		SET datariscossione = CASE WHEN $1 THEN CURRENT_DATE ELSE NULL END,
			imposte = CASE WHEN $1 THEN $2::numeric ELSE NULL END
		WHERE azienda = $3 AND settimana = $4`,
		checked, value, company, week)
	return err
}

func (p *procuraDatabase) SetDeposited(ctx context.Context, company, week int64, checked bool) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE tassazioni
		SET datadeposito = CASE WHEN $1 THEN CURRENT_DATE ELSE NULL END
		WHERE azienda = $2 AND settimana = $3`,
		checked, company, week)
	return err
}

// OpenNextWeek appends the week following the latest one and opens a taxation
// row for every active company. It returns the new week and the number of
// taxation rows created.
func (p *procuraDatabase) OpenNextWeek(ctx context.Context) (*models.Week, int64, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	week := &models.Week{}
	err = tx.GetContext(ctx, week, `
		INSERT INTO settimane (inizio, fine)
		SELECT COALESCE(MAX(fine) + 1, date_trunc('week', CURRENT_DATE)::date),
			COALESCE(MAX(fine) + 7, date_trunc('week', CURRENT_DATE)::date + 6)
		FROM settimane
		RETURNING id, inizio::text AS inizio, fine::text AS fine`)
	if err != nil {
		return nil, 0, fmt.Errorf("insert week: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO tassazioni (azienda, settimana)
		SELECT id, $1 FROM aziende WHERE stato <> 0
		ON CONFLICT (azienda, settimana) DO NOTHING`, week.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("open taxations for week %d: %w", week.ID, err)
	}
	opened, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return week, opened, nil
}
