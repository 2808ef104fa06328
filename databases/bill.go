package databases

// go generate: mockery --name BillDatabase

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

const billColumns = `SELECT reportid, citizenid, price, months, payed FROM origen_police_bills`

// BillDatabase contains the methods to use with the fines of the game database
type BillDatabase interface {
	FindOne(ctx context.Context, reportID int64, citizenID string) (*models.Bill, error)
	Find(ctx context.Context) ([]models.Bill, error)
	FindByReport(ctx context.Context, reportID int64) ([]models.Bill, error)
	InsertOne(ctx context.Context, bill models.BillInput) error
	UpdateOne(ctx context.Context, bill models.BillInput) error
}

type billDatabase struct {
	db *sqlx.DB
}

// NewBillDatabase initializes a new instance of bill database with the provided db connection
func NewBillDatabase(db *sqlx.DB) BillDatabase {
	return &billDatabase{
		db: db,
	}
}

func (b *billDatabase) FindOne(ctx context.Context, reportID int64, citizenID string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := b.db.GetContext(ctx, bill, billColumns+` WHERE reportid = ? AND citizenid = ? LIMIT 1`, reportID, citizenID)
	if err != nil {
		return nil, notFound(err)
	}
	return bill, nil
}

func (b *billDatabase) Find(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	if err := b.db.SelectContext(ctx, &bills, billColumns); err != nil {
		return nil, err
	}
	return bills, nil
}

func (b *billDatabase) FindByReport(ctx context.Context, reportID int64) ([]models.Bill, error) {
	var bills []models.Bill
	if err := b.db.SelectContext(ctx, &bills, billColumns+` WHERE reportid = ?`, reportID); err != nil {
		return nil, err
	}
	return bills, nil
}

func (b *billDatabase) InsertOne(ctx context.Context, bill models.BillInput) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO origen_police_bills (citizenid, title, concepts, job, author, reportid, price, months)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.CitizenID, bill.Title, string(bill.Concepts), bill.Job, bill.Author, bill.ReportID, bill.Price, bill.Months)
	return err
}

func (b *billDatabase) UpdateOne(ctx context.Context, bill models.BillInput) error {
	_, err := b.db.ExecContext(ctx, `
		UPDATE origen_police_bills
		SET title = ?, concepts = ?, job = ?, author = ?, price = ?, months = ?
		WHERE citizenid = ? AND reportid = ?`,
		bill.Title, string(bill.Concepts), bill.Job, bill.Author, bill.Price, bill.Months, bill.CitizenID, bill.ReportID)
	return err
}
