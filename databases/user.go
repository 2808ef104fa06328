package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/fivelives/tablet-api/models"
)

// UserDatabase contains the methods to use with the tablet accounts
type UserDatabase interface {
	FindOne(ctx context.Context, id string) (*models.User, error)
	FindLinked(ctx context.Context) ([]models.User, error)
	SetFiveM(ctx context.Context, id, license string) error
}

type userDatabase struct {
	db *sqlx.DB
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db *sqlx.DB) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindOne(ctx context.Context, id string) (*models.User, error) {
	// utenti.id is an integer column; postgres rejects anything else outright
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return nil, ErrNotFound
	}
	user := &models.User{}
	err := u.db.GetContext(ctx, user, `SELECT id, discord, fivem FROM utenti WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

// FindLinked returns every account with a known Discord identity
func (u *userDatabase) FindLinked(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := u.db.SelectContext(ctx, &users, `SELECT id, discord, fivem FROM utenti WHERE discord IS NOT NULL ORDER BY id`)
	return users, err
}

func (u *userDatabase) SetFiveM(ctx context.Context, id, license string) error {
	_, err := u.db.ExecContext(ctx, `UPDATE utenti SET fivem = $1 WHERE id = $2`, license, id)
	return err
}
