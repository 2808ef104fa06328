package databases

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/fivelives/tablet-api/config"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// OpenGame connects to the game server MySQL database
func OpenGame(conf config.DBConfig) (*sqlx.DB, error) {
	mc := mysql.NewConfig()
	mc.User = conf.User
	mc.Passwd = conf.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(conf.Host, conf.Port)
	mc.DBName = conf.Name
	mc.Collation = "utf8mb4_general_ci"

	db, err := sqlx.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open game database: %w", err)
	}
	configurePool(db, conf.MaxConns)
	return db, nil
}

// OpenApp connects to the application PostgreSQL database
func OpenApp(conf config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", PostgresURL(conf))
	if err != nil {
		return nil, fmt.Errorf("open app database: %w", err)
	}
	configurePool(db, conf.MaxConns)
	return db, nil
}

// PostgresURL builds a libpq connection url for the app database
func PostgresURL(conf config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.User, conf.Password),
		Host:     net.JoinHostPort(conf.Host, conf.Port),
		Path:     "/" + conf.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func configurePool(db *sqlx.DB, maxConns int) {
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxIdleTime(5 * time.Minute)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
