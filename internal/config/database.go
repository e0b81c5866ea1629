package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func NewDB(cfg *Config) (*sqlx.DB, error) {
	switch cfg.DBDriver {
	case "sqlite3":
		db, err := sqlx.Connect("sqlite3", cfg.SQLitePath+"?_foreign_keys=on")
		if err != nil {
			return nil, err
		}
		// sqlite serializes writers; a single connection avoids lock errors.
		db.SetMaxOpenConns(1)
		return db, nil

	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}
}
