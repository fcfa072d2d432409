package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/anandhx/Task-Management-System/internal/config"
)

// Opener returns a fresh connection to the task database. Callers close it.
type Opener func() (*sqlx.DB, error)

func DSN(path, params string) string {
	if params == "" {
		return fmt.Sprintf("file:%s", path)
	}
	return fmt.Sprintf("file:%s?%s", path, params)
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	return ConnectFile(conf.DbPath, conf.DbParams)
}

func ConnectFile(path, params string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", DSN(path, params))
	if err != nil {
		return nil, err
	}

	// A single local file, one operation at a time.
	db.SetMaxOpenConns(1)
	return db, nil
}

// FileOpener opens the configured database file on every call.
func FileOpener(conf *config.Config) Opener {
	return func() (*sqlx.DB, error) {
		return ConnectDB(conf)
	}
}
