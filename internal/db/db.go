package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"parallel-pi/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// schema holds accounts for the HTTP API. Estimates are never stored.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	login TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitDB opens the SQLite database at config.AppConfig.DBPath and applies the
// schema.
func InitDB() error {
	dbPath := config.AppConfig.DBPath

	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return Open(dbPath)
}

// Open connects to the SQLite data source dsn and applies the schema.
func Open(dsn string) error {
	var err error

	DB, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = ApplySchema(); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func ApplySchema() error {
	_, err := DB.Exec(schema)
	return err
}

func CloseDB() error {
	if DB != nil {
		err := DB.Close()
		DB = nil
		return err
	}
	return nil
}
