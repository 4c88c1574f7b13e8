package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var db *sql.DB

// InitDB opens the embedded store and ensures the schema exists.
// A failure here is fatal: the application cannot run without a valid schema.
func InitDB(path string) {
	handle, err := Open(path)
	if err != nil {
		log.Fatalf("Error opening database at %s: %q", path, err)
	}
	db = handle

	if err := Migrate(db); err != nil {
		log.Fatalf("Error initializing database schema: %q", err)
	}
}

// Open opens a SQLite database at the given path with foreign keys enforced
// and WAL journaling enabled. The store is single-writer: one connection
// serializes all statements, so a multi-statement transaction can never
// interleave with another write.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	handle, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	handle.SetMaxOpenConns(1)

	if err := handle.Ping(); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("pinging sqlite store: %w", err)
	}

	// Ensure FK enforcement is on
	if _, err := handle.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return handle, nil
}

// GetDB returns the database connection pool.
func GetDB() *sql.DB {
	return db
}
