package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate value violates unique constraint")

	// ErrForeignKeyViolation is returned when an insert/update references a
	// missing parent record.
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
)

// SQLExecutor is satisfied by *sql.DB and *sql.Tx. It allows repository
// methods to run either inside a transaction or directly on the store.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// sqliteTimeLayout is the format timestamps are stored in. Keeping them in
// this plain form lets SQLite's date() extract the date portion directly.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// translateConstraintError maps SQLite constraint failures onto the
// repository sentinel errors, keeping the driver message (which names the
// offending column, e.g. "UNIQUE constraint failed: clients.id_card").
// Non-constraint errors are wrapped as ErrDatabaseError.
func translateConstraintError(err error, context string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, sqliteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolation, context)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, context, err)
}
