package repositories

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrStorage is returned for unexpected backend failures. It wraps
	// the driver or filesystem error that caused it.
	ErrStorage = errors.New("storage error")

	// ErrDuplicateKey is returned when an append would violate the
	// email uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrInconsistentWrite is returned by the file backend when one of
	// the two files was written and the other was not. The caller must
	// know persistence diverged; it is not a plain ErrStorage.
	ErrInconsistentWrite = errors.New("partial write: json and csv files diverged")
)

// SQLExecutor is satisfied by *sql.DB and *sql.Tx so the relational
// repository can run inside or outside a transaction.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}
