// Package repository holds the MySQL data access layer.  Repositories
// translate driver-level failures into the sentinel errors below so that
// higher layers can branch on them with errors.Is.
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique key
// (MySQL error 1062).
var ErrDuplicate = errors.New("duplicate")

// ErrConflict is returned when a guarded write matched no row because the
// row's state changed, e.g. a slot filled up between read and update.
var ErrConflict = errors.New("conflict")

const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlDuplicateEntry
	}
	return strings.Contains(err.Error(), "1062")
}

// notFound maps sql.ErrNoRows to ErrNotFound and leaves other errors as is.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
