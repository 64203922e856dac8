package sqlerr

import (
	"github.com/mattn/go-sqlite3"
)

// Code classifies a driver error into the constraint categories this layer
// cares about. Everything unrecognized maps to Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// Error is the normalized form of a SQLite driver error.
//
// SQLite does not report the violated table/column as structured fields
// the way Postgres does; they are recovered from the message text where
// possible (see Convert).
type Error struct {
	// Code is the mapped constraint category.
	Code Code

	// DatabaseCode keeps the original extended result code.
	DatabaseCode int

	// Message is the driver's message text.
	Message string

	// TableName and ColumnName identify the violated constraint's target
	// when the message named one; empty otherwise.
	TableName  string
	ColumnName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLite extended result code to a Code.
func MapCode(code sqlite3.ErrNoExtended) Code {
	switch code {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	default:
		return Other
	}
}
