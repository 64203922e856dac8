// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the SQLite driver and
// converts them into user-friendly messages (e.g., converting
// a "NOT NULL constraint failed" into a field-level validation
// error naming the missing field).
package sqlerr
