// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. AlreadyPersistedError for double-create attempts or
// ValidationError for rejected field values) so callers receive
// meaningful, actionable, and consistent errors they can branch
// on with errors.As.
//
// Lookups that match nothing are not errors in this layer:
// single-row lookups return a nil entity and multi-row lookups
// return an empty slice. The types here cover the cases that are
// genuinely failures.
package errs
