package errs

import (
	"errors"
	"fmt"
)

// AlreadyPersistedError reports a create call on an entity whose id is
// already assigned. Creating is a one-shot operation: once storage has
// handed out an id, the instance can only be updated, never re-inserted.
type AlreadyPersistedError struct {
	// Entity is the entity name the failed create targeted (e.g. "user").
	Entity string

	// ID is the identifier the instance already carries.
	ID int64
}

func (e *AlreadyPersistedError) Error() string {
	return fmt.Sprintf("%s is already persisted with id %d", e.Entity, e.ID)
}

// NewAlreadyPersistedError creates an AlreadyPersistedError for the given
// entity name and assigned id.
func NewAlreadyPersistedError(entity string, id int64) *AlreadyPersistedError {
	return &AlreadyPersistedError{Entity: entity, ID: id}
}

// IsAlreadyPersisted reports whether err wraps an AlreadyPersistedError.
func IsAlreadyPersisted(err error) bool {
	var target *AlreadyPersistedError
	return errors.As(err, &target)
}

// NotPersistedError reports an update call on an entity that has no id yet.
// An instance must be created before its row can be updated.
type NotPersistedError struct {
	Entity string
}

func (e *NotPersistedError) Error() string {
	return fmt.Sprintf("%s is not persisted yet", e.Entity)
}

// NewNotPersistedError creates a NotPersistedError for the given entity name.
func NewNotPersistedError(entity string) *NotPersistedError {
	return &NotPersistedError{Entity: entity}
}

// IsNotPersisted reports whether err wraps a NotPersistedError.
func IsNotPersisted(err error) bool {
	var target *NotPersistedError
	return errors.As(err, &target)
}

// NoDataError reports an aggregate that has no rows to aggregate over,
// such as the average karma of a user with zero authored questions.
// Surfacing this explicitly beats returning NaN: callers can branch on it
// and float results stay meaningful.
type NoDataError struct {
	// Subject describes what was being aggregated (e.g. "user karma").
	Subject string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data to aggregate for %s", e.Subject)
}

// NewNoDataError creates a NoDataError for the given subject.
func NewNoDataError(subject string) *NoDataError {
	return &NoDataError{Subject: subject}
}

// IsNoData reports whether err wraps a NoDataError.
func IsNoData(err error) bool {
	var target *NoDataError
	return errors.As(err, &target)
}

// FieldError represents a field-level validation error.
// Example:
//
//	{ field: "fname", error: "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "fname").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ValidationError reports that an entity's field values were rejected
// before any statement reached storage.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError carrying per-field details.
func NewValidationError(message string, fields []FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
