package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAlreadyPersisted verifies message content and the errors.As
// predicate, including through wrapping.
func TestAlreadyPersisted(t *testing.T) {
	err := NewAlreadyPersistedError("user", 7)
	assert.Equal(t, "user is already persisted with id 7", err.Error())
	assert.True(t, IsAlreadyPersisted(err))
	assert.True(t, IsAlreadyPersisted(fmt.Errorf("create failed: %w", err)))
	assert.False(t, IsAlreadyPersisted(fmt.Errorf("some other error")))
}

// TestNotPersisted verifies the update-before-create error.
func TestNotPersisted(t *testing.T) {
	err := NewNotPersistedError("user")
	assert.Equal(t, "user is not persisted yet", err.Error())
	assert.True(t, IsNotPersisted(err))
	assert.False(t, IsNotPersisted(NewAlreadyPersistedError("user", 1)))
}

// TestNoData verifies the empty-aggregate error.
func TestNoData(t *testing.T) {
	err := NewNoDataError("user karma")
	assert.Equal(t, "no data to aggregate for user karma", err.Error())
	assert.True(t, IsNoData(err))
	assert.True(t, IsNoData(fmt.Errorf("karma: %w", err)))
}

// TestValidation verifies field details ride along with the error.
func TestValidation(t *testing.T) {
	err := NewValidationError("Validation failed", []FieldError{
		{Field: "fname", Error: "is required"},
	})
	assert.Equal(t, "Validation failed", err.Error())
	assert.True(t, IsValidation(err))
	assert.Len(t, err.Fields, 1)
	assert.Equal(t, "fname", err.Fields[0].Field)
}
