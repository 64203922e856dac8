package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/questions/internal/errs"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error, its Code is returned;
// otherwise Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// Convert converts a raw sqlite3.Error into our normalized sqlerr.Error.
//
// SQLite constraint messages name their target inline, e.g.
//
//	UNIQUE constraint failed: question_likes.user_id, question_likes.question_id
//	NOT NULL constraint failed: users.fname
//
// while foreign key failures carry no target at all. Convert recovers the
// first table.column pair when one is present.
func Convert(src sqlite3.Error) *Error {
	table, column := parseConstraintTarget(src.Error())
	return &Error{
		Code:         MapCode(src.ExtendedCode),
		DatabaseCode: int(src.ExtendedCode),
		Message:      src.Error(),
		TableName:    table,
		ColumnName:   column,
		driverErr:    src,
	}
}

// parseConstraintTarget extracts the first "table.column" pair following
// the message's colon, if any.
func parseConstraintTarget(message string) (table, column string) {
	_, target, found := strings.Cut(message, ": ")
	if !found {
		return "", ""
	}
	// Multi-column constraints list every column; the first names the table
	// and is enough for messaging.
	first := strings.Split(target, ", ")[0]
	table, column, found = strings.Cut(strings.TrimSpace(first), ".")
	if !found {
		return "", ""
	}
	return table, column
}

// generateErrorCode creates consistent application error codes from DB
// errors, in the form <DOMAIN>_<ACTION>, e.g. users + UniqueViolation =>
// USER_ALREADY_EXISTS. These codes are meant for machines, not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "USERS" -> "USER". Good enough for this schema.
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
// It uses table/column info to phrase messages in a more human way.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with these values already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing the statement"
	}
}

// getEntityName infers an entity name from table/column data.
//
// Priority:
//  1. A column like "user_id" names the referenced entity ("User").
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case,
// e.g. "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a low-level database error into an application-level
// error.
//
// Output:
//   - errors already from the errs package are returned unchanged
//   - sqlite3.Error constraint violations become errs.ValidationError
//     carrying a machine code and friendly message
//   - anything else is returned as-is for the caller to wrap
//
// This function is intended to be called in repositories after a write fails.
func HandleError(err error) error {
	// Don't re-wrap errors that are already application-shaped.
	if errs.IsAlreadyPersisted(err) || errs.IsNotPersisted(err) || errs.IsValidation(err) || errs.IsNoData(err) {
		return err
	}

	var driverErr sqlite3.Error
	if errors.As(err, &driverErr) {
		sqlErr := Convert(driverErr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, CheckViolation:
			return errs.NewValidationError(
				fmt.Sprintf("%s: %s", errorCode, userMessage), nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewValidationError(
				fmt.Sprintf("%s: %s", errorCode, userMessage), fieldErrors)

		default:
			return sqlErr
		}
	}

	return err
}
