// Package validation contains the logic for validating
// entity data before it reaches storage.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and extracts
// validation errors into a format the caller can understand.
package validation
