package models

import (
	"github.com/deppfellow/questions/internal/database"
)

// User represents an account that authors questions and replies and can
// follow or like questions.
type User struct {
	ID        int64  `json:"id" validate:"-"`
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
}

// Persisted reports whether storage has assigned this user an id.
func (u *User) Persisted() bool {
	return u.ID != 0
}

// UserFromRow builds a User from a users table row.
func UserFromRow(row database.Row) (*User, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, err
	}
	fname, err := row.String("fname")
	if err != nil {
		return nil, err
	}
	lname, err := row.String("lname")
	if err != nil {
		return nil, err
	}

	return &User{ID: id, FirstName: fname, LastName: lname}, nil
}
