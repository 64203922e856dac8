package models

import (
	"github.com/deppfellow/questions/internal/database"
)

// Question represents a posted question. AuthorID references the user who
// asked it; referential integrity is the schema's concern, not this
// layer's.
type Question struct {
	ID       int64  `json:"id" validate:"-"`
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	AuthorID int64  `json:"associated_author_id" validate:"required"`
}

// Persisted reports whether storage has assigned this question an id.
func (q *Question) Persisted() bool {
	return q.ID != 0
}

// QuestionFromRow builds a Question from a questions table row.
func QuestionFromRow(row database.Row) (*Question, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, err
	}
	title, err := row.String("title")
	if err != nil {
		return nil, err
	}
	body, err := row.String("body")
	if err != nil {
		return nil, err
	}
	authorID, err := row.Int64("associated_author_id")
	if err != nil {
		return nil, err
	}

	return &Question{ID: id, Title: title, Body: body, AuthorID: authorID}, nil
}
