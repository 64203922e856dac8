package models

import (
	"github.com/deppfellow/questions/internal/database"
)

// QuestionFollower is the join entity linking a user to a question they
// follow.
type QuestionFollower struct {
	ID         int64 `json:"id" validate:"-"`
	UserID     int64 `json:"user_id" validate:"required"`
	QuestionID int64 `json:"question_id" validate:"required"`
}

// Persisted reports whether storage has assigned this row an id.
func (f *QuestionFollower) Persisted() bool {
	return f.ID != 0
}

// QuestionFollowerFromRow builds a QuestionFollower from a
// question_followers table row.
func QuestionFollowerFromRow(row database.Row) (*QuestionFollower, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, err
	}
	userID, err := row.Int64("user_id")
	if err != nil {
		return nil, err
	}
	questionID, err := row.Int64("question_id")
	if err != nil {
		return nil, err
	}

	return &QuestionFollower{ID: id, UserID: userID, QuestionID: questionID}, nil
}
