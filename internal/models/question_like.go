package models

import (
	"github.com/deppfellow/questions/internal/database"
)

// QuestionLike is the join entity linking a user to a question they like.
type QuestionLike struct {
	ID         int64 `json:"id" validate:"-"`
	UserID     int64 `json:"user_id" validate:"required"`
	QuestionID int64 `json:"question_id" validate:"required"`
}

// Persisted reports whether storage has assigned this row an id.
func (l *QuestionLike) Persisted() bool {
	return l.ID != 0
}

// QuestionLikeFromRow builds a QuestionLike from a question_likes table row.
func QuestionLikeFromRow(row database.Row) (*QuestionLike, error) {
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

	return &QuestionLike{ID: id, UserID: userID, QuestionID: questionID}, nil
}
