package models

import (
	"github.com/deppfellow/questions/internal/database"
)

// Reply represents a threaded response to a question.
//
// ParentReplyID is nil for a top-level reply. When set, it should point at
// a reply on the same question; that is assumed, not validated here.
type Reply struct {
	ID            int64  `json:"id" validate:"-"`
	QuestionID    int64  `json:"subject_question_id" validate:"required"`
	ParentReplyID *int64 `json:"parent_reply_id"`
	UserID        int64  `json:"user_id" validate:"required"`
	Body          string `json:"body" validate:"required"`
}

// Persisted reports whether storage has assigned this reply an id.
func (r *Reply) Persisted() bool {
	return r.ID != 0
}

// TopLevel reports whether this reply answers the question directly
// rather than another reply.
func (r *Reply) TopLevel() bool {
	return r.ParentReplyID == nil
}

// ReplyFromRow builds a Reply from a replies table row.
func ReplyFromRow(row database.Row) (*Reply, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, err
	}
	questionID, err := row.Int64("subject_question_id")
	if err != nil {
		return nil, err
	}
	parentID, err := row.NullInt64("parent_reply_id")
	if err != nil {
		return nil, err
	}
	userID, err := row.Int64("user_id")
	if err != nil {
		return nil, err
	}
	body, err := row.String("body")
	if err != nil {
		return nil, err
	}

	return &Reply{
		ID:            id,
		QuestionID:    questionID,
		ParentReplyID: parentID,
		UserID:        userID,
		Body:          body,
	}, nil
}
