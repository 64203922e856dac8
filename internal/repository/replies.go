package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/questions/internal/database"
	"github.com/deppfellow/questions/internal/errs"
	"github.com/deppfellow/questions/internal/models"
	"github.com/deppfellow/questions/internal/sqlerr"
	"github.com/deppfellow/questions/internal/validation"
)

// RepliesRepository performs all reads and writes on the replies table.
//
// The parent/child lookups only walk one level; callers recursing through
// a reply tree are responsible for guarding against malformed parent
// chains.
type RepliesRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewRepliesRepository constructs a RepliesRepository on the shared handle.
func NewRepliesRepository(db *database.Database, logger *zerolog.Logger) *RepliesRepository {
	return &RepliesRepository{db: db, log: logger}
}

const selectAllRepliesQuery = `
	SELECT
		*
	FROM
		replies`

const selectReplyByIDQuery = `
	SELECT
		*
	FROM
		replies
	WHERE
		replies.id = ?`

const selectRepliesByParentIDQuery = `
	SELECT
		*
	FROM
		replies
	WHERE
		replies.parent_reply_id = ?`

const selectRepliesByQuestionIDQuery = `
	SELECT
		*
	FROM
		replies
	WHERE
		replies.subject_question_id = ?`

const selectRepliesByUserIDQuery = `
	SELECT
		*
	FROM
		replies
	WHERE
		replies.user_id = ?`

const insertReplyQuery = `
	INSERT INTO
		replies(subject_question_id, parent_reply_id, user_id, body)
	VALUES
		(?, ?, ?, ?)`

// All returns every reply. No replies is an empty slice, not an error.
func (r *RepliesRepository) All(ctx context.Context) ([]*models.Reply, error) {
	rows, err := r.db.Select(ctx, selectAllRepliesQuery)
	if err != nil {
		return nil, err
	}
	return scanReplies(rows)
}

// FindByID returns the reply with the given id, or nil when none exists.
func (r *RepliesRepository) FindByID(ctx context.Context, id int64) (*models.Reply, error) {
	row, err := r.db.Get(ctx, selectReplyByIDQuery, id)
	if err != nil || row == nil {
		return nil, err
	}
	return models.ReplyFromRow(row)
}

// FindByParentReplyID returns the direct children of the given reply.
func (r *RepliesRepository) FindByParentReplyID(ctx context.Context, parentReplyID int64) ([]*models.Reply, error) {
	rows, err := r.db.Select(ctx, selectRepliesByParentIDQuery, parentReplyID)
	if err != nil {
		return nil, err
	}
	return scanReplies(rows)
}

// FindByQuestionID returns every reply on the given question, top-level
// and nested alike, in storage order.
func (r *RepliesRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]*models.Reply, error) {
	rows, err := r.db.Select(ctx, selectRepliesByQuestionIDQuery, questionID)
	if err != nil {
		return nil, err
	}
	return scanReplies(rows)
}

// FindByUserID returns every reply the given user authored.
func (r *RepliesRepository) FindByUserID(ctx context.Context, userID int64) ([]*models.Reply, error) {
	rows, err := r.db.Select(ctx, selectRepliesByUserIDQuery, userID)
	if err != nil {
		return nil, err
	}
	return scanReplies(rows)
}

// Create inserts the reply and assigns the generated id onto it. A nil
// ParentReplyID persists as NULL, marking a top-level reply.
func (r *RepliesRepository) Create(ctx context.Context, reply *models.Reply) error {
	if reply.Persisted() {
		return errs.NewAlreadyPersistedError("reply", reply.ID)
	}
	if err := validation.Check(reply); err != nil {
		return err
	}

	// database/sql writes a nil *int64 as NULL.
	var parentID any
	if reply.ParentReplyID != nil {
		parentID = *reply.ParentReplyID
	}

	id, err := r.db.Insert(ctx, insertReplyQuery,
		reply.QuestionID, parentID, reply.UserID, reply.Body)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	reply.ID = id
	r.log.Debug().Int64("id", id).Msg("created reply")
	return nil
}

// Save creates the reply when it has no id yet. Replies are append-only in
// this layer.
func (r *RepliesRepository) Save(ctx context.Context, reply *models.Reply) error {
	return r.Create(ctx, reply)
}

// scanReplies maps replies table rows into entities.
func scanReplies(rows []database.Row) ([]*models.Reply, error) {
	replies := make([]*models.Reply, 0, len(rows))
	for _, row := range rows {
		reply, err := models.ReplyFromRow(row)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
