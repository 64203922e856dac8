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

// QuestionFollowersRepository owns the question_followers join table and
// the queries that cross it: followers of a question, questions followed
// by a user, and the most-followed ranking.
type QuestionFollowersRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewQuestionFollowersRepository constructs a QuestionFollowersRepository
// on the shared handle.
func NewQuestionFollowersRepository(db *database.Database, logger *zerolog.Logger) *QuestionFollowersRepository {
	return &QuestionFollowersRepository{db: db, log: logger}
}

const selectFollowerByIDQuery = `
	SELECT
		*
	FROM
		question_followers
	WHERE
		question_followers.id = ?`

const insertFollowerQuery = `
	INSERT INTO
		question_followers(user_id, question_id)
	VALUES
		(?, ?)`

// Duplicate follow rows are tolerated by the schema, so the projection is
// DISTINCT to keep the join from surfacing a user twice.
const selectFollowersForQuestionQuery = `
	SELECT DISTINCT
		u.*
	FROM
		users u
	JOIN
		question_followers qf ON qf.user_id = u.id
	WHERE
		qf.question_id = ?`

const selectFollowedQuestionsForUserQuery = `
	SELECT DISTINCT
		q.*
	FROM
		questions q
	JOIN
		question_followers qf ON qf.question_id = q.id
	WHERE
		qf.user_id = ?`

// Ties on follower count break on ascending question id so repeated calls
// rank identically.
const selectMostFollowedQuestionsQuery = `
	SELECT
		q.*
	FROM
		questions q
	JOIN
		question_followers qf ON qf.question_id = q.id
	GROUP BY
		q.id
	ORDER BY
		COUNT(qf.id) DESC, q.id ASC
	LIMIT ?`

// FindByID returns the follow row with the given id, or nil when none
// exists.
func (r *QuestionFollowersRepository) FindByID(ctx context.Context, id int64) (*models.QuestionFollower, error) {
	row, err := r.db.Get(ctx, selectFollowerByIDQuery, id)
	if err != nil || row == nil {
		return nil, err
	}
	return models.QuestionFollowerFromRow(row)
}

// Create inserts the follow row and assigns the generated id onto it.
func (r *QuestionFollowersRepository) Create(ctx context.Context, follower *models.QuestionFollower) error {
	if follower.Persisted() {
		return errs.NewAlreadyPersistedError("question follower", follower.ID)
	}
	if err := validation.Check(follower); err != nil {
		return err
	}

	id, err := r.db.Insert(ctx, insertFollowerQuery, follower.UserID, follower.QuestionID)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	follower.ID = id
	r.log.Debug().Int64("id", id).Msg("created question follower")
	return nil
}

// FollowersForQuestionID returns every user following the given question.
func (r *QuestionFollowersRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error) {
	rows, err := r.db.Select(ctx, selectFollowersForQuestionQuery, questionID)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

// FollowedQuestionsForUserID returns every question the given user follows.
func (r *QuestionFollowersRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectFollowedQuestionsForUserQuery, userID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// MostFollowedQuestions returns at most n questions ordered by descending
// follower count. Questions with no followers never rank.
func (r *QuestionFollowersRepository) MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectMostFollowedQuestionsQuery, n)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}
