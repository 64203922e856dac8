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

// QuestionLikesRepository owns the question_likes join table and the
// queries that cross it: likers of a question, like counts, questions
// liked by a user, and the most-liked ranking.
type QuestionLikesRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewQuestionLikesRepository constructs a QuestionLikesRepository on the
// shared handle.
func NewQuestionLikesRepository(db *database.Database, logger *zerolog.Logger) *QuestionLikesRepository {
	return &QuestionLikesRepository{db: db, log: logger}
}

const selectLikeByIDQuery = `
	SELECT
		*
	FROM
		question_likes
	WHERE
		question_likes.id = ?`

const insertLikeQuery = `
	INSERT INTO
		question_likes(user_id, question_id)
	VALUES
		(?, ?)`

const selectLikersForQuestionQuery = `
	SELECT DISTINCT
		u.*
	FROM
		users u
	JOIN
		question_likes ql ON ql.user_id = u.id
	WHERE
		ql.question_id = ?`

const countLikesForQuestionQuery = `
	SELECT
		COUNT(id) AS num_likes
	FROM
		question_likes
	WHERE
		question_likes.question_id = ?`

const selectLikedQuestionsForUserQuery = `
	SELECT DISTINCT
		q.*
	FROM
		questions q
	JOIN
		question_likes ql ON ql.question_id = q.id
	WHERE
		ql.user_id = ?`

// Ties on like count break on ascending question id so repeated calls
// rank identically.
const selectMostLikedQuestionsQuery = `
	SELECT
		q.*
	FROM
		questions q
	JOIN
		question_likes ql ON ql.question_id = q.id
	GROUP BY
		q.id
	ORDER BY
		COUNT(ql.id) DESC, q.id ASC
	LIMIT ?`

// FindByID returns the like row with the given id, or nil when none
// exists.
func (r *QuestionLikesRepository) FindByID(ctx context.Context, id int64) (*models.QuestionLike, error) {
	row, err := r.db.Get(ctx, selectLikeByIDQuery, id)
	if err != nil || row == nil {
		return nil, err
	}
	return models.QuestionLikeFromRow(row)
}

// Create inserts the like row and assigns the generated id onto it.
func (r *QuestionLikesRepository) Create(ctx context.Context, like *models.QuestionLike) error {
	if like.Persisted() {
		return errs.NewAlreadyPersistedError("question like", like.ID)
	}
	if err := validation.Check(like); err != nil {
		return err
	}

	id, err := r.db.Insert(ctx, insertLikeQuery, like.UserID, like.QuestionID)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	like.ID = id
	r.log.Debug().Int64("id", id).Msg("created question like")
	return nil
}

// LikersForQuestionID returns every user who likes the given question.
func (r *QuestionLikesRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error) {
	rows, err := r.db.Select(ctx, selectLikersForQuestionQuery, questionID)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

// NumLikesForQuestionID returns the count of like rows pointing at the
// given question.
func (r *QuestionLikesRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	row, err := r.db.Get(ctx, countLikesForQuestionQuery, questionID)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return row.Int64("num_likes")
}

// LikedQuestionsForUserID returns every question the given user likes.
func (r *QuestionLikesRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectLikedQuestionsForUserQuery, userID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// MostLikedQuestions returns at most n questions ordered by descending
// like count. Questions with no likes never rank.
func (r *QuestionLikesRepository) MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectMostLikedQuestionsQuery, n)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}
