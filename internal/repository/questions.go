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

// QuestionsRepository performs all reads and writes on the questions table.
type QuestionsRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewQuestionsRepository constructs a QuestionsRepository on the shared
// handle.
func NewQuestionsRepository(db *database.Database, logger *zerolog.Logger) *QuestionsRepository {
	return &QuestionsRepository{db: db, log: logger}
}

const selectAllQuestionsQuery = `
	SELECT
		*
	FROM
		questions`

const selectQuestionByIDQuery = `
	SELECT
		*
	FROM
		questions
	WHERE
		questions.id = ?`

const selectQuestionsByAuthorIDQuery = `
	SELECT
		*
	FROM
		questions
	WHERE
		questions.associated_author_id = ?`

const insertQuestionQuery = `
	INSERT INTO
		questions(title, body, associated_author_id)
	VALUES
		(?, ?, ?)`

// All returns every question. No questions is an empty slice, not an error.
func (r *QuestionsRepository) All(ctx context.Context) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectAllQuestionsQuery)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// FindByID returns the question with the given id, or nil when none exists.
func (r *QuestionsRepository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	row, err := r.db.Get(ctx, selectQuestionByIDQuery, id)
	if err != nil || row == nil {
		return nil, err
	}
	return models.QuestionFromRow(row)
}

// FindByAuthorID returns every question the given user authored, in
// storage order.
func (r *QuestionsRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]*models.Question, error) {
	rows, err := r.db.Select(ctx, selectQuestionsByAuthorIDQuery, authorID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// Create inserts the question and assigns the generated id onto it.
func (r *QuestionsRepository) Create(ctx context.Context, question *models.Question) error {
	if question.Persisted() {
		return errs.NewAlreadyPersistedError("question", question.ID)
	}
	if err := validation.Check(question); err != nil {
		return err
	}

	id, err := r.db.Insert(ctx, insertQuestionQuery,
		question.Title, question.Body, question.AuthorID)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	question.ID = id
	r.log.Debug().Int64("id", id).Msg("created question")
	return nil
}

// Save creates the question when it has no id yet. Questions are
// append-only in this layer, so a persisted question fails the same way a
// double create does.
func (r *QuestionsRepository) Save(ctx context.Context, question *models.Question) error {
	return r.Create(ctx, question)
}

// scanQuestions maps questions table rows into entities.
func scanQuestions(rows []database.Row) ([]*models.Question, error) {
	questions := make([]*models.Question, 0, len(rows))
	for _, row := range rows {
		question, err := models.QuestionFromRow(row)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}
