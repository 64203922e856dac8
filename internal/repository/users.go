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

// UsersRepository performs all reads and writes on the users table, plus
// the karma aggregate over a user's authored questions.
type UsersRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewUsersRepository constructs a UsersRepository on the shared handle.
func NewUsersRepository(db *database.Database, logger *zerolog.Logger) *UsersRepository {
	return &UsersRepository{db: db, log: logger}
}

const selectAllUsersQuery = `
	SELECT
		*
	FROM
		users`

const selectUserByIDQuery = `
	SELECT
		*
	FROM
		users
	WHERE
		users.id = ?`

const selectUserByNameQuery = `
	SELECT
		*
	FROM
		users
	WHERE
		users.fname = ? AND users.lname = ?`

const insertUserQuery = `
	INSERT INTO
		users(fname, lname)
	VALUES
		(?, ?)`

const updateUserQuery = `
	UPDATE
		users
	SET
		fname = ?, lname = ?
	WHERE
		id = ?`

// averageKarmaQuery computes total likes across the user's questions
// divided by the distinct count of those questions. With zero authored
// questions the division yields NULL, which AverageKarma maps to a
// NoDataError.
const averageKarmaQuery = `
	SELECT
		CAST(COUNT(ql.id) AS REAL) / COUNT(DISTINCT q.id) AS karma
	FROM
		questions q
	LEFT JOIN
		question_likes ql ON ql.question_id = q.id
	WHERE
		q.associated_author_id = ?`

// All returns every user. No users is an empty slice, not an error.
func (r *UsersRepository) All(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Select(ctx, selectAllUsersQuery)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

// FindByID returns the user with the given id, or nil when none exists.
func (r *UsersRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := r.db.Get(ctx, selectUserByIDQuery, id)
	if err != nil || row == nil {
		return nil, err
	}
	return models.UserFromRow(row)
}

// FindByName returns the first user matching both name fields exactly,
// or nil when none matches.
func (r *UsersRepository) FindByName(ctx context.Context, firstName, lastName string) (*models.User, error) {
	row, err := r.db.Get(ctx, selectUserByNameQuery, firstName, lastName)
	if err != nil || row == nil {
		return nil, err
	}
	return models.UserFromRow(row)
}

// Create inserts the user and assigns the generated id onto it.
// A user that already has an id cannot be created again.
func (r *UsersRepository) Create(ctx context.Context, user *models.User) error {
	if user.Persisted() {
		return errs.NewAlreadyPersistedError("user", user.ID)
	}
	if err := validation.Check(user); err != nil {
		return err
	}

	id, err := r.db.Insert(ctx, insertUserQuery, user.FirstName, user.LastName)
	if err != nil {
		return sqlerr.HandleError(err)
	}

	user.ID = id
	r.log.Debug().Int64("id", id).Msg("created user")
	return nil
}

// Update persists the user's current field values to its existing row.
// A user with no id has no row to update and fails with NotPersistedError.
func (r *UsersRepository) Update(ctx context.Context, user *models.User) error {
	if !user.Persisted() {
		return errs.NewNotPersistedError("user")
	}
	if err := validation.Check(user); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, updateUserQuery, user.FirstName, user.LastName, user.ID); err != nil {
		return sqlerr.HandleError(err)
	}

	r.log.Debug().Int64("id", user.ID).Msg("updated user")
	return nil
}

// Save creates the user when it has no id yet and updates it otherwise.
func (r *UsersRepository) Save(ctx context.Context, user *models.User) error {
	if user.Persisted() {
		return r.Update(ctx, user)
	}
	return r.Create(ctx, user)
}

// AverageKarma returns the average number of likes per question across the
// user's authored questions. A user with zero authored questions has no
// average to report and yields a NoDataError.
func (r *UsersRepository) AverageKarma(ctx context.Context, userID int64) (float64, error) {
	row, err := r.db.Get(ctx, averageKarmaQuery, userID)
	if err != nil {
		return 0, err
	}
	if row == nil || row["karma"] == nil {
		return 0, errs.NewNoDataError("user karma")
	}
	return row.Float64("karma")
}

// scanUsers maps users table rows into entities.
func scanUsers(rows []database.Row) ([]*models.User, error) {
	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		user, err := models.UserFromRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
