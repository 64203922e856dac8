package repository

import (
	"github.com/rs/zerolog"

	"github.com/deppfellow/questions/internal/database"
)

// Repositories is a container for all repository instances.
//
// It exists so the service layer can accept one dependency instead of
// five, and so tests can wire a fixture database through every repo in
// one call.
type Repositories struct {
	Users             *UsersRepository
	Questions         *QuestionsRepository
	Replies           *RepliesRepository
	QuestionFollowers *QuestionFollowersRepository
	QuestionLikes     *QuestionLikesRepository
}

// NewRepositories constructs the repository container on top of the shared
// database handle.
func NewRepositories(db *database.Database, logger *zerolog.Logger) *Repositories {
	return &Repositories{
		Users:             NewUsersRepository(db, logger),
		Questions:         NewQuestionsRepository(db, logger),
		Replies:           NewRepliesRepository(db, logger),
		QuestionFollowers: NewQuestionFollowersRepository(db, logger),
		QuestionLikes:     NewQuestionLikesRepository(db, logger),
	}
}
