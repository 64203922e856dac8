package repository

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/questions/internal/dbtest"
	"github.com/deppfellow/questions/internal/models"
)

// newTestRepos builds the repository container over a fresh in-memory
// database.
func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	log := zerolog.Nop()
	return NewRepositories(dbtest.New(t), &log)
}

func createTestUser(t *testing.T, repos *Repositories, firstName, lastName string) *models.User {
	t.Helper()
	user := &models.User{FirstName: firstName, LastName: lastName}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func createTestQuestion(t *testing.T, repos *Repositories, authorID int64, title string) *models.Question {
	t.Helper()
	question := &models.Question{Title: title, Body: "body of " + title, AuthorID: authorID}
	require.NoError(t, repos.Questions.Create(context.Background(), question))
	return question
}

func createTestReply(t *testing.T, repos *Repositories, questionID, userID int64, parentID *int64, body string) *models.Reply {
	t.Helper()
	reply := &models.Reply{
		QuestionID:    questionID,
		ParentReplyID: parentID,
		UserID:        userID,
		Body:          body,
	}
	require.NoError(t, repos.Replies.Create(context.Background(), reply))
	return reply
}

func followQuestion(t *testing.T, repos *Repositories, userID, questionID int64) *models.QuestionFollower {
	t.Helper()
	follower := &models.QuestionFollower{UserID: userID, QuestionID: questionID}
	require.NoError(t, repos.QuestionFollowers.Create(context.Background(), follower))
	return follower
}

func likeQuestion(t *testing.T, repos *Repositories, userID, questionID int64) *models.QuestionLike {
	t.Helper()
	like := &models.QuestionLike{UserID: userID, QuestionID: questionID}
	require.NoError(t, repos.QuestionLikes.Create(context.Background(), like))
	return like
}

// questionIDs projects a result slice onto ids for order assertions.
func questionIDs(questions []*models.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

// userIDs projects a result slice onto ids for set assertions.
func userIDs(users []*models.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
