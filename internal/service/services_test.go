package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/questions/internal/dbtest"
	"github.com/deppfellow/questions/internal/errs"
	"github.com/deppfellow/questions/internal/models"
	"github.com/deppfellow/questions/internal/repository"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()
	log := zerolog.Nop()
	repos := repository.NewRepositories(dbtest.New(t), &log)
	return NewServices(repos), repos
}

// TestLikeScenario walks the like flow end to end: one user, one question,
// one like, then every navigation that should observe it.
func TestLikeScenario(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, user))
	assert.EqualValues(t, 1, user.ID)

	question := &models.Question{Title: "T", Body: "B", AuthorID: user.ID}
	require.NoError(t, repos.Questions.Create(ctx, question))
	assert.EqualValues(t, 1, question.ID)

	like := &models.QuestionLike{UserID: user.ID, QuestionID: question.ID}
	require.NoError(t, repos.QuestionLikes.Create(ctx, like))

	numLikes, err := services.Questions.NumLikes(ctx, question)
	require.NoError(t, err)
	assert.EqualValues(t, 1, numLikes)

	karma, err := services.Users.AverageKarma(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, karma, 1e-9)

	likers, err := services.Questions.Likers(ctx, question)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, user.ID, likers[0].ID)

	liked, err := services.Users.LikedQuestions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, question.ID, liked[0].ID)
}

// TestThreadScenario walks the reply-threading flow: a top-level reply,
// a nested reply, and the parent/child navigation between them.
func TestThreadScenario(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, user))
	question := &models.Question{Title: "T", Body: "B", AuthorID: user.ID}
	require.NoError(t, repos.Questions.Create(ctx, question))

	first := &models.Reply{QuestionID: question.ID, UserID: user.ID, Body: "first"}
	require.NoError(t, repos.Replies.Create(ctx, first))
	assert.EqualValues(t, 1, first.ID)

	nested := &models.Reply{
		QuestionID:    question.ID,
		ParentReplyID: &first.ID,
		UserID:        user.ID,
		Body:          "nested",
	}
	require.NoError(t, repos.Replies.Create(ctx, nested))
	assert.EqualValues(t, 2, nested.ID)

	children, err := services.Replies.ChildReplies(ctx, first)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, nested.ID, children[0].ID)

	parent, err := services.Replies.ParentReply(ctx, nested)
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, first.ID, parent.ID)

	// A top-level reply has no parent; that is absence, not an error.
	top, err := services.Replies.ParentReply(ctx, first)
	require.NoError(t, err)
	assert.Nil(t, top)

	replyAuthor, err := services.Replies.Author(ctx, nested)
	require.NoError(t, err)
	require.NotNil(t, replyAuthor)
	assert.Equal(t, user.ID, replyAuthor.ID)

	backToQuestion, err := services.Replies.Question(ctx, nested)
	require.NoError(t, err)
	require.NotNil(t, backToQuestion)
	assert.Equal(t, question.ID, backToQuestion.ID)
}

// TestQuestionNavigation verifies author/replies/followers resolution and
// that a dangling author id resolves to nil rather than an error.
func TestQuestionNavigation(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	author := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, author))
	fan := &models.User{FirstName: "Alan", LastName: "Turing"}
	require.NoError(t, repos.Users.Create(ctx, fan))

	question := &models.Question{Title: "T", Body: "B", AuthorID: author.ID}
	require.NoError(t, repos.Questions.Create(ctx, question))

	follow := &models.QuestionFollower{UserID: fan.ID, QuestionID: question.ID}
	require.NoError(t, repos.QuestionFollowers.Create(ctx, follow))

	resolved, err := services.Questions.Author(ctx, question)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, author.ID, resolved.ID)

	followers, err := services.Questions.Followers(ctx, question)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, fan.ID, followers[0].ID)

	followed, err := services.Users.FollowedQuestions(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, question.ID, followed[0].ID)

	// Unresolvable foreign keys mirror lookup semantics.
	dangling := &models.Question{ID: question.ID, Title: "T", Body: "B", AuthorID: 999}
	missing, err := services.Questions.Author(ctx, dangling)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// TestUserNavigation verifies the user-side delegations: authored
// questions and replies.
func TestUserNavigation(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, user))

	question := &models.Question{Title: "T", Body: "B", AuthorID: user.ID}
	require.NoError(t, repos.Questions.Create(ctx, question))
	reply := &models.Reply{QuestionID: question.ID, UserID: user.ID, Body: "r"}
	require.NoError(t, repos.Replies.Create(ctx, reply))

	authored, err := services.Users.AuthoredQuestions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, authored, 1)
	assert.Equal(t, question.ID, authored[0].ID)

	replies, err := services.Users.AuthoredReplies(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)
}

// TestRankings verifies the service-level MostFollowed/MostLiked pass
// through with the n cutoff intact.
func TestRankings(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	author := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, author))
	fan := &models.User{FirstName: "Alan", LastName: "Turing"}
	require.NoError(t, repos.Users.Create(ctx, fan))

	first := &models.Question{Title: "first", Body: "B", AuthorID: author.ID}
	require.NoError(t, repos.Questions.Create(ctx, first))
	second := &models.Question{Title: "second", Body: "B", AuthorID: author.ID}
	require.NoError(t, repos.Questions.Create(ctx, second))

	require.NoError(t, repos.QuestionFollowers.Create(ctx,
		&models.QuestionFollower{UserID: fan.ID, QuestionID: second.ID}))
	require.NoError(t, repos.QuestionLikes.Create(ctx,
		&models.QuestionLike{UserID: fan.ID, QuestionID: first.ID}))

	mostFollowed, err := services.Questions.MostFollowed(ctx, 5)
	require.NoError(t, err)
	require.Len(t, mostFollowed, 1)
	assert.Equal(t, second.ID, mostFollowed[0].ID)

	mostLiked, err := services.Questions.MostLiked(ctx, 5)
	require.NoError(t, err)
	require.Len(t, mostLiked, 1)
	assert.Equal(t, first.ID, mostLiked[0].ID)
}

// TestAverageKarmaNoQuestions verifies the no-data policy surfaces through
// the service layer.
func TestAverageKarmaNoQuestions(t *testing.T) {
	services, repos := newTestServices(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repos.Users.Create(ctx, user))

	_, err := services.Users.AverageKarma(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNoData(err))
}
