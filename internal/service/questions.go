package service

import (
	"context"

	"github.com/deppfellow/questions/internal/models"
	"github.com/deppfellow/questions/internal/repository"
)

// QuestionsService navigates from a question to its related entities and
// exposes the global ranking queries.
type QuestionsService struct {
	users     *repository.UsersRepository
	replies   *repository.RepliesRepository
	followers *repository.QuestionFollowersRepository
	likes     *repository.QuestionLikesRepository
}

// NewQuestionsService constructs a QuestionsService over the repository
// container.
func NewQuestionsService(repos *repository.Repositories) *QuestionsService {
	return &QuestionsService{
		users:     repos.Users,
		replies:   repos.Replies,
		followers: repos.QuestionFollowers,
		likes:     repos.QuestionLikes,
	}
}

// Author returns the user who asked the question, or nil when the author
// id does not resolve. An unresolvable foreign key mirrors lookup
// semantics instead of failing.
func (s *QuestionsService) Author(ctx context.Context, question *models.Question) (*models.User, error) {
	return s.users.FindByID(ctx, question.AuthorID)
}

// Replies returns every reply on the question, in storage order.
func (s *QuestionsService) Replies(ctx context.Context, question *models.Question) ([]*models.Reply, error) {
	return s.replies.FindByQuestionID(ctx, question.ID)
}

// Followers returns every user following the question.
func (s *QuestionsService) Followers(ctx context.Context, question *models.Question) ([]*models.User, error) {
	return s.followers.FollowersForQuestionID(ctx, question.ID)
}

// Likers returns every user who likes the question.
func (s *QuestionsService) Likers(ctx context.Context, question *models.Question) ([]*models.User, error) {
	return s.likes.LikersForQuestionID(ctx, question.ID)
}

// NumLikes returns the question's like count.
func (s *QuestionsService) NumLikes(ctx context.Context, question *models.Question) (int64, error) {
	return s.likes.NumLikesForQuestionID(ctx, question.ID)
}

// MostFollowed returns at most n questions by descending follower count.
func (s *QuestionsService) MostFollowed(ctx context.Context, n int) ([]*models.Question, error) {
	return s.followers.MostFollowedQuestions(ctx, n)
}

// MostLiked returns at most n questions by descending like count.
func (s *QuestionsService) MostLiked(ctx context.Context, n int) ([]*models.Question, error) {
	return s.likes.MostLikedQuestions(ctx, n)
}
