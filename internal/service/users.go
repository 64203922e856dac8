package service

import (
	"context"

	"github.com/deppfellow/questions/internal/models"
	"github.com/deppfellow/questions/internal/repository"
)

// UsersService navigates from a user to the entities related to it.
type UsersService struct {
	questions *repository.QuestionsRepository
	replies   *repository.RepliesRepository
	followers *repository.QuestionFollowersRepository
	likes     *repository.QuestionLikesRepository
	users     *repository.UsersRepository
}

// NewUsersService constructs a UsersService over the repository container.
func NewUsersService(repos *repository.Repositories) *UsersService {
	return &UsersService{
		questions: repos.Questions,
		replies:   repos.Replies,
		followers: repos.QuestionFollowers,
		likes:     repos.QuestionLikes,
		users:     repos.Users,
	}
}

// AuthoredQuestions returns every question the user asked.
func (s *UsersService) AuthoredQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	return s.questions.FindByAuthorID(ctx, userID)
}

// AuthoredReplies returns every reply the user wrote.
func (s *UsersService) AuthoredReplies(ctx context.Context, userID int64) ([]*models.Reply, error) {
	return s.replies.FindByUserID(ctx, userID)
}

// FollowedQuestions returns every question the user follows.
func (s *UsersService) FollowedQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	return s.followers.FollowedQuestionsForUserID(ctx, userID)
}

// LikedQuestions returns every question the user likes.
func (s *UsersService) LikedQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	return s.likes.LikedQuestionsForUserID(ctx, userID)
}

// AverageKarma returns the user's average likes per authored question.
// A user with no authored questions yields errs.NoDataError.
func (s *UsersService) AverageKarma(ctx context.Context, userID int64) (float64, error) {
	return s.users.AverageKarma(ctx, userID)
}
