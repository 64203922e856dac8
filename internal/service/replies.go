package service

import (
	"context"

	"github.com/deppfellow/questions/internal/models"
	"github.com/deppfellow/questions/internal/repository"
)

// RepliesService navigates a reply's thread: its author, its question,
// its parent, and its direct children.
type RepliesService struct {
	users     *repository.UsersRepository
	questions *repository.QuestionsRepository
	replies   *repository.RepliesRepository
}

// NewRepliesService constructs a RepliesService over the repository
// container.
func NewRepliesService(repos *repository.Repositories) *RepliesService {
	return &RepliesService{
		users:     repos.Users,
		questions: repos.Questions,
		replies:   repos.Replies,
	}
}

// Author returns the user who wrote the reply, or nil when the user id
// does not resolve.
func (s *RepliesService) Author(ctx context.Context, reply *models.Reply) (*models.User, error) {
	return s.users.FindByID(ctx, reply.UserID)
}

// Question returns the question the reply belongs to, or nil when the
// question id does not resolve.
func (s *RepliesService) Question(ctx context.Context, reply *models.Reply) (*models.Question, error) {
	return s.questions.FindByID(ctx, reply.QuestionID)
}

// ParentReply returns the reply this one nests under, or nil for a
// top-level reply.
func (s *RepliesService) ParentReply(ctx context.Context, reply *models.Reply) (*models.Reply, error) {
	if reply.TopLevel() {
		return nil, nil
	}
	return s.replies.FindByID(ctx, *reply.ParentReplyID)
}

// ChildReplies returns the replies nested directly under this one. It
// walks a single level; it does not recurse.
func (s *RepliesService) ChildReplies(ctx context.Context, reply *models.Reply) ([]*models.Reply, error) {
	return s.replies.FindByParentReplyID(ctx, reply.ID)
}
