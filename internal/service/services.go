package service

import (
	"github.com/deppfellow/questions/internal/repository"
)

// Services is a container for all service instances.
type Services struct {
	Users     *UsersService
	Questions *QuestionsService
	Replies   *RepliesService
}

// NewServices constructs the service container over the repositories.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:     NewUsersService(repos),
		Questions: NewQuestionsService(repos),
		Replies:   NewRepliesService(repos),
	}
}
