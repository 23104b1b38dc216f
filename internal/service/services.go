package service

import (
	"github.com/campushub/items-api/internal/repository"
	"github.com/campushub/items-api/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	Items *ItemService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Items: NewItemService(repos.Items),
	}
}
