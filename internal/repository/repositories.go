package repository

import (
	"github.com/campushub/items-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Items *ItemRepository
}

// NewRepositories constructs the repository container from the shared
// app container (the store handle lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemRepository(s.DB.DB),
	}
}
