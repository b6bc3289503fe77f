package users

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// Repository is the user-store collaborator. Email and ID are unique; at most
// one record may carry the admin flag.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	AdminExists(ctx context.Context) (bool, error)
}
