package repositories

import (
	"context"

	"cakeshop/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context, search string) ([]models.User, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	UpdateAddress(ctx context.Context, id string, address *models.Address) error
}
