package services

import (
	"context"
	"fmt"
	"strings"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
)

// UserService manages customer accounts for the profile and admin pages.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// SaveAddress stores the default delivery address. The address must already
// be validated.
func (s *UserService) SaveAddress(ctx context.Context, userID string, address models.Address) (*models.User, error) {
	if err := s.userRepo.UpdateAddress(ctx, userID, &address); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns users whose username or email contains search.
func (s *UserService) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	return s.userRepo.GetAll(ctx, search)
}

// SetStatus blocks or unblocks a user. Status is matched case-insensitively.
func (s *UserService) SetStatus(ctx context.Context, userID, status string) (*models.User, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != models.UserStatusActive && status != models.UserStatusBlocked {
		return nil, fmt.Errorf("%w %q: want %s or %s", ErrInvalidStatus, status, models.UserStatusActive, models.UserStatusBlocked)
	}
	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
