package services

import (
	"errors"
	"fmt"

	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/repository"
)

var ErrInvalidTheme = errors.New("invalid theme")

// UserService handles user preference updates.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateTheme sets the user's display theme after enum validation.
func (s *UserService) UpdateTheme(userID uint64, theme models.Theme) error {
	if !models.ValidTheme(theme) {
		return ErrInvalidTheme
	}

	if err := s.userRepo.UpdateTheme(userID, theme); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	return nil
}
