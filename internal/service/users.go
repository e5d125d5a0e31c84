package service

import (
	"context"
	"fmt"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// UserService exposes customer accounts to the admin back-office.
// Registration and login live in the auth package; this is read-only.
type UserService struct {
	store storage.Store
}

// NewUserService creates a UserService.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Users lists all accounts with passwords stripped.
func (s *UserService) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	sanitized := make([]models.User, len(users))
	for i, user := range users {
		sanitized[i] = user.Sanitize()
	}
	return sanitized, nil
}
