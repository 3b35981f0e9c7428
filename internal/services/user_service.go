package services

import (
	"errors"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve users: %v", err)
	}
	return users, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "user not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve user %s: %v", id, err)
	}
	return user, nil
}

// UpdateUser updates an existing user's profile.
func (s *UserService) UpdateUser(id string, user *models.User) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "user not found")
		}
		return newError(DependencyFailure, "failed to retrieve user %s: %v", id, err)
	}

	user.ID = id
	user.CreatedAt = existing.CreatedAt
	if user.Password == "" {
		user.Password = existing.Password
	}
	if user.Role == "" {
		user.Role = existing.Role
	}

	if err := s.repo.Update(user); err != nil {
		return newError(DependencyFailure, "failed to update user %s: %v", id, err)
	}
	return nil
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "user not found")
		}
		return newError(DependencyFailure, "failed to delete user %s: %v", id, err)
	}
	return nil
}
