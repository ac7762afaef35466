package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// UserService handles the plain user listing and deletion. Deleting a
// user cascades to its stores, products and purchases.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// DeleteUser removes a user and, through the cascade, everything the
// user owns.
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
