package services

import (
	"fmt"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	storeRepo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repositories.StoreRepository) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
	}
}

// GetAllStores retrieves all stores.
func (s *StoreService) GetAllStores() ([]models.Store, error) {
	return s.storeRepo.GetAll()
}

// CreateStore creates a new store owned by the given user.
func (s *StoreService) CreateStore(user *models.User, store *models.Store) error {
	store.UserID = user.ID
	if err := s.storeRepo.Create(store); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// DeleteStore deletes a store owned by the user. Products of the store
// are removed by the cascade.
func (s *StoreService) DeleteStore(user *models.User, storeID string) error {
	if _, err := s.storeRepo.GetByIDForUser(storeID, user.ID); err != nil {
		return fmt.Errorf("store %s: %w", storeID, ErrInvalidReference)
	}
	return s.storeRepo.Delete(storeID)
}
