package repositories

import "lapak/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(store *models.Store) error
	GetAll() ([]models.Store, error)
	GetByID(id string) (*models.Store, error)
	// GetByIDForUser returns the store only if it is owned by the given
	// user. Returns an ErrNotFound-wrapped error otherwise.
	GetByIDForUser(id, userID string) (*models.Store, error)
	Delete(id string) error
}
