package repositories

import (
	"fmt"
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockStoreRepository is an in-memory implementation of StoreRepository.
type MockStoreRepository struct {
	stores map[string]models.Store
	mu     sync.RWMutex
}

// NewMockStoreRepository creates a new instance of MockStoreRepository.
func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{
		stores: make(map[string]models.Store),
	}
}

// Create adds a new store.
func (r *MockStoreRepository) Create(store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	r.stores[store.ID] = *store
	return nil
}

// GetAll returns all stores.
func (r *MockStoreRepository) GetAll() ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	storeList := make([]models.Store, 0, len(r.stores))
	for _, s := range r.stores {
		storeList = append(storeList, s)
	}
	return storeList, nil
}

// GetByID returns a store by its ID.
func (r *MockStoreRepository) GetByID(id string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("store with ID %s: %w", id, ErrNotFound)
	}
	return &store, nil
}

// GetByIDForUser returns a store only if the given user owns it.
func (r *MockStoreRepository) GetByIDForUser(id, userID string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok || store.UserID != userID {
		return nil, fmt.Errorf("store with ID %s for user %s: %w", id, userID, ErrNotFound)
	}
	return &store, nil
}

// Delete removes a store by its ID.
func (r *MockStoreRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[id]; !ok {
		return fmt.Errorf("store with ID %s: %w", id, ErrNotFound)
	}
	delete(r.stores, id)
	return nil
}
