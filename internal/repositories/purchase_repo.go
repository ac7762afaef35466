package repositories

import "lapak/internal/models"

// PurchaseRepository defines the interface for purchase data access.
type PurchaseRepository interface {
	// CreateBatch atomically assigns the user's next group number and
	// inserts one purchase row per item, all carrying that group.
	// Either every row is persisted or none is. Two concurrent batches
	// for the same user must never receive the same group number.
	// An empty item list is a no-op and returns group 0.
	CreateBatch(userID string, items []models.PurchaseItem) (int, error)
	GetByUser(userID string) ([]models.Purchase, error)
}
