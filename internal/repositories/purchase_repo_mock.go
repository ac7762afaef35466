package repositories

import (
	"fmt"
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
// A single mutex serializes batches, which gives the same guarantee the
// GORM implementation gets from serializable transactions.
type MockPurchaseRepository struct {
	purchases []models.Purchase
	mu        sync.Mutex

	// FailOnInsert, when > 0, makes CreateBatch fail while inserting the
	// n-th row of a batch. Used to simulate a mid-batch storage fault.
	FailOnInsert int
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{}
}

// CreateBatch assigns the user's next group number and inserts all rows,
// or none when a simulated fault is armed.
func (r *MockPurchaseRepository) CreateBatch(userID string, items []models.PurchaseItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	group := 1
	for _, p := range r.purchases {
		if p.UserID == userID && p.Group >= group {
			group = p.Group + 1
		}
	}

	// Stage rows so a simulated fault leaves the repository untouched.
	staged := make([]models.Purchase, 0, len(items))
	for i, item := range items {
		if r.FailOnInsert > 0 && i+1 == r.FailOnInsert {
			return 0, fmt.Errorf("simulated storage fault on row %d", r.FailOnInsert)
		}
		staged = append(staged, models.Purchase{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Group:     group,
		})
	}
	r.purchases = append(r.purchases, staged...)
	return group, nil
}

// GetByUser returns all purchases made by a user.
func (r *MockPurchaseRepository) GetByUser(userID string) ([]models.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
