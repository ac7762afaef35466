package repositories

import (
	"database/sql"
	"fmt"

	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// CreateBatch assigns the next group number for the user and inserts all
// rows inside one serializable transaction. The isolation level is what
// keeps two concurrent batches for the same user from reading the same
// maximum and producing duplicate group numbers.
func (r *GORMPurchaseRepository) CreateBatch(userID string, items []models.PurchaseItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var group int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var maxGroup sql.NullInt64
		// "group" is a reserved word on both sqlite and postgres.
		if err := tx.Model(&models.Purchase{}).
			Where("user_id = ?", userID).
			Select(`MAX("group")`).
			Scan(&maxGroup).Error; err != nil {
			return fmt.Errorf("failed to read max group for user %s: %w", userID, err)
		}
		group = int(maxGroup.Int64) + 1

		for _, item := range items {
			purchase := models.Purchase{
				ID:        uuid.New().String(),
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Group:     group,
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return fmt.Errorf("failed to create purchase row: %w", err)
			}
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, err
	}
	return group, nil
}

// GetByUser retrieves all purchases made by a user, oldest batch first.
func (r *GORMPurchaseRepository) GetByUser(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Where("user_id = ?", userID).Order(`"group", created_at`).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchases for user %s: %w", userID, err)
	}
	return purchases, nil
}
