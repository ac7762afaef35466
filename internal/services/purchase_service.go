package services

import (
	"errors"
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// Publisher publishes purchase events to the message broker. Kept as an
// interface so tests and broker-less runs can pass a mock or nil.
type Publisher interface {
	PublishPurchaseCreated(data map[string]interface{}) error
}

// PurchaseService handles the creation and listing of purchase batches.
// It is stateless between calls; each batch is an independent atomic
// transaction in the purchase repository.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	productRepo  repositories.ProductRepository
	publisher    Publisher
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, productRepo repositories.ProductRepository, publisher Publisher) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		publisher:    publisher,
	}
}

// CreateBatch validates the line items and writes them as one batch
// sharing the user's next group number. Validation runs over the whole
// batch before anything is persisted. An empty batch is a degenerate
// success that writes nothing and consumes no group number.
func (s *PurchaseService) CreateBatch(user *models.User, items []models.PurchaseItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	for _, item := range items {
		if item.ProductID == "" {
			return 0, fmt.Errorf("line item without product id: %w", ErrInvalidLineItem)
		}
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("quantity %d for product %s: %w", item.Quantity, item.ProductID, ErrInvalidLineItem)
		}
	}
	for _, item := range items {
		if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return 0, fmt.Errorf("product %s: %w", item.ProductID, ErrInvalidReference)
			}
			return 0, fmt.Errorf("failed to check product %s: %w", item.ProductID, err)
		}
	}

	group, err := s.purchaseRepo.CreateBatch(user.ID, items)
	if err != nil {
		return 0, fmt.Errorf("failed to create purchase batch: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"user_id": user.ID,
			"group":   group,
			"items":   len(items),
		}
		if err := s.publisher.PublishPurchaseCreated(event); err != nil {
			log.Printf("Warning: failed to publish purchase created event for user %s group %d: %v", user.ID, group, err)
		}
	}
	return group, nil
}

// ListUserPurchases retrieves all purchases made by the user.
func (s *PurchaseService) ListUserPurchases(user *models.User) ([]models.Purchase, error) {
	return s.purchaseRepo.GetByUser(user.ID)
}
