package services

import (
	"errors"
	"fmt"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo repositories.ProductRepository
	storeRepo   repositories.StoreRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, storeRepo repositories.StoreRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// ListStoreProducts retrieves all products of a store. The store must
// exist but may belong to anyone.
func (s *ProductService) ListStoreProducts(storeID string) ([]models.Product, error) {
	if _, err := s.storeRepo.GetByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("store %s: %w", storeID, ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to check store %s: %w", storeID, err)
	}
	return s.productRepo.GetByStore(storeID)
}

// CreateProduct creates a product in one of the user's own stores.
// A store the user does not own is treated the same as a missing one.
func (s *ProductService) CreateProduct(user *models.User, storeID string, product *models.Product) error {
	if _, err := s.storeRepo.GetByIDForUser(storeID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("store %s: %w", storeID, ErrInvalidReference)
		}
		return fmt.Errorf("failed to check store %s: %w", storeID, err)
	}
	product.StoreID = storeID
	if err := s.productRepo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}
