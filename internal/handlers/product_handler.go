package handlers

import (
	"errors"
	"log"

	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products, nested under the
// store that sells them.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireToken fiber.Handler) {
	router.Get("/stores/:id/products", requireToken, h.HandleGetStoreProducts)
	router.Post("/stores/:id/products", requireToken, h.HandleCreateProduct)
}

// HandleGetStoreProducts lists the products of any existing store.
func (h *ProductHandler) HandleGetStoreProducts(c *fiber.Ctx) error {
	storeID := c.Params("id")
	products, err := h.productService.ListStoreProducts(storeID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "The store with that id does not exist",
			})
		}
		log.Printf("Error listing products for store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a product in one of the current user's stores.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	storeID := c.Params("id")
	user := middleware.CurrentUser(c)
	if err := h.productService.CreateProduct(user, storeID, &product); err != nil {
		if errors.Is(err, services.ErrInvalidReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "The store with that id does not exist",
			})
		}
		log.Printf("Error creating product in store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
