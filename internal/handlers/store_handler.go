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

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	storeService *services.StoreService
	validate     *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, requireToken fiber.Handler) {
	router.Get("/stores", requireToken, h.HandleGetStores)
	router.Post("/stores", requireToken, h.HandleCreateStore)
	router.Delete("/stores/:id", requireToken, h.HandleDeleteStore)
}

// HandleGetStores lists every store.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.storeService.GetAllStores()
	if err != nil {
		log.Printf("Error getting all stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stores",
		})
	}
	return c.JSON(stores)
}

// HandleCreateStore creates a store owned by the current user.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		log.Printf("Error parsing store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(store); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user := middleware.CurrentUser(c)
	if err := h.storeService.CreateStore(user, &store); err != nil {
		log.Printf("Error creating store for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create store",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleDeleteStore deletes one of the current user's stores.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	storeID := c.Params("id")
	user := middleware.CurrentUser(c)

	if err := h.storeService.DeleteStore(user, storeID); err != nil {
		if errors.Is(err, services.ErrInvalidReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "The store with that id does not exist",
			})
		}
		log.Printf("Error deleting store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete store",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}
