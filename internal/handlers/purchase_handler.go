package handlers

import (
	"errors"
	"log"

	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles HTTP requests for purchase batches.
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// RegisterRoutes registers the purchase routes with the Fiber app.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router, requireToken fiber.Handler) {
	router.Post("/stores/:id/purchases", requireToken, h.HandleCreateBatch)
	router.Get("/my_purchases", requireToken, h.HandleGetMyPurchases)
}

// CreateBatchRequest represents the request body for a checkout call.
type CreateBatchRequest struct {
	Products []models.PurchaseItem `json:"products"`
}

// HandleCreateBatch creates one purchase batch for the current user.
// All line items end up sharing a single group number, or none are
// written at all.
func (h *PurchaseHandler) HandleCreateBatch(c *fiber.Ctx) error {
	var req CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing purchase request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user := middleware.CurrentUser(c)
	if _, err := h.purchaseService.CreateBatch(user, req.Products); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLineItem):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Each line item needs a product id and a positive quantity",
			})
		case errors.Is(err, services.ErrInvalidReference):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "A line item references a product that does not exist",
			})
		}
		log.Printf("Error creating purchase batch for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create purchases",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleGetMyPurchases lists the current user's purchases.
func (h *PurchaseHandler) HandleGetMyPurchases(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	purchases, err := h.purchaseService.ListUserPurchases(user)
	if err != nil {
		log.Printf("Error listing purchases for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve purchases",
		})
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	return c.JSON(purchases)
}
