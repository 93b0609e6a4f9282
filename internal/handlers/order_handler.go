package handlers

import (
	"log"
	"strings"

	"ecofeast/internal/middleware"
	"ecofeast/internal/models"
	"ecofeast/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and reservations.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. Checkout is
// a consumer action; other roles go through their own dashboards.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", middleware.RoleRequired(models.RoleConsumer), h.HandleCreateOrder)
	orderRoutes.Get("/mine", h.HandleGetMyReservations)
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// HandleCreateOrder reserves the requested listings for the caller. Sold-out
// listings do not fail the order; they are reported back in "unavailable".
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if len(req.ItemIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one item is required for an order.",
		})
	}

	reservation, unavailable, err := h.service.CreateOrder(middleware.UserIDFromContext(c), req.ItemIDs)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order contains an unknown item",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reservation": reservation,
		"unavailable": unavailable,
	})
}

// HandleGetMyReservations retrieves the caller's reservations.
func (h *OrderHandler) HandleGetMyReservations(c *fiber.Ctx) error {
	reservations, err := h.service.GetUserReservations(middleware.UserIDFromContext(c))
	if err != nil {
		log.Printf("Error getting reservations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reservations",
			"error":   err.Error(),
		})
	}
	return c.JSON(reservations)
}
