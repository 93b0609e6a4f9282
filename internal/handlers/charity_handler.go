package handlers

import (
	"log"

	"ecofeast/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// CharityHandler serves the static partner-charity directory.
type CharityHandler struct {
	repo *repositories.CharityRepository
}

// NewCharityHandler creates a new CharityHandler.
func NewCharityHandler(repo *repositories.CharityRepository) *CharityHandler {
	return &CharityHandler{
		repo: repo,
	}
}

// RegisterRoutes registers the charity routes with the Fiber app.
func (h *CharityHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/charities", h.HandleGetCharities)
}

// HandleGetCharities retrieves all partner charities.
func (h *CharityHandler) HandleGetCharities(c *fiber.Ctx) error {
	out, err := h.repo.GetAll()
	if err != nil {
		log.Printf("Error getting charities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve charities",
			"error":   err.Error(),
		})
	}
	return c.JSON(out)
}
