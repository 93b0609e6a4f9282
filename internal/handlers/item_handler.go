package handlers

import (
	"fmt"
	"log"
	"strings"

	"ecofeast/internal/middleware"
	"ecofeast/internal/models"
	"ecofeast/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for surplus-food listings.
type ItemHandler struct {
	catalog  *services.CatalogService
	metadata *services.MetadataService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(catalog *services.CatalogService, metadata *services.MetadataService) *ItemHandler {
	return &ItemHandler{
		catalog:  catalog,
		metadata: metadata,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the listing routes with the Fiber app. Posting
// and deleting listings is a retailer action.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleListItems)
	itemRoutes.Post("/", middleware.RoleRequired(models.RoleRetailer, models.RoleAdmin), h.HandleAddItem)
	itemRoutes.Delete("/:id", middleware.RoleRequired(models.RoleRetailer, models.RoleAdmin), h.HandleDeleteItem)
	itemRoutes.Post("/metadata", middleware.RoleRequired(models.RoleRetailer, models.RoleAdmin), h.HandleSuggestMetadata)
}

// HandleListItems retrieves listings ranked for the caller's role, optionally
// narrowed by the category and search query parameters.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.catalog.ListItemsForRole(middleware.RoleFromContext(c))
	if err != nil {
		log.Printf("Error listing items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
			"error":   err.Error(),
		})
	}

	category := models.Category(c.Query("category"))
	search := c.Query("search")
	if category != "" || search != "" {
		items = services.FilterItems(items, category, search)
	}

	return c.JSON(items)
}

// HandleAddItem creates a new listing on behalf of the authenticated retailer.
func (h *ItemHandler) HandleAddItem(c *fiber.Ctx) error {
	var draft models.Item
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(draft); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.catalog.AddItem(middleware.UserIDFromContext(c), draft)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create item",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleDeleteItem removes a listing by its ID.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.catalog.DeleteItem(itemID); err != nil {
		log.Printf("Error deleting item %s: %v", itemID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Item with ID %s not found", itemID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s deleted successfully", itemID),
	})
}

// MetadataRequest represents a draft listing to auto-tag.
type MetadataRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// HandleSuggestMetadata returns model-suggested expiry, tags, and CO2 impact
// for a draft listing. The prediction never fails; a static fallback covers
// every external-service error.
func (h *ItemHandler) HandleSuggestMetadata(c *fiber.Ctx) error {
	var req MetadataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and category are required",
		})
	}

	meta := h.metadata.Predict(c.Context(), req.Title, req.Category)
	return c.JSON(meta)
}
