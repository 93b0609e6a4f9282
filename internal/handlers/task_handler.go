package handlers

import (
	"fmt"
	"log"
	"strings"

	"ecofeast/internal/middleware"
	"ecofeast/internal/models"
	"ecofeast/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for volunteer transport tasks.
type TaskHandler struct {
	service *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

// RegisterRoutes registers the task routes with the Fiber app. Only
// volunteers move tasks through their lifecycle.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskRoutes := router.Group("/tasks")
	taskRoutes.Get("/", h.HandleGetTasks)
	taskRoutes.Patch("/:id/status", middleware.RoleRequired(models.RoleVolunteer, models.RoleAdmin), h.HandleUpdateTaskStatus)
}

// HandleGetTasks retrieves all tasks.
func (h *TaskHandler) HandleGetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetTasks()
	if err != nil {
		log.Printf("Error getting tasks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tasks",
			"error":   err.Error(),
		})
	}
	return c.JSON(tasks)
}

// HandleUpdateTaskStatus updates the status of an existing task.
func (h *TaskHandler) HandleUpdateTaskStatus(c *fiber.Ctx) error {
	taskID := c.Params("id")
	var updateData struct {
		Status models.TaskStatus `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for task status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for task status update.",
		})
	}

	if err := h.service.UpdateTaskStatus(taskID, updateData.Status); err != nil {
		log.Printf("Error updating task status for task %s: %v", taskID, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid task status") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Task update failed: %v", err.Error()),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update task status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Task %s status updated successfully to %s", taskID, updateData.Status),
	})
}
