package repositories

import (
	"ecofeast/internal/models"
)

// TaskRepository defines the interface for volunteer task data access.
// Tasks come from a static seed; only their status is ever mutated.
type TaskRepository interface {
	GetAll() ([]models.Task, error)
	UpdateStatus(id string, status models.TaskStatus) error
}
