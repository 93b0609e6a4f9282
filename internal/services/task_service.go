package services

import (
	"fmt"

	"ecofeast/internal/models"
	"ecofeast/internal/repositories"
)

// TaskService handles volunteer transport tasks.
type TaskService struct {
	taskRepo repositories.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repositories.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// GetTasks retrieves all tasks.
func (s *TaskService) GetTasks() ([]models.Task, error) {
	return s.taskRepo.GetAll()
}

// UpdateTaskStatus sets the status of a task. The status value must be one
// of the known task statuses; transition order is not restricted.
func (s *TaskService) UpdateTaskStatus(id string, status models.TaskStatus) error {
	validStatuses := map[models.TaskStatus]bool{
		models.TaskPending:   true,
		models.TaskAccepted:  true,
		models.TaskCompleted: true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid task status: %s", status)
	}

	if err := s.taskRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update task status for task %s: %w", id, err)
	}
	return nil
}
