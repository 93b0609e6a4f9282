package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"ecofeast/internal/models"
)

// KVTaskRepository persists the task collection as one JSON blob under
// KeyTasks, seeding the static task list on first read.
type KVTaskRepository struct {
	store Store
	mu    sync.Mutex
}

// NewKVTaskRepository creates a new instance of KVTaskRepository.
func NewKVTaskRepository(store Store) *KVTaskRepository {
	return &KVTaskRepository{store: store}
}

func (r *KVTaskRepository) load() ([]models.Task, error) {
	raw, err := r.store.Get(KeyTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	if raw == nil {
		tasks := seedTasks()
		if err := r.save(tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}
	var tasks []models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("corrupt tasks collection: %w", err)
	}
	return tasks, nil
}

func (r *KVTaskRepository) save(tasks []models.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := r.store.Set(KeyTasks, raw); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	return nil
}

// GetAll returns all tasks.
func (r *KVTaskRepository) GetAll() ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// UpdateStatus replaces the status of the task with the given ID.
func (r *KVTaskRepository) UpdateStatus(id string, status models.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
			return r.save(tasks)
		}
	}
	return fmt.Errorf("task with ID %s not found for status update", id)
}
