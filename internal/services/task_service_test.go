package services_test

import (
	"fmt"
	"testing"

	"ecofeast/internal/models"
	"ecofeast/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepository is a mock implementation of repositories.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetAll() ([]models.Task, error) {
	args := m.Called()
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(id string, status models.TaskStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func TestTaskService_GetTasks(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	service := services.NewTaskService(mockRepo)

	expected := []models.Task{
		{ID: "t1", StoreName: "City Bistro", Status: models.TaskPending},
		{ID: "t2", StoreName: "Green Valley Grocer", Status: models.TaskAccepted},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	tasks, err := service.GetTasks()

	assert.NoError(t, err)
	assert.Equal(t, expected, tasks)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	service := services.NewTaskService(mockRepo)

	// Valid status value passes through to the repository.
	mockRepo.On("UpdateStatus", "t1", models.TaskAccepted).Return(nil).Once()
	assert.NoError(t, service.UpdateTaskStatus("t1", models.TaskAccepted))
	mockRepo.AssertExpectations(t)

	// Unknown status value is rejected before hitting storage.
	err := service.UpdateTaskStatus("t1", "delivering")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task status")
	mockRepo.AssertNotCalled(t, "UpdateStatus", "t1", models.TaskStatus("delivering"))

	// Unknown task surfaces the repository error.
	mockRepo.On("UpdateStatus", "t99", models.TaskCompleted).Return(fmt.Errorf("task with ID t99 not found for status update")).Once()
	err = service.UpdateTaskStatus("t99", models.TaskCompleted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}
