package repositories

import (
	"fmt"
	"sync"
	"time"

	"taskhub/internal/models"

	"github.com/google/uuid"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
type MockTaskRepository struct {
	tasks map[string]models.Task
	mu    sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		tasks: make(map[string]models.Task),
	}
}

// FindByUser returns the user's tasks matching the filter, applying the same
// matching and ordering rules as the GORM repository.
func (r *MockTaskRepository) FindByUser(userID string, filter models.TaskFilter) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if TaskMatches(task, userID, filter) {
			matched = append(matched, task)
		}
	}
	SortTasks(matched, filter.Sort)
	return matched, nil
}

// GetByID returns a task by its ID.
func (r *MockTaskRepository) GetByID(id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task with ID %s: %w", id, ErrNotFound)
	}
	return &task, nil
}

// Create adds a new task.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

// Update modifies an existing task.
func (r *MockTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[task.ID]
	if !ok {
		return fmt.Errorf("task with ID %s for update: %w", task.ID, ErrNotFound)
	}
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

// Delete removes a task by its ID.
func (r *MockTaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("task with ID %s for deletion: %w", id, ErrNotFound)
	}
	delete(r.tasks, id)
	return nil
}
