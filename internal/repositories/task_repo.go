package repositories

import "taskhub/internal/models"

// TaskRepository defines the interface for task data access.
// FindByUser is always scoped to the given user; the other methods operate
// on task IDs and leave ownership decisions to the caller.
type TaskRepository interface {
	FindByUser(userID string, filter models.TaskFilter) ([]models.Task, error)
	GetByID(id string) (*models.Task, error)
	Create(task *models.Task) error
	Update(task *models.Task) error
	Delete(id string) error
}
