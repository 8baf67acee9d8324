package services

import (
	"errors"
	"log"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"
	"taskhub/pkg/rabbitmq"
)

// Errors returned by TaskService. Handlers map these to HTTP statuses.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotTaskOwner = errors.New("not authorized to access this task")
)

// TaskService handles business logic related to tasks: ownership checks,
// defaults, statistics and event publication.
type TaskService struct {
	taskRepo repositories.TaskRepository
	mqClient *rabbitmq.Client
}

// NewTaskService creates a new TaskService. mqClient may be nil, in which
// case event publication is skipped.
func NewTaskService(taskRepo repositories.TaskRepository, mqClient *rabbitmq.Client) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		mqClient: mqClient,
	}
}

// ListTasks retrieves the user's tasks matching the filter. Results are
// always scoped to the requesting user.
func (s *TaskService) ListTasks(userID string, filter models.TaskFilter) ([]models.Task, error) {
	return s.taskRepo.FindByUser(userID, filter)
}

// getOwnedTask fetches a task and enforces ownership. Existence is checked
// before ownership: a missing ID yields ErrTaskNotFound for every requester.
func (s *TaskService) getOwnedTask(id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrNotTaskOwner
	}
	return task, nil
}

// GetTask retrieves a single task, enforcing ownership.
func (s *TaskService) GetTask(id, userID string) (*models.Task, error) {
	return s.getOwnedTask(id, userID)
}

// CreateTask creates a task owned by the given user. Status defaults to
// pending and priority to medium when not provided.
func (s *TaskService) CreateTask(userID, title, description, status, priority string, dueDate *time.Time) (*models.Task, error) {
	if status == "" {
		status = models.StatusPending
	}
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	s.publishTaskEvent("task.created", task)
	return task, nil
}

// TaskUpdate carries the mutable task fields. A nil field is left unchanged.
// Ownership is never updatable.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// UpdateTask applies an update to a task after the ownership check and
// returns the updated record.
func (s *TaskService) UpdateTask(id, userID string, update TaskUpdate) (*models.Task, error) {
	task, err := s.getOwnedTask(id, userID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}

	s.publishTaskEvent("task.updated", task)
	return task, nil
}

// DeleteTask deletes a task after the ownership check. Deletion is permanent.
func (s *TaskService) DeleteTask(id, userID string) error {
	task, err := s.getOwnedTask(id, userID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return err
	}

	s.publishTaskEvent("task.deleted", task)
	return nil
}

// GetStats computes the aggregate counts over all of the user's tasks in a
// single pass. Counts are recomputed fresh on every call.
func (s *TaskService) GetStats(userID string) (models.TaskStats, error) {
	tasks, err := s.taskRepo.FindByUser(userID, models.TaskFilter{})
	if err != nil {
		return models.TaskStats{}, err
	}

	stats := models.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusCompleted:
			stats.Completed++
		}
		switch task.Priority {
		case models.PriorityHigh:
			stats.HighPriority++
		case models.PriorityMedium:
			stats.MediumPriority++
		case models.PriorityLow:
			stats.LowPriority++
		}
	}
	return stats, nil
}

// publishTaskEvent emits a task lifecycle event. Publication failures are
// logged and never fail the request.
func (s *TaskService) publishTaskEvent(action string, task *models.Task) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"taskID": task.ID,
		"userID": task.UserID,
		"status": task.Status,
		"title":  task.Title,
	}
	if err := s.mqClient.PublishTaskEvent(action, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for task %s: %v", action, task.ID, err)
	}
}
