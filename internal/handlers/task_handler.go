package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the task routes. All of them require auth, so the
// caller passes the protected router group. The stats route is registered
// before the :id routes so "stats" is never taken for a task ID.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskRoutes := router.Group("/tasks")
	taskRoutes.Get("/stats", h.HandleGetStats)
	taskRoutes.Get("/", h.HandleListTasks)
	taskRoutes.Post("/", h.HandleCreateTask)
	taskRoutes.Get("/:id", h.HandleGetTask)
	taskRoutes.Put("/:id", h.HandleUpdateTask)
	taskRoutes.Delete("/:id", h.HandleDeleteTask)
}

// HandleListTasks returns the user's tasks, filtered and sorted per the
// query parameters.
func (h *TaskHandler) HandleListTasks(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	filter := models.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	tasks, err := h.service.ListTasks(userID, filter)
	if err != nil {
		log.Printf("Error listing tasks for user %s: %v", userID, err)
		return serverError(c, "Could not retrieve tasks")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(tasks),
		"tasks":   tasks,
	})
}

// HandleGetStats returns the aggregate task counts for the user.
func (h *TaskHandler) HandleGetStats(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	stats, err := h.service.GetStats(userID)
	if err != nil {
		log.Printf("Error computing stats for user %s: %v", userID, err)
		return serverError(c, "Could not compute statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// HandleGetTask returns a single task by ID, owner only.
func (h *TaskHandler) HandleGetTask(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	taskID := c.Params("id")

	task, err := h.service.GetTask(taskID, userID)
	if err != nil {
		return h.taskError(c, taskID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// CreateTaskRequest represents the request body for creating a task.
// The owner is never taken from the body; it is always the session user.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// HandleCreateTask creates a task owned by the session user.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create task body: %v", err)
		return badRequest(c, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	task, err := h.service.CreateTask(userID, req.Title, req.Description, req.Status, req.Priority, req.DueDate)
	if err != nil {
		log.Printf("Error creating task for user %s: %v", userID, err)
		return serverError(c, "Could not create task")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTaskRequest represents the request body for updating a task.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// HandleUpdateTask updates a task, owner only.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	taskID := c.Params("id")

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update task body: %v", err)
		return badRequest(c, "Invalid request body")
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return fieldErrors(c, map[string]string{"Title": "Title must not be blank"})
		}
		req.Title = &trimmed
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	task, err := h.service.UpdateTask(taskID, userID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return h.taskError(c, taskID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Task updated successfully",
		"task":    task,
	})
}

// HandleDeleteTask deletes a task, owner only.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	taskID := c.Params("id")

	if err := h.service.DeleteTask(taskID, userID); err != nil {
		return h.taskError(c, taskID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// taskError maps a TaskService error to its HTTP response.
func (h *TaskHandler) taskError(c *fiber.Ctx, taskID string, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Task not found",
		})
	case errors.Is(err, services.ErrNotTaskOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Not authorized to access this task",
		})
	default:
		log.Printf("Unexpected task error for %s: %v", taskID, err)
		return serverError(c, "Something went wrong")
	}
}
