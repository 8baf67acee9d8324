package models

import "time"

// Task status values.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single unit of work owned by one user.
// UserID is stamped from the authenticated session on creation and is
// never settable by clients.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string     `json:"user" gorm:"index;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(100)"`
	Description string     `json:"description" gorm:"type:varchar(500)"`
	Status      string     `json:"status" gorm:"type:varchar(20)"`
	Priority    string     `json:"priority" gorm:"type:varchar(10)"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskFilter carries the optional list-query parameters. Zero values mean
// "not provided". Status and Priority are matched verbatim against stored
// values; an unrecognized value simply matches nothing.
type TaskFilter struct {
	Status   string
	Priority string
	Search   string
	Sort     string
}

// TaskStats holds the aggregate counts for one user's task set.
// A task contributes to exactly one status bucket and exactly one
// priority bucket, plus the total.
type TaskStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

// PriorityRank maps a priority value to its ordinal for sorting
// (high > medium > low). Unknown values rank below low.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
