package repositories

import (
	"sort"
	"strings"

	"taskhub/internal/models"
)

// Sort tokens accepted on task list requests. Anything else falls back
// to SortNewest.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortPriority = "priority"
	SortDueDate  = "dueDate"
)

// priorityCase ranks priorities ordinally in SQL so that "priority" sorting
// orders high before medium before low.
const priorityCase = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

// OrderClause maps a sort token to its ORDER BY clause. It is total: every
// input produces an ordering, with unknown or empty tokens defaulting to
// newest-first. Tasks without a due date sort after dated tasks under
// SortDueDate.
func OrderClause(sortToken string) string {
	switch sortToken {
	case SortOldest:
		return "created_at ASC"
	case SortPriority:
		return priorityCase + " DESC"
	case SortDueDate:
		return "CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC"
	case SortNewest:
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}

// TaskMatches reports whether a task belongs to the given user and satisfies
// every provided filter. Status and priority are compared verbatim, so an
// unrecognized filter value matches nothing. Search is a case-insensitive
// substring match over title or description.
func TaskMatches(task models.Task, userID string, filter models.TaskFilter) bool {
	if task.UserID != userID {
		return false
	}
	if filter.Status != "" && task.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && task.Priority != filter.Priority {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) {
			return false
		}
	}
	return true
}

// SortTasks orders tasks in place according to the sort token, mirroring
// OrderClause for in-memory task sets. Sorting is stable so ties keep the
// underlying order.
func SortTasks(tasks []models.Task, sortToken string) {
	switch sortToken {
	case SortOldest:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return models.PriorityRank(tasks[i].Priority) > models.PriorityRank(tasks[j].Priority)
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}
