package repositories_test

import (
	"testing"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", repositories.OrderClause("newest"))
	assert.Equal(t, "created_at ASC", repositories.OrderClause("oldest"))
	assert.Contains(t, repositories.OrderClause("priority"), "CASE priority")
	assert.Contains(t, repositories.OrderClause("priority"), "DESC")
	assert.Contains(t, repositories.OrderClause("dueDate"), "due_date ASC")

	// Unknown or absent tokens fall back to newest-first.
	assert.Equal(t, "created_at DESC", repositories.OrderClause(""))
	assert.Equal(t, "created_at DESC", repositories.OrderClause("alphabetical"))
	assert.Equal(t, "created_at DESC", repositories.OrderClause("NEWEST"))
}

func TestTaskMatches_UserScoping(t *testing.T) {
	task := models.Task{UserID: "user-a", Title: "Write report"}

	assert.True(t, repositories.TaskMatches(task, "user-a", models.TaskFilter{}))
	assert.False(t, repositories.TaskMatches(task, "user-b", models.TaskFilter{}))
}

func TestTaskMatches_StatusAndPriority(t *testing.T) {
	task := models.Task{UserID: "u", Status: models.StatusPending, Priority: models.PriorityHigh}

	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Status: "pending"}))
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Status: "completed"}))
	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Priority: "high"}))
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Priority: "low"}))

	// Unrecognized filter values match nothing rather than erroring.
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Status: "archived"}))
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Priority: "urgent"}))

	// Both filters must hold together.
	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Status: "pending", Priority: "high"}))
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Status: "pending", Priority: "low"}))
}

func TestTaskMatches_Search(t *testing.T) {
	task := models.Task{UserID: "u", Title: "Write Report", Description: "Quarterly NUMBERS"}

	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Search: "report"}))
	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Search: "REPORT"}))
	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Search: "rite Rep"}))
	assert.True(t, repositories.TaskMatches(task, "u", models.TaskFilter{Search: "numbers"}))
	assert.False(t, repositories.TaskMatches(task, "u", models.TaskFilter{Search: "invoice"}))
}

func TestSortTasks_CreatedAt(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
	}

	repositories.SortTasks(tasks, "newest")
	assert.Equal(t, []string{"c", "b", "a"}, taskIDs(tasks))

	repositories.SortTasks(tasks, "oldest")
	assert.Equal(t, []string{"a", "b", "c"}, taskIDs(tasks))

	// Fallback behaves like newest.
	repositories.SortTasks(tasks, "bogus")
	assert.Equal(t, []string{"c", "b", "a"}, taskIDs(tasks))
}

func TestSortTasks_Priority(t *testing.T) {
	tasks := []models.Task{
		{ID: "low", Priority: models.PriorityLow},
		{ID: "high", Priority: models.PriorityHigh},
		{ID: "medium", Priority: models.PriorityMedium},
	}

	repositories.SortTasks(tasks, "priority")
	assert.Equal(t, []string{"high", "medium", "low"}, taskIDs(tasks))
}

func TestSortTasks_DueDate(t *testing.T) {
	due1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	due2 := due1.Add(48 * time.Hour)
	tasks := []models.Task{
		{ID: "none"},
		{ID: "later", DueDate: &due2},
		{ID: "soon", DueDate: &due1},
	}

	// Undated tasks sort after dated ones.
	repositories.SortTasks(tasks, "dueDate")
	assert.Equal(t, []string{"soon", "later", "none"}, taskIDs(tasks))
}

func TestMockTaskRepository_FindByUser(t *testing.T) {
	repo := repositories.NewMockTaskRepository()

	mine := &models.Task{UserID: "me", Title: "Write Report", Status: models.StatusPending, Priority: models.PriorityHigh}
	theirs := &models.Task{UserID: "them", Title: "Write Report", Status: models.StatusPending, Priority: models.PriorityHigh}
	assert.NoError(t, repo.Create(mine))
	assert.NoError(t, repo.Create(theirs))

	tasks, err := repo.FindByUser("me", models.TaskFilter{Search: "report"})
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
	assert.False(t, tasks[0].CreatedAt.IsZero())
	assert.False(t, tasks[0].UpdatedAt.IsZero())
}

func TestMockTaskRepository_CRUD(t *testing.T) {
	repo := repositories.NewMockTaskRepository()

	task := &models.Task{UserID: "me", Title: "First"}
	assert.NoError(t, repo.Create(task))
	assert.NotEmpty(t, task.ID)

	fetched, err := repo.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, "First", fetched.Title)

	fetched.Title = "Renamed"
	assert.NoError(t, repo.Update(fetched))
	refetched, err := repo.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", refetched.Title)

	assert.NoError(t, repo.Delete(task.ID))
	_, err = repo.GetByID(task.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(task.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(refetched), repositories.ErrNotFound)
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
