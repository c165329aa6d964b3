package dto

import (
	"time"

	"github.com/taskmanager-simple/models"
)

// CreateTaskRequest represents the request payload for creating a new task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"max=1000"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskFilter represents filter and paging criteria for listing tasks.
// Pages are indexed from 0. A nil Status or empty Title applies no
// restriction.
type TaskFilter struct {
	ProjectID string
	Status    *models.TaskStatus
	Title     string
	Page      int
	PageSize  int
}

// TaskResponse represents the standard response format for a task
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"dueDate"`
	Status      models.TaskStatus `json:"status"`
	ProjectID   string            `json:"projectId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TaskListResponse represents a paginated task list response
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
