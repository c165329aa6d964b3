package dto

import "time"

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"max=1000"`
}

// ProjectResponse represents the standard response format for a project,
// including the derived task statistics
type ProjectResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	UserID         string    `json:"userId"`
	TotalTasks     int64     `json:"totalTasks"`
	CompletedTasks int64     `json:"completedTasks"`
	Progress       int       `json:"progress"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
