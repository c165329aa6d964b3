package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "TODO"
	TaskStatusDone TaskStatus = "DONE"
)

// IsValid reports whether the status is one of the known states
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusTodo || s == TaskStatusDone
}

// Task is a unit of work inside a project. It carries no user reference:
// its effective owner is always the parent project's owner.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"size:1000"`
	DueDate     *time.Time `json:"dueDate" gorm:"default:null"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(10);not null;default:'TODO'"`
	ProjectID   string     `json:"projectId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate assigns a UUID when none was provided
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// MarkCompleted transitions the task to DONE. DONE is terminal, so calling
// this on an already completed task is a no-op.
func (t *Task) MarkCompleted() {
	t.Status = TaskStatusDone
}

// IsCompleted reports whether the task has been completed
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusDone
}
