package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a user-owned container for tasks. The owner is set at creation
// and never reassigned.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"size:1000"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	User  User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate assigns a UUID when none was provided
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// OwnerID returns the user who owns this project
func (p Project) OwnerID() string {
	return p.UserID
}

// ProgressPercentage computes the completion percentage from task counts,
// floored to an integer. A project with no tasks reports 0, not an error.
func ProgressPercentage(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(completed * 100 / total)
}
