package domain

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

const (
	TaskTitleMaxLen       = 100
	TaskDescriptionMaxLen = 500
)

type Task struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID     string       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"size:500" json:"description,omitempty"`
	Status      TaskStatus   `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Priority    TaskPriority `gorm:"size:20;not null;default:'medium';index" json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
}
