package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kanban board columns. These four strings are the only values the
// store accepts (enforced by the check constraint below).
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskReview     = "review"
	TaskDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// TaskColumns lists the board columns in display order.
var TaskColumns = []string{TaskTodo, TaskInProgress, TaskReview, TaskDone}

// NormalizeTaskStatus maps any caller-supplied status string onto the
// canonical column vocabulary. The historical aliases "in-progress" and
// "in progress" map to in_progress; anything unrecognized falls back to
// todo. This is the single place status strings are interpreted.
func NormalizeTaskStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TaskTodo:
		return TaskTodo
	case TaskInProgress, "in-progress", "in progress":
		return TaskInProgress
	case TaskReview:
		return TaskReview
	case TaskDone:
		return TaskDone
	default:
		return TaskTodo
	}
}

func IsValidTaskPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_tasks_project;index:ix_tasks_project_status,priority:1" json:"project_id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"type:text;not null;default:'medium';check:priority IN ('low','medium','high')" json:"priority"`
	Status      string `gorm:"type:text;not null;default:'todo';check:status IN ('todo','in_progress','review','done');index:ix_tasks_project_status,priority:2" json:"status"`

	// OrderIndex is the 0-based position within the status column. It is
	// rewritten densely on every move; ties are not rejected by the store.
	OrderIndex int `gorm:"not null;default:0" json:"order_index"`

	AssignedTo *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to"`
	DueDate    *time.Time `gorm:"type:date" json:"due_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Task <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Task <-> User
	Assignee *User `gorm:"foreignKey:AssignedTo;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"assignee,omitempty"`
}

func (Task) TableName() string { return "tasks" }
