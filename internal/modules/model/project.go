package model

import (
	"time"

	"github.com/google/uuid"
)

// Project chain brands.
const (
	ChainBK = "BK"
	ChainTC = "TC"
)

// Project statuses.
const (
	ProjectNotStarted = "not_started"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectDelayed    = "delayed"
	ProjectCompleted  = "completed"
)

// IsValidProjectStatus checks membership in the project status vocabulary.
func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectOnHold, ProjectDelayed, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Location       string    `gorm:"type:text" json:"location"`
	MainContractor string    `gorm:"type:text" json:"main_contractor"`
	Chain          string    `gorm:"type:text;not null;check:chain IN ('BK','TC')" json:"chain"`
	Status         string    `gorm:"type:text;not null;default:'not_started';check:status IN ('not_started','in_progress','on_hold','delayed','completed')" json:"status"`

	// Progress is derived: written by the progress recompute after every
	// item/milestone mutation, plus an admin-only override endpoint.
	Progress int `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100" json:"progress"`

	StartDate *time.Time `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Notes     string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> ProjectItem
	Items []ProjectItem `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"items,omitempty"`

	// Project <-> TimelineMilestone
	Milestones []TimelineMilestone `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"milestones,omitempty"`

	// Project <-> Task
	Tasks []Task `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`

	// Project <-> Document
	Documents []Document `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"documents,omitempty"`
}

func (Project) TableName() string { return "projects" }
