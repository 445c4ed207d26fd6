package model

import (
	"time"

	"github.com/google/uuid"
)

// Milestone statuses.
const (
	MilestoneNotStarted = "not_started"
	MilestoneInProgress = "in_progress"
	MilestoneCompleted  = "completed"
	MilestoneDelayed    = "delayed"
)

func IsValidMilestoneStatus(s string) bool {
	switch s {
	case MilestoneNotStarted, MilestoneInProgress, MilestoneCompleted, MilestoneDelayed:
		return true
	}
	return false
}

// TimelineMilestone is a dated project checkpoint. ActualDate and Status
// are intentionally left independent: callers may set either without the
// other, matching how the data is tracked in the field.
type TimelineMilestone struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Name        string     `gorm:"type:text;not null" json:"name"`
	PlannedDate *time.Time `gorm:"type:date" json:"planned_date"`
	ActualDate  *time.Time `gorm:"type:date" json:"actual_date"`
	Status      string     `gorm:"type:text;not null;default:'not_started';check:status IN ('not_started','in_progress','completed','delayed')" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// TimelineMilestone <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (TimelineMilestone) TableName() string { return "timeline_milestones" }
