package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MilestoneRepo interface {
	Create(ctx context.Context, m *model.TimelineMilestone) error
	Update(ctx context.Context, m *model.TimelineMilestone) error
	Get(ctx context.Context, milestoneID uuid.UUID) (*model.TimelineMilestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TimelineMilestone, error)
	Delete(ctx context.Context, projectID uuid.UUID, milestoneID uuid.UUID) error
}

type milestoneRepo struct{ db *gorm.DB }

func NewMilestoneRepo(db *gorm.DB) MilestoneRepo {
	return &milestoneRepo{db: db}
}

func (r *milestoneRepo) Create(ctx context.Context, m *model.TimelineMilestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// milestoneUpdates lists every mutable column so zero values persist.
func milestoneUpdates(m *model.TimelineMilestone) map[string]interface{} {
	return map[string]interface{}{
		"name":         m.Name,
		"planned_date": m.PlannedDate,
		"actual_date":  m.ActualDate,
		"status":       m.Status,
	}
}

func (r *milestoneRepo) Update(ctx context.Context, m *model.TimelineMilestone) error {
	return r.db.WithContext(ctx).Model(&model.TimelineMilestone{}).
		Where("id = ?", m.ID).
		Updates(milestoneUpdates(m)).Error
}

func (r *milestoneRepo) Get(ctx context.Context, milestoneID uuid.UUID) (*model.TimelineMilestone, error) {
	var m model.TimelineMilestone
	return &m, r.db.WithContext(ctx).Where("id = ?", milestoneID).First(&m).Error
}

func (r *milestoneRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TimelineMilestone, error) {
	var milestones []*model.TimelineMilestone
	return milestones, r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("planned_date ASC NULLS LAST, created_at ASC").
		Find(&milestones).Error
}

func (r *milestoneRepo) Delete(ctx context.Context, projectID uuid.UUID, milestoneID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", milestoneID, projectID).
		Delete(&model.TimelineMilestone{}).Error
}
