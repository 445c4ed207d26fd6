package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, projectID uuid.UUID) (*model.Project, error)
	List(ctx context.Context, chain, status string) ([]*model.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	SetProgress(ctx context.Context, projectID uuid.UUID, progress int) error

	// RecomputeProgress reads the project's items and milestones and writes
	// the value produced by calc onto the project row, all inside one
	// transaction so a concurrent item edit cannot slip between the read
	// and the write.
	RecomputeProgress(ctx context.Context, projectID uuid.UUID, calc func(items []model.ProjectItem, milestones []model.TimelineMilestone) int) (int, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// projectUpdates lists every mutable column so zero values persist.
// Progress is deliberately absent: it is derived, and only SetProgress
// and RecomputeProgress may write it.
func projectUpdates(p *model.Project) map[string]interface{} {
	return map[string]interface{}{
		"name":            p.Name,
		"chain":           p.Chain,
		"location":        p.Location,
		"main_contractor": p.MainContractor,
		"status":          p.Status,
		"start_date":      p.StartDate,
		"end_date":        p.EndDate,
		"notes":           p.Notes,
	}
}

func (r *projectRepo) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", p.ID).
		Updates(projectUpdates(p)).Error
}

func (r *projectRepo) Get(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	var p model.Project
	return &p, r.db.WithContext(ctx).Where("id = ?", projectID).First(&p).Error
}

func (r *projectRepo) List(ctx context.Context, chain, status string) ([]*model.Project, error) {
	q := r.db.WithContext(ctx)
	if chain != "" {
		q = q.Where("chain = ?", chain)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var projects []*model.Project
	return projects, q.Order("created_at ASC, id ASC").Find(&projects).Error
}

func (r *projectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{ID: projectID}).Error
}

func (r *projectRepo) SetProgress(ctx context.Context, projectID uuid.UUID, progress int) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Update("progress", progress).Error
}

func (r *projectRepo) RecomputeProgress(ctx context.Context, projectID uuid.UUID, calc func(items []model.ProjectItem, milestones []model.TimelineMilestone) int) (int, error) {
	var progress int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []model.ProjectItem
		if err := tx.Where("project_id = ?", projectID).Find(&items).Error; err != nil {
			return err
		}

		var milestones []model.TimelineMilestone
		if err := tx.Where("project_id = ?", projectID).Find(&milestones).Error; err != nil {
			return err
		}

		progress = calc(items, milestones)

		return tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			Update("progress", progress).Error
	})
	return progress, err
}
