package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepo interface {
	Create(ctx context.Context, i *model.ProjectItem) error
	Update(ctx context.Context, i *model.ProjectItem) error
	Get(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error)
	Delete(ctx context.Context, projectID uuid.UUID, itemID uuid.UUID) error
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) ItemRepo {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, i *model.ProjectItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

// itemUpdates lists every mutable column explicitly. Updates with a map
// writes zero values too, so resetting completion_percentage to 0 or
// clearing notes actually persists.
func itemUpdates(i *model.ProjectItem) map[string]interface{} {
	return map[string]interface{}{
		"name":                  i.Name,
		"category":              i.Category,
		"scope":                 i.Scope,
		"status":                i.Status,
		"completion_percentage": i.CompletionPercentage,
		"company_id":            i.CompanyID,
		"notes":                 i.Notes,
		"lpo_status":            i.LPOStatus,
	}
}

func (r *itemRepo) Update(ctx context.Context, i *model.ProjectItem) error {
	return r.db.WithContext(ctx).Model(&model.ProjectItem{}).
		Where("id = ?", i.ID).
		Updates(itemUpdates(i)).Error
}

func (r *itemRepo) Get(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error) {
	var i model.ProjectItem
	return &i, r.db.WithContext(ctx).Preload("Company").Where("id = ?", itemID).First(&i).Error
}

func (r *itemRepo) ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if scope != "" {
		q = q.Where("scope = ?", scope)
	}

	var items []*model.ProjectItem
	return items, q.Preload("Company").Order("created_at ASC, id ASC").Find(&items).Error
}

func (r *itemRepo) Delete(ctx context.Context, projectID uuid.UUID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", itemID, projectID).
		Delete(&model.ProjectItem{}).Error
}
