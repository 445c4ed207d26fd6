package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(ctx context.Context, d *model.Document) error
	Update(ctx context.Context, d *model.Document) error
	Get(ctx context.Context, documentID uuid.UUID) (*model.Document, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, kind string) ([]*model.Document, error)
	Delete(ctx context.Context, projectID uuid.UUID, documentID uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) DocumentRepo {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) Update(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Where(&model.Document{ID: d.ID}).Updates(d).Error
}

func (r *documentRepo) Get(ctx context.Context, documentID uuid.UUID) (*model.Document, error) {
	var d model.Document
	return &d, r.db.WithContext(ctx).Where("id = ?", documentID).First(&d).Error
}

func (r *documentRepo) ListByProject(ctx context.Context, projectID uuid.UUID, kind string) ([]*model.Document, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var docs []*model.Document
	return docs, q.Order("created_at DESC, id DESC").Find(&docs).Error
}

func (r *documentRepo) Delete(ctx context.Context, projectID uuid.UUID, documentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", documentID, projectID).
		Delete(&model.Document{}).Error
}
