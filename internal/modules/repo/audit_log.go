package repo

import (
	"context"
	"time"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepo interface {
	Create(ctx context.Context, e *model.AuditLog) error
	ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.AuditLog, error)
}

type auditLogRepo struct{ db *gorm.DB }

func NewAuditLogRepo(db *gorm.DB) AuditLogRepo {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, e *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *auditLogRepo) ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.AuditLog, error) {
	q := r.db.WithContext(ctx)

	// Composite (created_at, id) cursor; an empty cursor starts from the top.
	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		comparisonOp := ">"
		if timeDesc {
			comparisonOp = "<"
		}
		q = q.Where(
			"(created_at "+comparisonOp+" ?) OR (created_at = ? AND id "+comparisonOp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "created_at ASC, id ASC"
	if timeDesc {
		orderBy = "created_at DESC, id DESC"
	}

	var entries []*model.AuditLog
	return entries, q.Order(orderBy).Limit(limit).Find(&entries).Error
}
