package service

import (
	"context"
	"time"

	"github.com/buildra-io/sitetrack/internal/infra/metrics"
	"github.com/buildra-io/sitetrack/internal/infra/queue"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/buildra-io/sitetrack/internal/pkg/paging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AuditService interface {
	// Record appends an audit entry. It is best effort: a failed write
	// logs an error but never fails the mutation it describes.
	Record(ctx context.Context, actor *model.User, action, entityType string, entityID *uuid.UUID, details map[string]interface{})
	List(ctx context.Context, in ListAuditLogsInput) (*ListAuditLogsOutput, error)
}

type auditService struct {
	r   repo.AuditLogRepo
	pub *queue.Publisher
	log *zap.Logger
}

func NewAuditService(r repo.AuditLogRepo, pub *queue.Publisher, log *zap.Logger) AuditService {
	return &auditService{r: r, pub: pub, log: log}
}

func (s *auditService) Record(ctx context.Context, actor *model.User, action, entityType string, entityID *uuid.UUID, details map[string]interface{}) {
	entry := &model.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    datatypes.JSONMap(details),
	}
	if actor != nil {
		entry.UserID = &actor.ID
		entry.Username = actor.Username
	}

	if err := s.r.Create(ctx, entry); err != nil {
		s.log.Sugar().Errorw("audit write failed", "action", action, "entity_type", entityType, "err", err)
		return
	}

	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, entry); err != nil {
			metrics.IncrementAuditPublish("failed")
			s.log.Sugar().Warnw("audit publish failed", "action", action, "err", err)
		} else {
			metrics.IncrementAuditPublish("success")
		}
	}
}

type ListAuditLogsInput struct {
	Limit    int    `json:"limit"`
	Cursor   string `json:"cursor"`
	TimeDesc bool   `json:"time_desc"`
}

type ListAuditLogsOutput struct {
	Items      []*model.AuditLog `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
	HasMore    bool              `json:"has_more"`
}

// defaultAuditPageSize is used when the caller supplies no usable limit.
const defaultAuditPageSize = 20

func (s *auditService) List(ctx context.Context, in ListAuditLogsInput) (*ListAuditLogsOutput, error) {
	if in.Limit <= 0 {
		in.Limit = defaultAuditPageSize
	}

	var afterT time.Time
	var afterID uuid.UUID
	var err error
	if in.Cursor != "" {
		afterT, afterID, err = paging.DecodeCursor(in.Cursor)
		if err != nil {
			return nil, err
		}
	}

	// Query limit+1 is used to determine has_more
	entries, err := s.r.ListWithCursor(ctx, afterT, afterID, in.Limit+1, in.TimeDesc)
	if err != nil {
		return nil, err
	}

	out := &ListAuditLogsOutput{
		Items:   entries,
		HasMore: false,
	}
	if len(entries) > in.Limit {
		out.HasMore = true
		out.Items = entries[:in.Limit]
		last := out.Items[len(out.Items)-1]
		out.NextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}

	return out, nil
}
