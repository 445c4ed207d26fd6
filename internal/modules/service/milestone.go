package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// MilestoneService mirrors ItemService: thin CRUD plus the unconditional
// progress recompute and audit entry after every mutation.
type MilestoneService interface {
	Create(ctx context.Context, actor *model.User, m *model.TimelineMilestone) (int, error)
	Update(ctx context.Context, actor *model.User, in UpdateMilestoneInput) (*model.TimelineMilestone, int, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TimelineMilestone, error)
	Delete(ctx context.Context, actor *model.User, projectID, milestoneID uuid.UUID) (int, error)
}

// UpdateMilestoneInput is a partial update: nil fields are left untouched.
type UpdateMilestoneInput struct {
	MilestoneID uuid.UUID
	Name        *string
	PlannedDate *time.Time
	ActualDate  *time.Time
	Status      *string
}

type milestoneService struct {
	r        repo.MilestoneRepo
	progress ProgressService
	audit    AuditService
}

func NewMilestoneService(r repo.MilestoneRepo, progress ProgressService, audit AuditService) MilestoneService {
	return &milestoneService{r: r, progress: progress, audit: audit}
}

func (s *milestoneService) Create(ctx context.Context, actor *model.User, m *model.TimelineMilestone) (int, error) {
	if !model.IsValidMilestoneStatus(m.Status) {
		return 0, fmt.Errorf("invalid milestone status: %s", m.Status)
	}
	if err := s.r.Create(ctx, m); err != nil {
		return 0, err
	}

	p := s.progress.Recompute(ctx, m.ProjectID)
	s.audit.Record(ctx, actor, "milestone.create", "timeline_milestone", &m.ID, map[string]interface{}{
		"project_id": m.ProjectID.String(),
		"name":       m.Name,
	})
	return p, nil
}

func (s *milestoneService) Update(ctx context.Context, actor *model.User, in UpdateMilestoneInput) (*model.TimelineMilestone, int, error) {
	if in.MilestoneID == uuid.Nil {
		return nil, 0, errors.New("milestone id is empty")
	}

	m, err := s.r.Get(ctx, in.MilestoneID)
	if err != nil {
		return nil, 0, err
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.PlannedDate != nil {
		m.PlannedDate = in.PlannedDate
	}
	if in.ActualDate != nil {
		m.ActualDate = in.ActualDate
	}
	if in.Status != nil {
		m.Status = *in.Status
	}

	if !model.IsValidMilestoneStatus(m.Status) {
		return nil, 0, fmt.Errorf("invalid milestone status: %s", m.Status)
	}
	if err := s.r.Update(ctx, m); err != nil {
		return nil, 0, err
	}

	p := s.progress.Recompute(ctx, m.ProjectID)
	s.audit.Record(ctx, actor, "milestone.update", "timeline_milestone", &m.ID, map[string]interface{}{
		"project_id": m.ProjectID.String(),
	})
	return m, p, nil
}

func (s *milestoneService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TimelineMilestone, error) {
	return s.r.ListByProject(ctx, projectID)
}

func (s *milestoneService) Delete(ctx context.Context, actor *model.User, projectID, milestoneID uuid.UUID) (int, error) {
	if milestoneID == uuid.Nil {
		return 0, errors.New("milestone id is empty")
	}
	if err := s.r.Delete(ctx, projectID, milestoneID); err != nil {
		return 0, err
	}

	p := s.progress.Recompute(ctx, projectID)
	s.audit.Record(ctx, actor, "milestone.delete", "timeline_milestone", &milestoneID, map[string]interface{}{
		"project_id": projectID.String(),
	})
	return p, nil
}
