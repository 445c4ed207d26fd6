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

type ProjectService interface {
	Create(ctx context.Context, actor *model.User, p *model.Project) error
	Update(ctx context.Context, actor *model.User, in UpdateProjectInput) (*model.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error)
	List(ctx context.Context, chain, status string) ([]*model.Project, error)
	Delete(ctx context.Context, actor *model.User, projectID uuid.UUID) error

	// OverrideProgress is the admin escape hatch for the derived progress
	// field; the normal update path never touches it.
	OverrideProgress(ctx context.Context, actor *model.User, projectID uuid.UUID, progress int) error
}

type projectService struct {
	r     repo.ProjectRepo
	audit AuditService
}

func NewProjectService(r repo.ProjectRepo, audit AuditService) ProjectService {
	return &projectService{r: r, audit: audit}
}

func validateProject(p *model.Project) error {
	if p.Chain != model.ChainBK && p.Chain != model.ChainTC {
		return fmt.Errorf("invalid chain: %s", p.Chain)
	}
	if p.Status != "" && !model.IsValidProjectStatus(p.Status) {
		return fmt.Errorf("invalid project status: %s", p.Status)
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, actor *model.User, p *model.Project) error {
	if p.Status == "" {
		p.Status = model.ProjectNotStarted
	}
	if err := validateProject(p); err != nil {
		return err
	}

	if err := s.r.Create(ctx, p); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "project.create", "project", &p.ID, map[string]interface{}{
		"name":  p.Name,
		"chain": p.Chain,
	})
	return nil
}

// UpdateProjectInput is a partial update: nil fields are left untouched.
// Progress has no field here; it is derived and only the aggregator and
// the admin override write it.
type UpdateProjectInput struct {
	ProjectID      uuid.UUID
	Name           *string
	Chain          *string
	Location       *string
	MainContractor *string
	Status         *string
	StartDate      *time.Time
	EndDate        *time.Time
	Notes          *string
}

func (s *projectService) Update(ctx context.Context, actor *model.User, in UpdateProjectInput) (*model.Project, error) {
	if in.ProjectID == uuid.Nil {
		return nil, errors.New("project id is empty")
	}

	p, err := s.r.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Chain != nil {
		p.Chain = *in.Chain
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.MainContractor != nil {
		p.MainContractor = *in.MainContractor
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}

	if err := validateProject(p); err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, p); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "project.update", "project", &p.ID, nil)
	return p, nil
}

func (s *projectService) GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	if projectID == uuid.Nil {
		return nil, errors.New("project id is empty")
	}
	return s.r.Get(ctx, projectID)
}

func (s *projectService) List(ctx context.Context, chain, status string) ([]*model.Project, error) {
	return s.r.List(ctx, chain, status)
}

func (s *projectService) Delete(ctx context.Context, actor *model.User, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return errors.New("project id is empty")
	}
	if err := s.r.Delete(ctx, projectID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "project.delete", "project", &projectID, nil)
	return nil
}

func (s *projectService) OverrideProgress(ctx context.Context, actor *model.User, projectID uuid.UUID, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress out of range: %d", progress)
	}
	if err := s.r.SetProgress(ctx, projectID, progress); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "project.progress_override", "project", &projectID, map[string]interface{}{
		"progress": progress,
	})
	return nil
}
