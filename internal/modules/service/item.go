package service

import (
	"context"
	"errors"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// ItemService owns project item CRUD. Every mutation is followed by a
// progress recompute for the owning project and an audit entry.
type ItemService interface {
	Create(ctx context.Context, actor *model.User, i *model.ProjectItem) (int, error)
	Update(ctx context.Context, actor *model.User, in UpdateItemInput) (*model.ProjectItem, int, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error)
	Delete(ctx context.Context, actor *model.User, projectID, itemID uuid.UUID) (int, error)
}

// UpdateItemInput is a partial update: nil fields are left untouched,
// non-nil fields are written even when they point at a zero value, so a
// contractor item can be reset to 0% and notes can be cleared.
type UpdateItemInput struct {
	ItemID               uuid.UUID
	Name                 *string
	Category             *string
	Scope                *string
	Status               *string
	CompletionPercentage *int
	CompanyID            *uuid.UUID
	Notes                *string
	LPOStatus            *string
}

type itemService struct {
	r        repo.ItemRepo
	progress ProgressService
	audit    AuditService
}

func NewItemService(r repo.ItemRepo, progress ProgressService, audit AuditService) ItemService {
	return &itemService{r: r, progress: progress, audit: audit}
}

func (s *itemService) Create(ctx context.Context, actor *model.User, i *model.ProjectItem) (int, error) {
	if err := i.Validate(); err != nil {
		return 0, err
	}
	if err := s.r.Create(ctx, i); err != nil {
		return 0, err
	}

	p := s.progress.Recompute(ctx, i.ProjectID)
	s.audit.Record(ctx, actor, "item.create", "project_item", &i.ID, map[string]interface{}{
		"project_id": i.ProjectID.String(),
		"name":       i.Name,
		"scope":      i.Scope,
	})
	return p, nil
}

func (s *itemService) Update(ctx context.Context, actor *model.User, in UpdateItemInput) (*model.ProjectItem, int, error) {
	if in.ItemID == uuid.Nil {
		return nil, 0, errors.New("item id is empty")
	}

	item, err := s.r.Get(ctx, in.ItemID)
	if err != nil {
		return nil, 0, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Scope != nil {
		item.Scope = *in.Scope
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.CompletionPercentage != nil {
		item.CompletionPercentage = *in.CompletionPercentage
	}
	if in.CompanyID != nil {
		item.CompanyID = in.CompanyID
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.LPOStatus != nil {
		item.LPOStatus = *in.LPOStatus
	}

	if err := item.Validate(); err != nil {
		return nil, 0, err
	}
	if err := s.r.Update(ctx, item); err != nil {
		return nil, 0, err
	}

	p := s.progress.Recompute(ctx, item.ProjectID)
	s.audit.Record(ctx, actor, "item.update", "project_item", &item.ID, map[string]interface{}{
		"project_id": item.ProjectID.String(),
	})
	return item, p, nil
}

func (s *itemService) GetByID(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error) {
	if itemID == uuid.Nil {
		return nil, errors.New("item id is empty")
	}
	return s.r.Get(ctx, itemID)
}

func (s *itemService) ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error) {
	return s.r.ListByProject(ctx, projectID, scope)
}

func (s *itemService) Delete(ctx context.Context, actor *model.User, projectID, itemID uuid.UUID) (int, error) {
	if itemID == uuid.Nil {
		return 0, errors.New("item id is empty")
	}
	if err := s.r.Delete(ctx, projectID, itemID); err != nil {
		return 0, err
	}

	// Recompute after the delete so the removed item no longer counts
	// on either side of the average.
	p := s.progress.Recompute(ctx, projectID)
	s.audit.Record(ctx, actor, "item.delete", "project_item", &itemID, map[string]interface{}{
		"project_id": projectID.String(),
	})
	return p, nil
}
