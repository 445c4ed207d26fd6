package service

import (
	"context"
	"errors"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

type CompanyService interface {
	Create(ctx context.Context, actor *model.User, c *model.Company) error
	Update(ctx context.Context, actor *model.User, c *model.Company) error
	List(ctx context.Context) ([]*model.Company, error)
	Delete(ctx context.Context, actor *model.User, companyID uuid.UUID) error
}

type companyService struct {
	r     repo.CompanyRepo
	audit AuditService
}

func NewCompanyService(r repo.CompanyRepo, audit AuditService) CompanyService {
	return &companyService{r: r, audit: audit}
}

func (s *companyService) Create(ctx context.Context, actor *model.User, c *model.Company) error {
	if c.Name == "" {
		return errors.New("company name is empty")
	}
	if err := s.r.Create(ctx, c); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "company.create", "company", &c.ID, map[string]interface{}{
		"name": c.Name,
	})
	return nil
}

func (s *companyService) Update(ctx context.Context, actor *model.User, c *model.Company) error {
	if c.ID == uuid.Nil {
		return errors.New("company id is empty")
	}
	if err := s.r.Update(ctx, c); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "company.update", "company", &c.ID, nil)
	return nil
}

func (s *companyService) List(ctx context.Context) ([]*model.Company, error) {
	return s.r.List(ctx)
}

func (s *companyService) Delete(ctx context.Context, actor *model.User, companyID uuid.UUID) error {
	if companyID == uuid.Nil {
		return errors.New("company id is empty")
	}
	if err := s.r.Delete(ctx, companyID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "company.delete", "company", &companyID, nil)
	return nil
}
