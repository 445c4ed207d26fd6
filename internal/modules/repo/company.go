package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepo interface {
	Create(ctx context.Context, c *model.Company) error
	Update(ctx context.Context, c *model.Company) error
	Get(ctx context.Context, companyID uuid.UUID) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
	Delete(ctx context.Context, companyID uuid.UUID) error
}

type companyRepo struct{ db *gorm.DB }

func NewCompanyRepo(db *gorm.DB) CompanyRepo {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// companyUpdates lists every mutable column so clearing a contact field
// actually persists.
func companyUpdates(c *model.Company) map[string]interface{} {
	return map[string]interface{}{
		"name":         c.Name,
		"contact_name": c.ContactName,
		"phone":        c.Phone,
		"email":        c.Email,
		"notes":        c.Notes,
	}
}

func (r *companyRepo) Update(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", c.ID).
		Updates(companyUpdates(c)).Error
}

func (r *companyRepo) Get(ctx context.Context, companyID uuid.UUID) (*model.Company, error) {
	var c model.Company
	return &c, r.db.WithContext(ctx).Where("id = ?", companyID).First(&c).Error
}

func (r *companyRepo) List(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	return companies, r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
}

func (r *companyRepo) Delete(ctx context.Context, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Company{ID: companyID}).Error
}
