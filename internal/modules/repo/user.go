package repo

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Get(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Where(&model.User{ID: u.ID}).Updates(u).Error
}

func (r *userRepo) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var u model.User
	return &u, r.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	return &u, r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
}

// SetActive writes the flag directly; Updates with a struct would skip
// the false value.
func (r *userRepo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_active", active).Error
}

func (r *userRepo) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	return users, r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
}
