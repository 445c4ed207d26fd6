package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/buildra-io/sitetrack/internal/pkg/utils"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, actor *model.User, in CreateUserInput) (*CreateUserOutput, error)
	Update(ctx context.Context, actor *model.User, in UpdateUserInput) error
	GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

type userService struct {
	r     repo.UserRepo
	cfg   *config.Config
	audit AuditService
}

func NewUserService(r repo.UserRepo, cfg *config.Config, audit AuditService) UserService {
	return &userService{r: r, cfg: cfg, audit: audit}
}

type CreateUserInput struct {
	Username string
	Password string
	Role     string
	FullName string
}

type CreateUserOutput struct {
	User *model.User `json:"user"`

	// InitialPassword is set only when the account was created without a
	// password and one was generated for it.
	InitialPassword string `json:"initial_password,omitempty"`
}

func (s *userService) Create(ctx context.Context, actor *model.User, in CreateUserInput) (*CreateUserOutput, error) {
	if in.Username == "" {
		return nil, errors.New("username is empty")
	}
	if !model.IsValidRole(in.Role) {
		return nil, fmt.Errorf("invalid role: %s", in.Role)
	}

	out := &CreateUserOutput{}
	password := in.Password
	if password == "" {
		generated, err := utils.GenerateKey("", 12)
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		password = generated
		out.InitialPassword = generated
	}

	hash, err := utils.HashPassword(password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		Email:        SyntheticEmail(in.Username, s.cfg.Auth.EmailDomain),
		PasswordHash: hash,
		Role:         in.Role,
		FullName:     in.FullName,
		IsActive:     true,
	}
	if err := s.r.Create(ctx, user); err != nil {
		return nil, err
	}
	out.User = user

	s.audit.Record(ctx, actor, "user.create", "user", &user.ID, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	})
	return out, nil
}

type UpdateUserInput struct {
	UserID   uuid.UUID
	Role     string
	FullName string
	Password string
	IsActive *bool
}

func (s *userService) Update(ctx context.Context, actor *model.User, in UpdateUserInput) error {
	if in.UserID == uuid.Nil {
		return errors.New("user id is empty")
	}
	if in.Role != "" && !model.IsValidRole(in.Role) {
		return fmt.Errorf("invalid role: %s", in.Role)
	}

	user, err := s.r.Get(ctx, in.UserID)
	if err != nil {
		return err
	}

	if in.Role != "" {
		user.Role = in.Role
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password, s.cfg.Auth.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.r.Update(ctx, user); err != nil {
		return err
	}
	if in.IsActive != nil {
		if err := s.r.SetActive(ctx, user.ID, *in.IsActive); err != nil {
			return err
		}
	}

	s.audit.Record(ctx, actor, "user.update", "user", &user.ID, nil)
	return nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if userID == uuid.Nil {
		return nil, errors.New("user id is empty")
	}
	return s.r.Get(ctx, userID)
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.r.List(ctx)
}
