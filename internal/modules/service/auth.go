package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/buildra-io/sitetrack/internal/pkg/utils"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// SyntheticEmail derives the credential identity stored for a username.
// The original auth backend only spoke email+password, so usernames are
// mapped onto {username}@{domain}.
func SyntheticEmail(username, domain string) string {
	return fmt.Sprintf("%s@%s", username, domain)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginOutput, error)
}

type LoginOutput struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
	audit AuditService
}

func NewAuthService(users repo.UserRepo, cfg *config.Config, audit AuditService) AuthService {
	return &authService{users: users, cfg: cfg, audit: audit}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginOutput, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHrs) * time.Hour
	token, err := utils.GenerateJWT(user.ID, user.Role, s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.audit.Record(ctx, user, "auth.login", "user", &user.ID, nil)

	return &LoginOutput{Token: token, User: user}, nil
}
