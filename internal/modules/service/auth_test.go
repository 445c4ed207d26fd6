package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/pkg/utils"
)

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actor *model.User, action, entityType string, entityID *uuid.UUID, details map[string]interface{}) {
	m.Called(ctx, actor, action, entityType, entityID, details)
}

func (m *MockAuditService) List(ctx context.Context, in ListAuditLogsInput) (*ListAuditLogsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListAuditLogsOutput), args.Error(1)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthCfg{
			JWTSecret:   "test-secret",
			TokenTTLHrs: 1,
			EmailDomain: "sitetrack.local",
			BcryptCost:  4,
		},
	}
}

func activeUser(t *testing.T, username, password string) *model.User {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	assert.NoError(t, err)
	return &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        SyntheticEmail(username, "sitetrack.local"),
		PasswordHash: hash,
		Role:         model.RoleCoordinator,
		IsActive:     true,
	}
}

func TestSyntheticEmail(t *testing.T) {
	assert.Equal(t, "ali@sitetrack.local", SyntheticEmail("ali", "sitetrack.local"))
}

func TestAuthService_Login(t *testing.T) {
	user := activeUser(t, "ali", "correct-horse")

	tests := []struct {
		name        string
		username    string
		password    string
		setup       func(*MockUserRepo, *MockAuditService)
		expectErr   error
		expectToken bool
	}{
		{
			name:     "successful login",
			username: "ali",
			password: "correct-horse",
			setup: func(users *MockUserRepo, audit *MockAuditService) {
				users.On("GetByUsername", mock.Anything, "ali").Return(user, nil)
				audit.On("Record", mock.Anything, user, "auth.login", "user", &user.ID, mock.Anything).Return()
			},
			expectToken: true,
		},
		{
			name:     "wrong password",
			username: "ali",
			password: "battery-staple",
			setup: func(users *MockUserRepo, audit *MockAuditService) {
				users.On("GetByUsername", mock.Anything, "ali").Return(user, nil)
			},
			expectErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "whatever",
			setup: func(users *MockUserRepo, audit *MockAuditService) {
				users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectErr: ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			username: "former",
			password: "correct-horse",
			setup: func(users *MockUserRepo, audit *MockAuditService) {
				u := activeUser(t, "former", "correct-horse")
				u.IsActive = false
				users.On("GetByUsername", mock.Anything, "former").Return(u, nil)
			},
			expectErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			audit := &MockAuditService{}
			tt.setup(users, audit)

			svc := NewAuthService(users, testAuthConfig(), audit)
			out, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, out)
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, out) {
					assert.NotEmpty(t, out.Token)
					assert.Equal(t, tt.username, out.User.Username)

					gotID, gotRole, perr := utils.ParseJWT(out.Token, "test-secret")
					assert.NoError(t, perr)
					assert.Equal(t, out.User.ID, gotID)
					assert.Equal(t, out.User.Role, gotRole)
				}
			}
			users.AssertExpectations(t)
			audit.AssertExpectations(t)
		})
	}
}
