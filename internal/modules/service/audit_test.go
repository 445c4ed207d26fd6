package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

// MockAuditLogRepo is a mock implementation of repo.AuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, e *model.AuditLog) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockAuditLogRepo) ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.AuditLog, error) {
	args := m.Called(ctx, afterCreatedAt, afterID, limit, timeDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditLog), args.Error(1)
}

func auditEntries(n int) []*model.AuditLog {
	entries := make([]*model.AuditLog, n)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range entries {
		entries[i] = &model.AuditLog{
			ID:        uuid.New(),
			Action:    "project.update",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return entries
}

func TestAuditService_List_DefaultsLimit(t *testing.T) {
	r := &MockAuditLogRepo{}
	// A zero limit must be floored to the default page size, not passed
	// through where a single row would slice out of bounds.
	r.On("ListWithCursor", mock.Anything, mock.Anything, mock.Anything, defaultAuditPageSize+1, false).
		Return(auditEntries(1), nil)

	svc := NewAuditService(r, nil, zap.NewNop())
	out, err := svc.List(context.Background(), ListAuditLogsInput{Limit: 0})

	assert.NoError(t, err)
	if assert.NotNil(t, out) {
		assert.Len(t, out.Items, 1)
		assert.False(t, out.HasMore)
		assert.Empty(t, out.NextCursor)
	}
	r.AssertExpectations(t)
}

func TestAuditService_List_PagesWithCursor(t *testing.T) {
	r := &MockAuditLogRepo{}
	r.On("ListWithCursor", mock.Anything, mock.Anything, mock.Anything, 3, false).
		Return(auditEntries(3), nil)

	svc := NewAuditService(r, nil, zap.NewNop())
	out, err := svc.List(context.Background(), ListAuditLogsInput{Limit: 2})

	assert.NoError(t, err)
	if assert.NotNil(t, out) {
		assert.Len(t, out.Items, 2)
		assert.True(t, out.HasMore)
		assert.NotEmpty(t, out.NextCursor)
	}
	r.AssertExpectations(t)
}
