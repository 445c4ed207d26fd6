package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

// MockItemRepo is a mock implementation of repo.ItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, i *model.ProjectItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockItemRepo) Update(ctx context.Context, i *model.ProjectItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockItemRepo) Get(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectItem), args.Error(1)
}

func (m *MockItemRepo) ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error) {
	args := m.Called(ctx, projectID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectItem), args.Error(1)
}

func (m *MockItemRepo) Delete(ctx context.Context, projectID uuid.UUID, itemID uuid.UUID) error {
	args := m.Called(ctx, projectID, itemID)
	return args.Error(0)
}

// MockProgressService is a mock implementation of ProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) Recompute(ctx context.Context, projectID uuid.UUID) int {
	args := m.Called(ctx, projectID)
	return args.Int(0)
}

func (m *MockProgressService) Cached(ctx context.Context, projectID uuid.UUID) (int, bool) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Bool(1)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestItemService_Update_ZeroCompletionPersists(t *testing.T) {
	projectID := uuid.New()
	itemID := uuid.New()
	stored := func() *model.ProjectItem {
		return &model.ProjectItem{
			ID:                   itemID,
			ProjectID:            projectID,
			Name:                 "Flooring",
			Scope:                model.ScopeContractor,
			Status:               model.ItemNotOrdered,
			CompletionPercentage: 50,
			Notes:                "rework pending",
			LPOStatus:            model.LPONA,
		}
	}

	items := &MockItemRepo{}
	progress := &MockProgressService{}
	audit := &MockAuditService{}

	items.On("Get", mock.Anything, itemID).Return(stored(), nil)
	items.On("Update", mock.Anything, mock.MatchedBy(func(i *model.ProjectItem) bool {
		// The reset to 0 must survive the merge; untouched fields must not.
		return i.CompletionPercentage == 0 && i.Notes == "rework pending" && i.Scope == model.ScopeContractor
	})).Return(nil)
	progress.On("Recompute", mock.Anything, projectID).Return(10)
	audit.On("Record", mock.Anything, mock.Anything, "item.update", "project_item", &itemID, mock.Anything).Return()

	svc := NewItemService(items, progress, audit)
	item, p, err := svc.Update(context.Background(), nil, UpdateItemInput{
		ItemID:               itemID,
		CompletionPercentage: intPtr(0),
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, p)
	if assert.NotNil(t, item) {
		assert.Equal(t, 0, item.CompletionPercentage)
	}
	items.AssertExpectations(t)
	progress.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestItemService_Update_ClearsNotes(t *testing.T) {
	projectID := uuid.New()
	itemID := uuid.New()

	items := &MockItemRepo{}
	progress := &MockProgressService{}
	audit := &MockAuditService{}

	items.On("Get", mock.Anything, itemID).Return(&model.ProjectItem{
		ID:        itemID,
		ProjectID: projectID,
		Name:      "Signage",
		Scope:     model.ScopeOwner,
		Status:    model.ItemOrdered,
		Notes:     "old note",
		LPOStatus: model.LPOPending,
	}, nil)
	items.On("Update", mock.Anything, mock.MatchedBy(func(i *model.ProjectItem) bool {
		return i.Notes == "" && i.Status == model.ItemOrdered
	})).Return(nil)
	progress.On("Recompute", mock.Anything, projectID).Return(30)
	audit.On("Record", mock.Anything, mock.Anything, "item.update", "project_item", &itemID, mock.Anything).Return()

	svc := NewItemService(items, progress, audit)
	_, _, err := svc.Update(context.Background(), nil, UpdateItemInput{
		ItemID: itemID,
		Notes:  strPtr(""),
	})

	assert.NoError(t, err)
	items.AssertExpectations(t)
}

func TestItemService_Update_RejectsInvalidMerge(t *testing.T) {
	itemID := uuid.New()

	items := &MockItemRepo{}
	items.On("Get", mock.Anything, itemID).Return(&model.ProjectItem{
		ID:        itemID,
		ProjectID: uuid.New(),
		Scope:     model.ScopeContractor,
		Status:    model.ItemNotOrdered,
		LPOStatus: model.LPONA,
	}, nil)

	svc := NewItemService(items, &MockProgressService{}, &MockAuditService{})
	_, _, err := svc.Update(context.Background(), nil, UpdateItemInput{
		ItemID:               itemID,
		CompletionPercentage: intPtr(150),
	})

	assert.Error(t, err)
	items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
