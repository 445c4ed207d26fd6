package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

// MockItemService is a mock implementation of ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, actor *model.User, i *model.ProjectItem) (int, error) {
	args := m.Called(ctx, actor, i)
	return args.Int(0), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, actor *model.User, in service.UpdateItemInput) (*model.ProjectItem, int, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*model.ProjectItem), args.Int(1), args.Error(2)
}

func (m *MockItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*model.ProjectItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectItem), args.Error(1)
}

func (m *MockItemService) ListByProject(ctx context.Context, projectID uuid.UUID, scope string) ([]*model.ProjectItem, error) {
	args := m.Called(ctx, projectID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectItem), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, actor *model.User, projectID, itemID uuid.UUID) (int, error) {
	args := m.Called(ctx, actor, projectID, itemID)
	return args.Int(0), args.Error(1)
}

func setupItemRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", &model.User{ID: uuid.New(), Username: "tester", Role: model.RoleContractor})
		c.Next()
	})
	return r
}

func TestItemHandler_UpdateItem(t *testing.T) {
	projectID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name           string
		itemIDParam    string
		body           string
		setup          func(*MockItemService)
		expectedStatus int
	}{
		{
			name:        "explicit zero completion reaches the service",
			itemIDParam: itemID.String(),
			body:        `{"completion_percentage":0}`,
			setup: func(svc *MockItemService) {
				svc.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(in service.UpdateItemInput) bool {
					return in.ItemID == itemID &&
						in.CompletionPercentage != nil && *in.CompletionPercentage == 0 &&
						in.Name == nil && in.Status == nil
				})).Return(&model.ProjectItem{
					ID:        itemID,
					ProjectID: projectID,
					Scope:     model.ScopeContractor,
				}, 10, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "omitted fields stay nil",
			itemIDParam: itemID.String(),
			body:        `{"status":"delivered"}`,
			setup: func(svc *MockItemService) {
				svc.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(in service.UpdateItemInput) bool {
					return in.Status != nil && *in.Status == model.ItemDelivered &&
						in.CompletionPercentage == nil && in.Notes == nil
				})).Return(&model.ProjectItem{ID: itemID, ProjectID: projectID}, 55, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid item ID",
			itemIDParam:    "invalid-uuid",
			body:           `{}`,
			setup:          func(svc *MockItemService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service layer error",
			itemIDParam: itemID.String(),
			body:        `{"completion_percentage":150}`,
			setup: func(svc *MockItemService) {
				svc.On("Update", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, 0, gorm.ErrInvalidData)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockItemService{}
			tt.setup(mockService)

			handler := NewItemHandler(mockService)
			router := setupItemRouter()
			router.PUT("/projects/:project_id/items/:item_id", handler.UpdateItem)

			req := httptest.NewRequest("PUT", "/projects/"+projectID.String()+"/items/"+tt.itemIDParam, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
