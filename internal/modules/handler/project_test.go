package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, actor *model.User, p *model.Project) error {
	args := m.Called(ctx, actor, p)
	return args.Error(0)
}

func (m *MockProjectService) Update(ctx context.Context, actor *model.User, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, chain, status string) ([]*model.Project, error) {
	args := m.Called(ctx, chain, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actor *model.User, projectID uuid.UUID) error {
	args := m.Called(ctx, actor, projectID)
	return args.Error(0)
}

func (m *MockProjectService) OverrideProgress(ctx context.Context, actor *model.User, projectID uuid.UUID, progress int) error {
	args := m.Called(ctx, actor, projectID, progress)
	return args.Error(0)
}

func setupProjectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", &model.User{ID: uuid.New(), Username: "admin", Role: model.RoleAdmin})
		c.Next()
	})
	return r
}

func TestProjectHandler_CreateProject(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    CreateProjectReq
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:        "successful project creation",
			requestBody: CreateProjectReq{Name: "BK Marina Mall", Chain: "BK"},
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
					return p.Name == "BK Marina Mall" && p.Chain == model.ChainBK
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing required fields",
			requestBody:    CreateProjectReq{Name: "no chain"},
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "invalid chain rejected by service",
			requestBody: CreateProjectReq{Name: "x", Chain: "KFC"},
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("invalid chain: KFC"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService)
			router := setupProjectRouter()
			router.POST("/projects", handler.CreateProject)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_ListProjects(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:  "unfiltered list",
			query: "",
			setup: func(svc *MockProjectService) {
				svc.On("List", mock.Anything, "", "").Return([]*model.Project{
					{ID: uuid.New(), Name: "a", Chain: model.ChainBK},
					{ID: uuid.New(), Name: "b", Chain: model.ChainTC},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "filtered by chain and status",
			query: "?chain=TC&status=in_progress",
			setup: func(svc *MockProjectService) {
				svc.On("List", mock.Anything, "TC", "in_progress").Return([]*model.Project{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "service layer error",
			query: "",
			setup: func(svc *MockProjectService) {
				svc.On("List", mock.Anything, "", "").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService)
			router := setupProjectRouter()
			router.GET("/projects", handler.ListProjects)

			req := httptest.NewRequest("GET", "/projects"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_OverrideProgress(t *testing.T) {
	projectID := uuid.New()
	progress := func(v int) *int { return &v }

	tests := []struct {
		name           string
		projectIDParam string
		requestBody    OverrideProgressReq
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:           "successful override",
			projectIDParam: projectID.String(),
			requestBody:    OverrideProgressReq{Progress: progress(42)},
			setup: func(svc *MockProjectService) {
				svc.On("OverrideProgress", mock.Anything, mock.Anything, projectID, 42).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero progress is a valid value",
			projectIDParam: projectID.String(),
			requestBody:    OverrideProgressReq{Progress: progress(0)},
			setup: func(svc *MockProjectService) {
				svc.On("OverrideProgress", mock.Anything, mock.Anything, projectID, 0).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "out of range rejected by service",
			projectIDParam: projectID.String(),
			requestBody:    OverrideProgressReq{Progress: progress(150)},
			setup: func(svc *MockProjectService) {
				svc.On("OverrideProgress", mock.Anything, mock.Anything, projectID, 150).Return(errors.New("progress out of range: 150"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid project ID",
			projectIDParam: "invalid-uuid",
			requestBody:    OverrideProgressReq{Progress: progress(10)},
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService)
			router := setupProjectRouter()
			router.PUT("/projects/:project_id/progress", handler.OverrideProgress)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/projects/"+tt.projectIDParam+"/progress", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
