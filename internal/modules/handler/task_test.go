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

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, actor *model.User, t *model.Task) error {
	args := m.Called(ctx, actor, t)
	return args.Error(0)
}

func (m *MockTaskService) Update(ctx context.Context, actor *model.User, in service.UpdateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Board(ctx context.Context, projectID uuid.UUID) (*service.BoardOutput, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BoardOutput), args.Error(1)
}

func (m *MockTaskService) Move(ctx context.Context, actor *model.User, in service.MoveTaskInput) (*model.Task, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, actor *model.User, projectID, taskID uuid.UUID) error {
	args := m.Called(ctx, actor, projectID, taskID)
	return args.Error(0)
}

func setupTaskRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", &model.User{ID: uuid.New(), Username: "tester", Role: model.RoleCoordinator})
		c.Next()
	})
	return r
}

func TestTaskHandler_CreateTask(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		projectIDParam string
		requestBody    CreateTaskReq
		setup          func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:           "successful task creation",
			projectIDParam: projectID.String(),
			requestBody:    CreateTaskReq{Title: "Order signage", Status: "in progress"},
			setup: func(svc *MockTaskService) {
				svc.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
					return task.ProjectID == projectID && task.Title == "Order signage"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			projectIDParam: projectID.String(),
			requestBody:    CreateTaskReq{},
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid project ID",
			projectIDParam: "invalid-uuid",
			requestBody:    CreateTaskReq{Title: "x"},
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service layer error",
			projectIDParam: projectID.String(),
			requestBody:    CreateTaskReq{Title: "x", Priority: "urgent"},
			setup: func(svc *MockTaskService) {
				svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("invalid task priority: urgent"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{}
			tt.setup(mockService)

			handler := NewTaskHandler(mockService)
			router := setupTaskRouter()
			router.POST("/projects/:project_id/tasks", handler.CreateTask)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects/"+tt.projectIDParam+"/tasks", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_GetBoard(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		projectIDParam string
		setup          func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:           "board with all columns",
			projectIDParam: projectID.String(),
			setup: func(svc *MockTaskService) {
				out := &service.BoardOutput{Columns: map[string][]*model.Task{
					model.TaskTodo:       {{Title: "a"}},
					model.TaskInProgress: {},
					model.TaskReview:     {},
					model.TaskDone:       {{Title: "b"}},
				}}
				svc.On("Board", mock.Anything, projectID).Return(out, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid project ID",
			projectIDParam: "nope",
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service layer error",
			projectIDParam: projectID.String(),
			setup: func(svc *MockTaskService) {
				svc.On("Board", mock.Anything, projectID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{}
			tt.setup(mockService)

			handler := NewTaskHandler(mockService)
			router := setupTaskRouter()
			router.GET("/projects/:project_id/tasks", handler.GetBoard)

			req := httptest.NewRequest("GET", "/projects/"+tt.projectIDParam+"/tasks", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_MoveTask(t *testing.T) {
	projectID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name           string
		taskIDParam    string
		requestBody    MoveTaskReq
		setup          func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:        "successful move",
			taskIDParam: taskID.String(),
			requestBody: MoveTaskReq{ToStatus: "review", ToIndex: 1},
			setup: func(svc *MockTaskService) {
				moved := &model.Task{ID: taskID, ProjectID: projectID, Status: model.TaskReview, OrderIndex: 1}
				svc.On("Move", mock.Anything, mock.Anything, service.MoveTaskInput{
					ProjectID: projectID,
					TaskID:    taskID,
					ToStatus:  "review",
					ToIndex:   1,
				}).Return(moved, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing destination status",
			taskIDParam:    taskID.String(),
			requestBody:    MoveTaskReq{},
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid task ID",
			taskIDParam:    "invalid-uuid",
			requestBody:    MoveTaskReq{ToStatus: "done"},
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service layer error",
			taskIDParam: taskID.String(),
			requestBody: MoveTaskReq{ToStatus: "done"},
			setup: func(svc *MockTaskService) {
				svc.On("Move", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("task not found"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{}
			tt.setup(mockService)

			handler := NewTaskHandler(mockService)
			router := setupTaskRouter()
			router.POST("/projects/:project_id/tasks/:task_id/move", handler.MoveTask)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects/"+projectID.String()+"/tasks/"+tt.taskIDParam+"/move", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	projectID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name           string
		taskIDParam    string
		setup          func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:        "successful deletion",
			taskIDParam: taskID.String(),
			setup: func(svc *MockTaskService) {
				svc.On("Delete", mock.Anything, mock.Anything, projectID, taskID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid task ID",
			taskIDParam:    "invalid-uuid",
			setup:          func(svc *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service layer error",
			taskIDParam: taskID.String(),
			setup: func(svc *MockTaskService) {
				svc.On("Delete", mock.Anything, mock.Anything, projectID, taskID).Return(errors.New("deletion failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{}
			tt.setup(mockService)

			handler := NewTaskHandler(mockService)
			router := setupTaskRouter()
			router.DELETE("/projects/:project_id/tasks/:task_id", handler.DeleteTask)

			req := httptest.NewRequest("DELETE", "/projects/"+projectID.String()+"/tasks/"+tt.taskIDParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
