package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title       string     `json:"title" binding:"required" example:"Order signage"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" example:"medium"`
	Status      string     `json:"status" example:"todo"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Add a task to the project board. It is appended to the end of its column.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			body		body	CreateTaskReq	true	"Task"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/projects/{project_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t := &model.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}
	if err := h.svc.Create(c.Request.Context(), currentUser(c), t); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: t})
}

// GetBoard godoc
//
//	@Summary		Get board
//	@Description	Get the project's Kanban board grouped by column
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.BoardOutput}
//	@Router			/projects/{project_id}/tasks [get]
func (h *TaskHandler) GetBoard(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	board, err := h.svc.Board(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: board})
}

// UpdateTaskReq fields are pointers so an absent field leaves the stored
// value alone. A status change moves the task to the end of its new
// column.
type UpdateTaskReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Update task fields. Use the move endpoint to change column position.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string			true	"Task ID"		Format(uuid)
//	@Param			body		body	UpdateTaskReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/projects/{project_id}/tasks/{task_id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), currentUser(c), service.UpdateTaskInput{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: t})
}

type MoveTaskReq struct {
	ToStatus string `json:"to_status" binding:"required" example:"in_progress"`
	ToIndex  int    `json:"to_index" example:"0"`
}

// MoveTask godoc
//
//	@Summary		Move task
//	@Description	Move a task to a column position. Both affected columns are reindexed.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string		true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string		true	"Task ID"		Format(uuid)
//	@Param			body		body	MoveTaskReq	true	"Destination"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/projects/{project_id}/tasks/{task_id}/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := MoveTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	moved, err := h.svc.Move(c.Request.Context(), currentUser(c), service.MoveTaskInput{
		ProjectID: projectID,
		TaskID:    taskID,
		ToStatus:  req.ToStatus,
		ToIndex:   req.ToIndex,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: moved})
}

// DeleteTask godoc
//
//	@Summary		Delete task
//	@Description	Delete a task from the board
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string	true	"Task ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id}/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), currentUser(c), projectID, taskID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
