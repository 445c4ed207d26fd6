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

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name           string     `json:"name" binding:"required" example:"BK Marina Mall"`
	Chain          string     `json:"chain" binding:"required" example:"BK"`
	Location       string     `json:"location" example:"Marina Mall, 2nd floor"`
	MainContractor string     `json:"main_contractor"`
	Status         string     `json:"status" example:"not_started"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Notes          string     `json:"notes"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a fit-out project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			body	body	CreateProjectReq	true	"Project"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p := &model.Project{
		Name:           req.Name,
		Chain:          req.Chain,
		Location:       req.Location,
		MainContractor: req.MainContractor,
		Status:         req.Status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Notes:          req.Notes,
	}
	if err := h.svc.Create(c.Request.Context(), currentUser(c), p); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

type ListProjectsReq struct {
	Chain  string `form:"chain" json:"chain" example:"BK"`
	Status string `form:"status" json:"status" example:"in_progress"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List projects, optionally filtered by chain and status
//	@Tags			project
//	@Produce		json
//	@Param			chain	query	string	false	"Chain filter (BK or TC)"
//	@Param			status	query	string	false	"Status filter"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	projects, err := h.svc.List(c.Request.Context(), req.Chain, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get a project by its UUID
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// UpdateProjectReq fields are pointers so an absent field leaves the
// stored value alone while an explicit empty string clears it.
type UpdateProjectReq struct {
	Name           *string    `json:"name"`
	Chain          *string    `json:"chain"`
	Location       *string    `json:"location"`
	MainContractor *string    `json:"main_contractor"`
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Notes          *string    `json:"notes"`
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Update project fields. Progress is derived and cannot be set here.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			body		body	UpdateProjectReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), currentUser(c), service.UpdateProjectInput{
		ProjectID:      projectID,
		Name:           req.Name,
		Chain:          req.Chain,
		Location:       req.Location,
		MainContractor: req.MainContractor,
		Status:         req.Status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Notes:          req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project and everything under it
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), currentUser(c), projectID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

type OverrideProgressReq struct {
	Progress *int `json:"progress" binding:"required" example:"42"`
}

// OverrideProgress godoc
//
//	@Summary		Override progress
//	@Description	Set the project progress directly, bypassing the aggregator
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			body		body	OverrideProgressReq	true	"Progress 0-100"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id}/progress [put]
func (h *ProjectHandler) OverrideProgress(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := OverrideProgressReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.OverrideProgress(c.Request.Context(), currentUser(c), projectID, *req.Progress); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
