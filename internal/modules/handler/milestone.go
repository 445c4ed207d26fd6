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

type MilestoneHandler struct {
	svc service.MilestoneService
}

func NewMilestoneHandler(s service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{svc: s}
}

type MilestoneWithProgress struct {
	Milestone *model.TimelineMilestone `json:"milestone,omitempty"`
	Progress  int                      `json:"progress"`
}

type CreateMilestoneReq struct {
	Name        string     `json:"name" binding:"required" example:"Handover"`
	PlannedDate *time.Time `json:"planned_date"`
	ActualDate  *time.Time `json:"actual_date"`
	Status      string     `json:"status" example:"not_started"`
}

// CreateMilestone godoc
//
//	@Summary		Create milestone
//	@Description	Add a timeline milestone to a project
//	@Tags			milestone
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			body		body	CreateMilestoneReq	true	"Milestone"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=MilestoneWithProgress}
//	@Router			/projects/{project_id}/milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateMilestoneReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	m := &model.TimelineMilestone{
		ProjectID:   projectID,
		Name:        req.Name,
		PlannedDate: req.PlannedDate,
		ActualDate:  req.ActualDate,
		Status:      req.Status,
	}
	if m.Status == "" {
		m.Status = model.MilestoneNotStarted
	}

	progress, err := h.svc.Create(c.Request.Context(), currentUser(c), m)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: MilestoneWithProgress{Milestone: m, Progress: progress}})
}

// ListMilestones godoc
//
//	@Summary		List milestones
//	@Description	List a project's milestones ordered by planned date
//	@Tags			milestone
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TimelineMilestone}
//	@Router			/projects/{project_id}/milestones [get]
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	milestones, err := h.svc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: milestones})
}

// UpdateMilestoneReq fields are pointers so an absent field leaves the
// stored value alone.
type UpdateMilestoneReq struct {
	Name        *string    `json:"name"`
	PlannedDate *time.Time `json:"planned_date"`
	ActualDate  *time.Time `json:"actual_date"`
	Status      *string    `json:"status"`
}

// UpdateMilestone godoc
//
//	@Summary		Update milestone
//	@Description	Update a milestone; the project progress is recomputed
//	@Tags			milestone
//	@Accept			json
//	@Produce		json
//	@Param			project_id		path	string				true	"Project ID"	Format(uuid)
//	@Param			milestone_id	path	string				true	"Milestone ID"	Format(uuid)
//	@Param			body			body	UpdateMilestoneReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=MilestoneWithProgress}
//	@Router			/projects/{project_id}/milestones/{milestone_id} [put]
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("milestone_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateMilestoneReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	m, progress, err := h.svc.Update(c.Request.Context(), currentUser(c), service.UpdateMilestoneInput{
		MilestoneID: milestoneID,
		Name:        req.Name,
		PlannedDate: req.PlannedDate,
		ActualDate:  req.ActualDate,
		Status:      req.Status,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: MilestoneWithProgress{Milestone: m, Progress: progress}})
}

// DeleteMilestone godoc
//
//	@Summary		Delete milestone
//	@Description	Delete a milestone; the project progress is recomputed
//	@Tags			milestone
//	@Produce		json
//	@Param			project_id		path	string	true	"Project ID"	Format(uuid)
//	@Param			milestone_id	path	string	true	"Milestone ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=MilestoneWithProgress}
//	@Router			/projects/{project_id}/milestones/{milestone_id} [delete]
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	milestoneID, err := uuid.Parse(c.Param("milestone_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	progress, err := h.svc.Delete(c.Request.Context(), currentUser(c), projectID, milestoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: MilestoneWithProgress{Progress: progress}})
}
