package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{svc: s}
}

// GetProjectReport godoc
//
//	@Summary		Project report
//	@Description	Full project snapshot: header, items by scope, milestones and open tasks
//	@Tags			report
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectReportOutput}
//	@Router			/projects/{project_id}/report [get]
func (h *ReportHandler) GetProjectReport(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ProjectReport(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
