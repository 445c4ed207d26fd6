package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

// GetDashboard godoc
//
//	@Summary		Dashboard
//	@Description	Portfolio summary: per-chain counts by status and per-project progress
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.DashboardOutput}
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	out, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
