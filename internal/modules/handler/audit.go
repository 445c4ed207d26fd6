package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type AuditHandler struct {
	svc service.AuditService
}

func NewAuditHandler(s service.AuditService) *AuditHandler {
	return &AuditHandler{svc: s}
}

type ListAuditLogsReq struct {
	Limit    int    `form:"limit,default=20" json:"limit" binding:"required,min=1,max=200" example:"20"`
	Cursor   string `form:"cursor" json:"cursor"`
	TimeDesc bool   `form:"time_desc,default=true" json:"time_desc" example:"true"`
}

// ListAuditLogs godoc
//
//	@Summary		List audit logs
//	@Description	Cursor-paginated audit trail, newest first by default
//	@Tags			audit
//	@Produce		json
//	@Param			limit		query	integer	false	"Limit of entries to return, default 20. Max 200."
//	@Param			cursor		query	string	false	"Cursor from the previous response"
//	@Param			time_desc	query	boolean	false	"Order by created_at descending (default true)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ListAuditLogsOutput}
//	@Router			/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	req := ListAuditLogsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), service.ListAuditLogsInput{
		Limit:    req.Limit,
		Cursor:   req.Cursor,
		TimeDesc: req.TimeDesc,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
