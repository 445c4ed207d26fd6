package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{svc: s}
}

// ItemWithProgress pairs an item mutation result with the project's
// recomputed progress so clients can refresh without a second call.
type ItemWithProgress struct {
	Item     *model.ProjectItem `json:"item,omitempty"`
	Progress int                `json:"progress"`
}

type CreateItemReq struct {
	Name                 string     `json:"name" binding:"required" example:"Kitchen hood"`
	Category             string     `json:"category" example:"kitchen"`
	Scope                string     `json:"scope" binding:"required" example:"owner"`
	Status               string     `json:"status" example:"not_ordered"`
	CompletionPercentage int        `json:"completion_percentage" example:"0"`
	CompanyID            *uuid.UUID `json:"company_id"`
	Notes                string     `json:"notes"`
	LPOStatus            string     `json:"lpo_status" example:"na"`
}

// CreateItem godoc
//
//	@Summary		Create item
//	@Description	Add an owner or contractor item to a project
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			body		body	CreateItemReq	true	"Item"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=ItemWithProgress}
//	@Router			/projects/{project_id}/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateItemReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item := &model.ProjectItem{
		ProjectID:            projectID,
		Name:                 req.Name,
		Category:             req.Category,
		Scope:                req.Scope,
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		CompanyID:            req.CompanyID,
		Notes:                req.Notes,
		LPOStatus:            req.LPOStatus,
	}
	if item.Status == "" {
		item.Status = model.ItemNotOrdered
	}
	if item.LPOStatus == "" {
		item.LPOStatus = model.LPONA
	}

	progress, err := h.svc.Create(c.Request.Context(), currentUser(c), item)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: ItemWithProgress{Item: item, Progress: progress}})
}

type ListItemsReq struct {
	Scope string `form:"scope" json:"scope" example:"owner"`
}

// ListItems godoc
//
//	@Summary		List items
//	@Description	List a project's items, optionally filtered by scope
//	@Tags			item
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			scope		query	string	false	"Scope filter (owner or contractor)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectItem}
//	@Router			/projects/{project_id}/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := ListItemsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	items, err := h.svc.ListByProject(c.Request.Context(), projectID, req.Scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// UpdateItemReq fields are pointers so an absent field leaves the stored
// value alone while an explicit zero ("" or 0) overwrites it.
type UpdateItemReq struct {
	Name                 *string    `json:"name"`
	Category             *string    `json:"category"`
	Scope                *string    `json:"scope"`
	Status               *string    `json:"status"`
	CompletionPercentage *int       `json:"completion_percentage"`
	CompanyID            *uuid.UUID `json:"company_id"`
	Notes                *string    `json:"notes"`
	LPOStatus            *string    `json:"lpo_status"`
}

// UpdateItem godoc
//
//	@Summary		Update item
//	@Description	Update an item; the project progress is recomputed
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			item_id		path	string			true	"Item ID"		Format(uuid)
//	@Param			body		body	UpdateItemReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=ItemWithProgress}
//	@Router			/projects/{project_id}/items/{item_id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateItemReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, progress, err := h.svc.Update(c.Request.Context(), currentUser(c), service.UpdateItemInput{
		ItemID:               itemID,
		Name:                 req.Name,
		Category:             req.Category,
		Scope:                req.Scope,
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		CompanyID:            req.CompanyID,
		Notes:                req.Notes,
		LPOStatus:            req.LPOStatus,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ItemWithProgress{Item: item, Progress: progress}})
}

// DeleteItem godoc
//
//	@Summary		Delete item
//	@Description	Delete an item; the project progress is recomputed
//	@Tags			item
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			item_id		path	string	true	"Item ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=ItemWithProgress}
//	@Router			/projects/{project_id}/items/{item_id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	progress, err := h.svc.Delete(c.Request.Context(), currentUser(c), projectID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ItemWithProgress{Progress: progress}})
}
