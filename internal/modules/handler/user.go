package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

type CreateUserReq struct {
	Username string `json:"username" binding:"required" example:"site.coordinator"`
	Password string `json:"password" example:""`
	Role     string `json:"role" binding:"required" example:"coordinator"`
	FullName string `json:"full_name" example:"Site Coordinator"`
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	Create an account. When no password is given one is generated and returned once.
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			body	body	CreateUserReq	true	"User"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=service.CreateUserOutput}
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := CreateUserReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	List all accounts
//	@Tags			user
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.User}
//	@Router			/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: users})
}

type UpdateUserReq struct {
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Update role, name, password or active flag
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path	string			true	"User ID"	Format(uuid)
//	@Param			body	body	UpdateUserReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateUserReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), currentUser(c), service.UpdateUserInput{
		UserID:   userID,
		Role:     req.Role,
		FullName: req.FullName,
		Password: req.Password,
		IsActive: req.IsActive,
	}); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Get the authenticated account
//	@Tags			user
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, serializer.CheckLogin())
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: user})
}
