package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type CompanyHandler struct {
	svc service.CompanyService
}

func NewCompanyHandler(s service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: s}
}

type CompanyReq struct {
	Name        string `json:"name" binding:"required" example:"Al Futtaim Interiors"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// CreateCompany godoc
//
//	@Summary		Create company
//	@Description	Register a supplier or contractor company
//	@Tags			company
//	@Accept			json
//	@Produce		json
//	@Param			body	body	CompanyReq	true	"Company"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Company}
//	@Router			/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	req := CompanyReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	company := &model.Company{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
	}
	if err := h.svc.Create(c.Request.Context(), currentUser(c), company); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: company})
}

// ListCompanies godoc
//
//	@Summary		List companies
//	@Description	List registered companies
//	@Tags			company
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Company}
//	@Router			/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: companies})
}

// UpdateCompany godoc
//
//	@Summary		Update company
//	@Description	Update company details
//	@Tags			company
//	@Accept			json
//	@Produce		json
//	@Param			company_id	path	string		true	"Company ID"	Format(uuid)
//	@Param			body		body	CompanyReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Company}
//	@Router			/companies/{company_id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CompanyReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	company := &model.Company{
		ID:          companyID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
	}
	if err := h.svc.Update(c.Request.Context(), currentUser(c), company); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: company})
}

// DeleteCompany godoc
//
//	@Summary		Delete company
//	@Description	Delete a company. Items referencing it keep a null company.
//	@Tags			company
//	@Produce		json
//	@Param			company_id	path	string	true	"Company ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/companies/{company_id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), currentUser(c), companyID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
