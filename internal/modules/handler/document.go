package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/modules/service"
)

type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: s}
}

// UploadDocument godoc
//
//	@Summary		Upload document
//	@Description	Upload a drawing, photo or invoice as multipart form data
//	@Tags			document
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	Format(uuid)
//	@Param			kind		formData	string	true	"drawing, photo or invoice"
//	@Param			name		formData	string	false	"Display name (defaults to filename)"
//	@Param			amount			formData	number	false	"Invoice amount"
//	@Param			invoice_status	formData	string	false	"Initial invoice status (defaults to pending)"
//	@Param			file			formData	file	true	"The file"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Document}
//	@Router			/projects/{project_id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	amount := 0.0
	if raw := c.PostForm("amount"); raw != "" {
		amount, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid amount", err))
			return
		}
	}

	doc, err := h.svc.Upload(c.Request.Context(), currentUser(c), service.UploadDocumentInput{
		ProjectID:     projectID,
		Kind:          c.PostForm("kind"),
		Name:          c.PostForm("name"),
		File:          fh,
		Amount:        amount,
		InvoiceStatus: c.PostForm("invoice_status"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: doc})
}

type ListDocumentsReq struct {
	Kind string `form:"kind" json:"kind" example:"drawing"`
}

// ListDocuments godoc
//
//	@Summary		List documents
//	@Description	List a project's documents, optionally filtered by kind
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			kind		query	string	false	"Kind filter (drawing, photo or invoice)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Document}
//	@Router			/projects/{project_id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := ListDocumentsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	docs, err := h.svc.ListByProject(c.Request.Context(), projectID, req.Kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: docs})
}

type DocumentURLResp struct {
	URL string `json:"url"`
}

// GetDocumentURL godoc
//
//	@Summary		Get download URL
//	@Description	Get a time-limited presigned URL for the stored object
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			document_id	path	string	true	"Document ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=DocumentURLResp}
//	@Router			/projects/{project_id}/documents/{document_id}/url [get]
func (h *DocumentHandler) GetDocumentURL(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	url, err := h.svc.PresignedURL(c.Request.Context(), documentID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: DocumentURLResp{URL: url}})
}

type SetInvoiceStatusReq struct {
	Status string `json:"status" binding:"required" example:"paid"`
}

// SetInvoiceStatus godoc
//
//	@Summary		Set invoice status
//	@Description	Set the payment status of an invoice document
//	@Tags			document
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			document_id	path	string				true	"Document ID"	Format(uuid)
//	@Param			body		body	SetInvoiceStatusReq	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id}/documents/{document_id}/invoice-status [put]
func (h *DocumentHandler) SetInvoiceStatus(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := SetInvoiceStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetInvoiceStatus(c.Request.Context(), currentUser(c), documentID, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteDocument godoc
//
//	@Summary		Delete document
//	@Description	Delete the document record. The stored object is retained.
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			document_id	path	string	true	"Document ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{}
//	@Router			/projects/{project_id}/documents/{document_id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), currentUser(c), projectID, documentID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
