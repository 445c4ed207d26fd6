package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/buildra-io/sitetrack/internal/infra/blob"
	"github.com/buildra-io/sitetrack/internal/infra/metrics"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// DocumentService handles drawing/photo/invoice uploads. The object goes
// into the bucket matching the document kind; the metadata row keeps the
// public URL the original app displayed.
type DocumentService interface {
	Upload(ctx context.Context, actor *model.User, in UploadDocumentInput) (*model.Document, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, kind string) ([]*model.Document, error)
	PresignedURL(ctx context.Context, documentID uuid.UUID, expire time.Duration) (string, error)
	SetInvoiceStatus(ctx context.Context, actor *model.User, documentID uuid.UUID, status string) error
	Delete(ctx context.Context, actor *model.User, projectID, documentID uuid.UUID) error
}

type documentService struct {
	r     repo.DocumentRepo
	blob  *blob.S3Deps
	audit AuditService
}

func NewDocumentService(r repo.DocumentRepo, s3 *blob.S3Deps, audit AuditService) DocumentService {
	return &documentService{r: r, blob: s3, audit: audit}
}

func (s *documentService) bucketFor(kind string) string {
	switch kind {
	case model.DocDrawing:
		return s.blob.Drawings
	case model.DocPhoto:
		return s.blob.Photos
	case model.DocInvoice:
		return s.blob.Invoices
	}
	return ""
}

type UploadDocumentInput struct {
	ProjectID uuid.UUID
	Kind      string
	Name      string
	File      *multipart.FileHeader

	// Invoice-only.
	Amount        float64
	InvoiceStatus string
}

func (s *documentService) Upload(ctx context.Context, actor *model.User, in UploadDocumentInput) (*model.Document, error) {
	if !model.IsValidDocumentKind(in.Kind) {
		return nil, fmt.Errorf("invalid document kind: %s", in.Kind)
	}
	if in.File == nil {
		return nil, errors.New("file is required")
	}

	bucket := s.bucketFor(in.Kind)
	umeta, err := s.blob.UploadFormFile(ctx, bucket, in.File)
	if err != nil {
		metrics.IncrementDocumentUpload(in.Kind, "failed")
		return nil, fmt.Errorf("upload %s: %w", in.Kind, err)
	}
	metrics.IncrementDocumentUpload(in.Kind, "success")

	name := in.Name
	if name == "" {
		name = in.File.Filename
	}
	status := in.InvoiceStatus
	if status == "" {
		status = model.InvoicePending
	}

	doc := &model.Document{
		ProjectID:     in.ProjectID,
		Kind:          in.Kind,
		Name:          name,
		Bucket:        umeta.Bucket,
		S3Key:         umeta.Key,
		MIME:          umeta.MIME,
		SizeB:         umeta.SizeB,
		PublicURL:     umeta.PublicURL,
		Amount:        in.Amount,
		InvoiceStatus: status,
	}
	if actor != nil {
		doc.UploadedBy = &actor.ID
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if err := s.r.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document record: %w", err)
	}

	s.audit.Record(ctx, actor, "document.upload", "document", &doc.ID, map[string]interface{}{
		"project_id": in.ProjectID.String(),
		"kind":       in.Kind,
		"name":       name,
	})
	return doc, nil
}

func (s *documentService) ListByProject(ctx context.Context, projectID uuid.UUID, kind string) ([]*model.Document, error) {
	if kind != "" && !model.IsValidDocumentKind(kind) {
		return nil, fmt.Errorf("invalid document kind: %s", kind)
	}
	return s.r.ListByProject(ctx, projectID, kind)
}

func (s *documentService) PresignedURL(ctx context.Context, documentID uuid.UUID, expire time.Duration) (string, error) {
	doc, err := s.r.Get(ctx, documentID)
	if err != nil {
		return "", err
	}
	return s.blob.PresignGet(ctx, doc.Bucket, doc.S3Key, expire)
}

func (s *documentService) SetInvoiceStatus(ctx context.Context, actor *model.User, documentID uuid.UUID, status string) error {
	if !model.IsValidInvoiceStatus(status) {
		return fmt.Errorf("invalid invoice status: %s", status)
	}

	doc, err := s.r.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Kind != model.DocInvoice {
		return fmt.Errorf("document %s is not an invoice", documentID)
	}

	doc.InvoiceStatus = status
	if err := s.r.Update(ctx, doc); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "invoice.status", "document", &documentID, map[string]interface{}{
		"status": status,
	})
	return nil
}

// Delete removes the metadata row only; the stored object is kept, which
// matches how the original handled file removal.
func (s *documentService) Delete(ctx context.Context, actor *model.User, projectID, documentID uuid.UUID) error {
	if documentID == uuid.Nil {
		return errors.New("document id is empty")
	}
	if err := s.r.Delete(ctx, projectID, documentID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "document.delete", "document", &documentID, map[string]interface{}{
		"project_id": projectID.String(),
	})
	return nil
}
