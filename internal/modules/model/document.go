package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document kinds, one per logical storage bucket.
const (
	DocDrawing = "drawing"
	DocPhoto   = "photo"
	DocInvoice = "invoice"
)

// Invoice payment statuses (invoice documents only).
const (
	InvoicePending  = "pending"
	InvoiceApproved = "approved"
	InvoicePaid     = "paid"
)

func IsValidDocumentKind(k string) bool {
	return k == DocDrawing || k == DocPhoto || k == DocInvoice
}

func IsValidInvoiceStatus(s string) bool {
	return s == InvoicePending || s == InvoiceApproved || s == InvoicePaid
}

// Document is the metadata row for an uploaded drawing, site photo or
// invoice file. The object itself lives in the bucket matching Kind.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_documents_project;index:ix_documents_project_kind,priority:1" json:"project_id"`

	Kind string `gorm:"type:text;not null;check:kind IN ('drawing','photo','invoice');index:ix_documents_project_kind,priority:2" json:"kind"`
	Name string `gorm:"type:text;not null" json:"name"`

	Bucket    string `gorm:"type:text;not null;uniqueIndex:ux_documents_bucket_key,priority:1" json:"bucket"`
	S3Key     string `gorm:"column:s3_key;type:text;not null;uniqueIndex:ux_documents_bucket_key,priority:2" json:"s3_key"`
	MIME      string `gorm:"column:mime;type:text;not null" json:"mime"`
	SizeB     int64  `gorm:"column:size_bigint;type:bigint;not null" json:"size_b"`
	PublicURL string `gorm:"type:text;not null" json:"public_url"`

	// Invoice-only fields; zero-valued for drawings and photos.
	Amount        float64 `gorm:"type:numeric;not null;default:0" json:"amount"`
	InvoiceStatus string  `gorm:"type:text;not null;default:'pending';check:invoice_status IN ('pending','approved','paid')" json:"invoice_status"`

	UploadedBy *uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Document <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Document) TableName() string { return "documents" }

// Validate checks the kind and invoice status vocabularies.
func (d *Document) Validate() error {
	if !IsValidDocumentKind(d.Kind) {
		return fmt.Errorf("invalid document kind: %s", d.Kind)
	}
	if !IsValidInvoiceStatus(d.InvoiceStatus) {
		return fmt.Errorf("invalid invoice status: %s", d.InvoiceStatus)
	}
	return nil
}
