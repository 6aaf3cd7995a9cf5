package admin

import (
	"context"
	"time"

	"coachly/models"
)

// DataExportRequest asks for a GDPR export of one client's data held
// by one counselor.
type DataExportRequest struct {
	ClientEmail string `json:"clientEmail" binding:"required,email"`
	ClientName  string `json:"clientName" binding:"required"`
	CounselorID string `json:"counselorId" binding:"required"`
}

// ExportResult describes a prepared export bundle and its expiring
// download link.
type ExportResult struct {
	ExportID    string    `json:"exportId"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// InvoiceRequest asks for a new sequentially-numbered invoice.
type InvoiceRequest struct {
	CounselorID string               `json:"counselorId" binding:"required"`
	ClientName  string               `json:"clientName" binding:"required"`
	ClientEmail string               `json:"clientEmail" binding:"required,email"`
	Currency    string               `json:"currency"`
	Lines       []models.InvoiceLine `json:"lines" binding:"required,min=1"`
}

// AdminService groups the back-office operations: legal documents,
// GDPR exports and invoice issuance.
type AdminService interface {
	LegalSections() []models.LegalSection
	CreateDataExport(ctx context.Context, req DataExportRequest) (*ExportResult, error)
	FetchExport(ctx context.Context, exportID, token string) ([]byte, error)
	IssueInvoice(ctx context.Context, req InvoiceRequest) (*models.Invoice, error)
}
