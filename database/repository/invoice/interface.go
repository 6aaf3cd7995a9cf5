package invoiceRepo

import (
	"context"

	"coachly/models"
)

// InvoiceRepository defines invoice persistence and numbering.
type InvoiceRepository interface {
	// NextNumber reserves and returns the next sequence value for the
	// given year. Sequences are per-year and never reused.
	NextNumber(ctx context.Context, year int) (int64, error)
	// Create persists an issued invoice.
	Create(ctx context.Context, invoice *models.Invoice) error
	// GetByID retrieves one invoice.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	// ByCounselor lists a counselor's invoices.
	ByCounselor(ctx context.Context, counselorID string) ([]models.Invoice, error)
}
