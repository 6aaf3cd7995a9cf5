package admin

import (
	"context"
	"fmt"
	"time"

	"coachly/models"

	"github.com/google/uuid"
)

// IssueInvoice reserves the next sequence number for the current year,
// computes the total and persists the invoice.
func (a *DefaultAdminService) IssueInvoice(ctx context.Context, req InvoiceRequest) (*models.Invoice, error) {
	now := time.Now().UTC()

	seq, err := a.Invoices.NextNumber(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = a.Personalization.Snapshot().Config.Payment.Currency
	}

	invoice := &models.Invoice{
		ID:          uuid.NewString(),
		Number:      models.FormatInvoiceNumber(now.Year(), seq),
		CounselorID: req.CounselorID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Lines:       req.Lines,
		Currency:    currency,
		Status:      "issued",
		IssuedAt:    now,
	}
	invoice.TotalCents = invoice.Total()

	if err := a.Invoices.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to persist invoice %s: %w", invoice.Number, err)
	}
	return invoice, nil
}
