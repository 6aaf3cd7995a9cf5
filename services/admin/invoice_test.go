package admin

import (
	"context"
	"testing"
	"time"

	"coachly/models"
	"coachly/services/personalization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoiceRepo struct {
	seq     int64
	created []*models.Invoice
}

func (f *fakeInvoiceRepo) NextNumber(_ context.Context, _ int) (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *models.Invoice) error {
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(context.Context, string) (*models.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) ByCounselor(context.Context, string) ([]models.Invoice, error) {
	return nil, nil
}

func invoiceService(repo *fakeInvoiceRepo) *DefaultAdminService {
	p := personalization.New(nil, zap.NewNop())
	p.Start(context.Background())
	return &DefaultAdminService{
		Personalization: p,
		Invoices:        repo,
		Logger:          zap.NewNop(),
	}
}

func TestIssueInvoiceNumbersSequentially(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := invoiceService(repo)

	req := InvoiceRequest{
		CounselorID: "c-1",
		ClientName:  "Jean Dupont",
		ClientEmail: "client@example.com",
		Lines: []models.InvoiceLine{
			{Description: "Séance individuelle", Quantity: 2, UnitPriceCents: 8000},
		},
	}

	year := time.Now().UTC().Year()

	first, err := svc.IssueInvoice(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.IssueInvoice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.FormatInvoiceNumber(year, 1), first.Number)
	assert.Equal(t, models.FormatInvoiceNumber(year, 2), second.Number)
	assert.Len(t, repo.created, 2)
}

func TestIssueInvoiceComputesTotalAndDefaults(t *testing.T) {
	svc := invoiceService(&fakeInvoiceRepo{})

	inv, err := svc.IssueInvoice(context.Background(), InvoiceRequest{
		CounselorID: "c-1",
		ClientName:  "Jean Dupont",
		ClientEmail: "client@example.com",
		Lines: []models.InvoiceLine{
			{Description: "Séance individuelle", Quantity: 2, UnitPriceCents: 8000},
			{Description: "Atelier collectif", Quantity: 1, UnitPriceCents: 4500},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20500), inv.TotalCents)
	assert.Equal(t, "EUR", inv.Currency, "currency falls back to the agency payment settings")
	assert.Equal(t, "issued", inv.Status)
	assert.NotEmpty(t, inv.ID)
}
