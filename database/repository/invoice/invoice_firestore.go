package invoiceRepo

import (
	"context"
	"fmt"
	"strconv"

	"coachly/database"
	"coachly/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	invoiceCollection = "invoices"
	counterCollection = "invoiceCounters"
)

// FirestoreInvoiceRepo is the Firestore-backed implementation. Invoice
// numbers come from a per-year counter document bumped transactionally,
// so concurrent issuance never produces a duplicate.
type FirestoreInvoiceRepo struct {
	client   *firestore.Client
	invoices *firestore.CollectionRef
	counters *firestore.CollectionRef
}

// NewFirestoreInvoiceRepo builds the repository over the shared client.
func NewFirestoreInvoiceRepo() *FirestoreInvoiceRepo {
	client := database.GetClient()
	return &FirestoreInvoiceRepo{
		client:   client,
		invoices: client.Collection(invoiceCollection),
		counters: client.Collection(counterCollection),
	}
}

type counterDoc struct {
	Value int64 `firestore:"value"`
}

// NextNumber bumps the year's counter inside a transaction and returns
// the new value. The first invoice of a year creates the counter at 1.
func (r *FirestoreInvoiceRepo) NextNumber(ctx context.Context, year int) (int64, error) {
	ref := r.counters.Doc(strconv.Itoa(year))

	var next int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		exists := err == nil && snap.Exists()
		if err != nil && (snap == nil || snap.Exists()) {
			return err
		}

		var counter counterDoc
		if exists {
			if err := snap.DataTo(&counter); err != nil {
				return err
			}
		}
		counter.Value++
		next = counter.Value
		return tx.Set(ref, counter)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reserve invoice number for %d: %w", year, err)
	}
	return next, nil
}

// Create persists an issued invoice keyed by its ID.
func (r *FirestoreInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	if _, err := r.invoices.Doc(invoice.ID).Create(ctx, invoice); err != nil {
		return fmt.Errorf("failed to create invoice %s: %w", invoice.Number, err)
	}
	return nil
}

// GetByID retrieves one invoice document.
func (r *FirestoreInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	snap, err := r.invoices.Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", id, err)
	}
	var inv models.Invoice
	if err := snap.DataTo(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode invoice %s: %w", id, err)
	}
	return &inv, nil
}

// ByCounselor lists the invoices issued by one counselor.
func (r *FirestoreInvoiceRepo) ByCounselor(ctx context.Context, counselorID string) ([]models.Invoice, error) {
	iter := r.invoices.Where("counselorId", "==", counselorID).Documents(ctx)
	defer iter.Stop()

	var out []models.Invoice
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list invoices for counselor %s: %w", counselorID, err)
		}
		var inv models.Invoice
		if err := snap.DataTo(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, nil
}
