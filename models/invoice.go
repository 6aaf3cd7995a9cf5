package models

import (
	"fmt"
	"time"
)

// InvoiceLine is one billed item.
type InvoiceLine struct {
	Description    string `firestore:"description" json:"description"`
	Quantity       int    `firestore:"quantity" json:"quantity"`
	UnitPriceCents int64  `firestore:"unitPriceCents" json:"unitPriceCents"`
}

// Invoice represents an invoice issued by a counselor to a client.
type Invoice struct {
	ID          string        `firestore:"id" json:"id"`
	Number      string        `firestore:"number" json:"number"`
	CounselorID string        `firestore:"counselorId" json:"counselorId"`
	ClientName  string        `firestore:"clientName" json:"clientName"`
	ClientEmail string        `firestore:"clientEmail" json:"clientEmail"`
	Lines       []InvoiceLine `firestore:"lines" json:"lines"`
	TotalCents  int64         `firestore:"totalCents" json:"totalCents"`
	Currency    string        `firestore:"currency" json:"currency"`
	Status      string        `firestore:"status" json:"status"`
	IssuedAt    time.Time     `firestore:"issuedAt" json:"issuedAt"`
}

// Total sums the invoice lines.
func (i *Invoice) Total() int64 {
	var total int64
	for _, l := range i.Lines {
		total += int64(l.Quantity) * l.UnitPriceCents
	}
	return total
}

// FormatInvoiceNumber renders the sequential invoice identifier,
// e.g. FAC-2026-0042. Sequences restart every year.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("FAC-%d-%04d", year, seq)
}
