package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "FAC-2026-0042", FormatInvoiceNumber(2026, 42))
	assert.Equal(t, "FAC-2026-0001", FormatInvoiceNumber(2026, 1))
	// Sequences past four digits keep growing instead of wrapping.
	assert.Equal(t, "FAC-2026-12345", FormatInvoiceNumber(2026, 12345))
}

func TestInvoiceTotal(t *testing.T) {
	inv := Invoice{Lines: []InvoiceLine{
		{Description: "Séance", Quantity: 3, UnitPriceCents: 8000},
		{Description: "Atelier", Quantity: 1, UnitPriceCents: 4500},
	}}
	assert.Equal(t, int64(28500), inv.Total())
}

func TestAgencyConfigCloneIsolatesSections(t *testing.T) {
	original := AgencyConfig{HomeSections: []HomeSection{{ID: "hero", Enabled: true}}}
	clone := original.Clone()
	clone.HomeSections[0].Enabled = false

	assert.True(t, original.HomeSections[0].Enabled)
}
