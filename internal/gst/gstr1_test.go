package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/domain"
	"voicegst/internal/gst"
)

func sampleInvoices() []gst.Invoice {
	return []gst.Invoice{
		{
			InvoiceNumber: "INV-001",
			Date:          "2026-07-04",
			CustomerName:  "Patil Traders",
			CustomerGSTIN: "27AAPFU0939F1ZV",
			Subtotal:      dec("10000"),
			TaxAmount:     dec("1800"),
			TotalAmount:   dec("11800"),
			Items: []gst.InvoiceItem{
				{Description: "Cement bags", Quantity: dec("20"), UnitPrice: dec("500"), Amount: dec("10000"), TaxRatePercent: dec("18"), TaxAmount: dec("1800")},
			},
		},
		{
			InvoiceNumber: "INV-002",
			Date:          "2026-07-05",
			CustomerName:  "Walk-in",
			Subtotal:      dec("500"),
			TaxAmount:     dec("25"),
			TotalAmount:   dec("525"),
		},
		{
			InvoiceNumber: "INV-003",
			Date:          "2026-07-06",
			CustomerGSTIN: "27aapfu0939f1zv",
			Subtotal:      dec("1200.50"),
			TaxAmount:     dec("216.09"),
			TotalAmount:   dec("1416.59"),
		},
	}
}

func TestBuildGSTR1_Categorises(t *testing.T) {
	out, err := gst.BuildGSTR1(sampleInvoices(), false)
	require.NoError(t, err)

	require.Len(t, out.B2B, 1)
	assert.Equal(t, "INV-001", out.B2B[0].InvoiceNumber)
	assertDec(t, "10000", out.B2B[0].TaxableValue)
	require.Len(t, out.B2B[0].Items, 1)

	require.Len(t, out.B2CS, 2)
	assert.Equal(t, "INV-002", out.B2CS[0].InvoiceNumber)
	assert.Equal(t, "INV-003", out.B2CS[1].InvoiceNumber, "lowercase GSTIN is not a valid registration")
	assert.NotNil(t, out.B2CS[0].Items)

	assert.Equal(t, 3, out.Summary.InvoiceCount)
	assert.Equal(t, 1, out.Summary.B2BCount)
	assert.Equal(t, 2, out.Summary.B2CSCount)
	assertDec(t, "11700.5", out.Summary.TotalTaxableValue)
	assertDec(t, "2041.09", out.Summary.TotalTaxLiability)
}

func TestBuildGSTR1_Empty(t *testing.T) {
	out, err := gst.BuildGSTR1(nil, true)
	require.NoError(t, err)

	assert.NotNil(t, out.B2B)
	assert.NotNil(t, out.B2CS)
	assert.Equal(t, 0, out.Summary.InvoiceCount)
	assertDec(t, "0", out.Summary.TotalTaxableValue)
}

func TestBuildGSTR1_StrictRejectsMalformedGSTIN(t *testing.T) {
	_, err := gst.BuildGSTR1(sampleInvoices(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "INV-003")
}

func TestBuildGSTR1_StrictAllowsMissingGSTIN(t *testing.T) {
	invoices := sampleInvoices()[:2]

	out, err := gst.BuildGSTR1(invoices, true)
	require.NoError(t, err)
	assert.Len(t, out.B2B, 1)
	assert.Len(t, out.B2CS, 1)
}

func TestBuildGSTR1_ArithmeticWarnings(t *testing.T) {
	inv := gst.Invoice{
		InvoiceNumber: "INV-009",
		Subtotal:      dec("1000"),
		TaxAmount:     dec("180"),
		TotalAmount:   dec("1500"),
		Items: []gst.InvoiceItem{
			{Amount: dec("600"), TaxAmount: dec("108")},
			{Amount: dec("300"), TaxAmount: dec("54")},
		},
	}

	out, err := gst.BuildGSTR1([]gst.Invoice{inv}, false)
	require.NoError(t, err)
	require.Len(t, out.B2CS, 1)

	warnings := out.B2CS[0].Warnings
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "subtotal 1000.00")
	assert.Contains(t, warnings[1], "tax amount 180.00")
	assert.Contains(t, warnings[2], "total 1500.00")
}

func TestBuildGSTR1_WithinToleranceHasNoWarnings(t *testing.T) {
	inv := gst.Invoice{
		InvoiceNumber: "INV-010",
		Subtotal:      dec("1000.40"),
		TaxAmount:     dec("180"),
		TotalAmount:   dec("1181"),
		Items:         []gst.InvoiceItem{{Amount: dec("1000"), TaxAmount: dec("180")}},
	}

	out, err := gst.BuildGSTR1([]gst.Invoice{inv}, false)
	require.NoError(t, err)
	assert.Empty(t, out.B2CS[0].Warnings)
}
