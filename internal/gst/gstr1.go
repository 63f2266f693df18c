package gst

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// invoiceTolerance is how far a stated invoice figure may drift from the sum
// of its parts before a warning is attached.
var invoiceTolerance = decimal.NewFromInt(1)

// InvoiceItem is an invoice line as recorded in the books.
type InvoiceItem struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Amount         decimal.Decimal `json:"amount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
}

// Invoice is an outward supply to be reported in GSTR-1.
type Invoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerGSTIN string          `json:"customerGSTIN,omitempty"`
	PlaceOfSupply string          `json:"placeOfSupply,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Items         []InvoiceItem   `json:"items"`
}

// GSTR1Entry is one invoice as it appears in a GSTR-1 section.
type GSTR1Entry struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerGSTIN string          `json:"customerGSTIN,omitempty"`
	PlaceOfSupply string          `json:"placeOfSupply,omitempty"`
	TaxableValue  decimal.Decimal `json:"taxableValue"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Items         []InvoiceItem   `json:"items"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// GSTR1Summary totals every processed invoice.
type GSTR1Summary struct {
	TotalTaxableValue decimal.Decimal `json:"totalTaxableValue"`
	TotalTaxLiability decimal.Decimal `json:"totalTaxLiability"`
	InvoiceCount      int             `json:"invoiceCount"`
	B2BCount          int             `json:"b2bCount"`
	B2CSCount         int             `json:"b2csCount"`
}

// GSTR1 holds outward supplies split into the B2B and B2C (small) sections.
type GSTR1 struct {
	B2B     []GSTR1Entry `json:"b2b"`
	B2CS    []GSTR1Entry `json:"b2cs"`
	Summary GSTR1Summary `json:"summary"`
}

// BuildGSTR1 categorises invoices by the customer's GSTIN: a well-formed
// GSTIN puts the invoice in B2B, anything else in B2C small. In strict mode a
// non-empty GSTIN that fails validation rejects the whole batch.
func BuildGSTR1(invoices []Invoice, strict bool) (*GSTR1, error) {
	out := &GSTR1{
		B2B:  make([]GSTR1Entry, 0),
		B2CS: make([]GSTR1Entry, 0),
		Summary: GSTR1Summary{
			TotalTaxableValue: decimal.Zero,
			TotalTaxLiability: decimal.Zero,
		},
	}

	for i := range invoices {
		inv := &invoices[i]
		gstin := strings.TrimSpace(inv.CustomerGSTIN)
		b2b := gstin != "" && ValidateGSTIN(gstin)
		if strict && gstin != "" && !b2b {
			return nil, invalidf("invoice %q: malformed customer GSTIN %q", inv.InvoiceNumber, gstin)
		}

		entry := GSTR1Entry{
			InvoiceNumber: inv.InvoiceNumber,
			Date:          inv.Date,
			CustomerName:  inv.CustomerName,
			CustomerGSTIN: gstin,
			PlaceOfSupply: inv.PlaceOfSupply,
			TaxableValue:  inv.Subtotal,
			TaxAmount:     inv.TaxAmount,
			TotalAmount:   inv.TotalAmount,
			Items:         inv.Items,
			Warnings:      checkInvoice(inv),
		}
		if entry.Items == nil {
			entry.Items = []InvoiceItem{}
		}

		if b2b {
			out.B2B = append(out.B2B, entry)
			out.Summary.B2BCount++
		} else {
			out.B2CS = append(out.B2CS, entry)
			out.Summary.B2CSCount++
		}
		out.Summary.InvoiceCount++
		out.Summary.TotalTaxableValue = out.Summary.TotalTaxableValue.Add(inv.Subtotal)
		out.Summary.TotalTaxLiability = out.Summary.TotalTaxLiability.Add(inv.TaxAmount)
	}

	out.Summary.TotalTaxableValue = round(out.Summary.TotalTaxableValue)
	out.Summary.TotalTaxLiability = round(out.Summary.TotalTaxLiability)
	return out, nil
}

// checkInvoice compares an invoice's stated totals with the sum of its parts.
func checkInvoice(inv *Invoice) []string {
	var warnings []string

	if len(inv.Items) > 0 {
		var itemSum, itemTax decimal.Decimal
		for j := range inv.Items {
			itemSum = itemSum.Add(inv.Items[j].Amount)
			itemTax = itemTax.Add(inv.Items[j].TaxAmount)
		}
		if !within(inv.Subtotal, itemSum) {
			warnings = append(warnings, fmt.Sprintf("subtotal %s does not match item amounts %s", inv.Subtotal.StringFixed(Places), itemSum.StringFixed(Places)))
		}
		if !itemTax.IsZero() && !within(inv.TaxAmount, itemTax) {
			warnings = append(warnings, fmt.Sprintf("tax amount %s does not match item tax %s", inv.TaxAmount.StringFixed(Places), itemTax.StringFixed(Places)))
		}
	}

	if !inv.TotalAmount.IsZero() {
		expected := inv.Subtotal.Add(inv.TaxAmount)
		if !within(inv.TotalAmount, expected) {
			warnings = append(warnings, fmt.Sprintf("total %s does not match subtotal plus tax %s", inv.TotalAmount.StringFixed(Places), expected.StringFixed(Places)))
		}
	}
	return warnings
}

func within(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(invoiceTolerance)
}
