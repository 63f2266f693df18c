package gst

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one row of an invoice as supplied by the caller. When Quantity
// is positive the taxable amount is Quantity × UnitAmount; otherwise Amount
// is used as given.
type LineItem struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitAmount     decimal.Decimal `json:"unitAmount"`
	Amount         decimal.Decimal `json:"amount"`
	TaxRatePercent Rate            `json:"taxRatePercent"`
}

// PricedItem is a LineItem with its tax worked out.
type PricedItem struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitAmount     decimal.Decimal `json:"unitAmount"`
	Amount         decimal.Decimal `json:"amount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Components     []Component     `json:"components"`
}

// ItemsBreakdown describes the item set as a whole.
type ItemsBreakdown struct {
	ItemCount             int             `json:"itemCount"`
	AverageTaxRatePercent decimal.Decimal `json:"averageTaxRatePercent"`
}

// ItemsResult is the tax computed across a set of line items.
type ItemsResult struct {
	Items      []PricedItem   `json:"items"`
	Summary    Breakdown      `json:"summary"`
	Method     Method         `json:"method"`
	Components []Component    `json:"components"`
	Breakdown  ItemsBreakdown `json:"breakdown"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// CalculateForItems prices every item at its own rate and totals the result.
// Components are split per item and then summed per (name, rate) in the
// order first seen, so mixed-rate invoices report each slab separately.
func (c *Calculator) CalculateForItems(items []LineItem, method Method) (*ItemsResult, error) {
	if !method.Valid() {
		return nil, invalidf("unrecognised calculation method %q; expected CGST+SGST or IGST", string(method))
	}

	res := &ItemsResult{
		Items:      make([]PricedItem, 0, len(items)),
		Method:     method,
		Components: make([]Component, 0, 2),
	}
	subtotal, totalTax := decimal.Zero, decimal.Zero
	index := make(map[string]int)

	for i := range items {
		item := &items[i]
		if item.Quantity.IsNegative() || item.UnitAmount.IsNegative() || item.Amount.IsNegative() {
			return nil, invalidf("item %d: quantity and amounts must not be negative", i)
		}

		rate, warning, err := c.resolveRate(item.TaxRatePercent)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if warning != "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: %s", i, warning))
		}

		amount, err := itemAmount(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		tax := percentOf(amount, rate)
		components := split(tax, rate, method)

		res.Items = append(res.Items, PricedItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitAmount:     item.UnitAmount,
			Amount:         amount,
			TaxRatePercent: rate,
			TaxAmount:      tax,
			TotalAmount:    amount.Add(tax),
			Components:     components,
		})

		subtotal = subtotal.Add(amount)
		totalTax = totalTax.Add(tax)

		for _, comp := range components {
			key := comp.Name + "@" + comp.RatePercent.String()
			if pos, ok := index[key]; ok {
				res.Components[pos].Amount = res.Components[pos].Amount.Add(comp.Amount)
				continue
			}
			index[key] = len(res.Components)
			res.Components = append(res.Components, comp)
		}
	}

	res.Summary = Breakdown{
		Subtotal: subtotal,
		Tax:      totalTax,
		Total:    subtotal.Add(totalTax),
	}
	res.Breakdown = ItemsBreakdown{
		ItemCount:             len(items),
		AverageTaxRatePercent: ratio(totalTax, subtotal),
	}
	return res, nil
}

// itemAmount prices a line. Quantity × UnitAmount is used when both are
// positive; otherwise Amount is taken as the line value. When all three are
// given, Amount must agree with Quantity × UnitAmount to the paisa.
func itemAmount(item *LineItem) (decimal.Decimal, error) {
	amount := round(item.Amount)
	if !item.Quantity.IsPositive() || !item.UnitAmount.IsPositive() {
		return amount, nil
	}
	extended := round(item.Quantity.Mul(item.UnitAmount))
	if !amount.IsZero() && !amount.Equal(extended) {
		return decimal.Zero, invalidf("amount %s does not match quantity %s × unit amount %s = %s",
			amount.StringFixed(Places), item.Quantity, item.UnitAmount.StringFixed(Places), extended.StringFixed(Places))
	}
	return extended, nil
}
