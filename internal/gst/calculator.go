package gst

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Component names.
const (
	CGST = "CGST"
	SGST = "SGST"
	IGST = "IGST"
)

// Component is one authority's share of the tax on a transaction.
type Component struct {
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Amount      decimal.Decimal `json:"amount"`
}

// Breakdown is the subtotal / tax / total triple shown on an invoice.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculationResult is the tax computed for a single amount.
type CalculationResult struct {
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Method         Method          `json:"method"`
	Components     []Component     `json:"components"`
	Breakdown      Breakdown       `json:"breakdown"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Calculator computes GST figures. It holds no mutable state and is safe for
// concurrent use.
type Calculator struct {
	defaultRate decimal.Decimal
	strictRates bool
	now         func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithDefaultRate sets the rate applied when none is supplied.
func WithDefaultRate(rate decimal.Decimal) Option {
	return func(c *Calculator) { c.defaultRate = rate }
}

// WithStrictRates rejects unparsable rates instead of falling back to the
// default rate.
func WithStrictRates(strict bool) Option {
	return func(c *Calculator) { c.strictRates = strict }
}

// WithClock sets the clock used for default return periods.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// NewCalculator returns a Calculator using the 18% slab as its default rate.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		defaultRate: StandardRate,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultRate returns the rate applied when none is supplied.
func (c *Calculator) DefaultRate() decimal.Decimal { return c.defaultRate }

// resolveRate turns a caller-supplied rate into a number. Missing rates take
// the default silently; unparsable rates take the default with a warning, or
// fail in strict mode. Rates outside the recognised slabs are accepted with a
// warning.
func (c *Calculator) resolveRate(r Rate) (decimal.Decimal, string, error) {
	if !r.IsSet() {
		return c.defaultRate, "", nil
	}
	v, ok := r.Parse()
	if !ok {
		if c.strictRates {
			return decimal.Zero, "", invalidf("tax rate %q is not a number", r.String())
		}
		return c.defaultRate, fmt.Sprintf("tax rate %q is not a number; applied %s%%", r.String(), c.defaultRate), nil
	}
	if v.IsNegative() || v.GreaterThan(hundred) {
		return decimal.Zero, "", invalidf("tax rate %s%% is outside 0-100", v)
	}
	if !IsRecognisedSlab(v) {
		return v, fmt.Sprintf("tax rate %s%% is not a standard GST slab", v), nil
	}
	return v, "", nil
}

// Calculate computes the tax on a tax-exclusive amount.
func (c *Calculator) Calculate(amount decimal.Decimal, rate Rate, method Method) (*CalculationResult, error) {
	v, warning, err := c.resolveRate(rate)
	if err != nil {
		return nil, err
	}
	res, err := c.calculate(amount, v, method)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		res.Warnings = append(res.Warnings, warning)
	}
	return res, nil
}

// ReverseCalculate derives the tax-exclusive amount from a tax-inclusive
// total and then calculates forward from it.
func (c *Calculator) ReverseCalculate(total decimal.Decimal, rate Rate, method Method) (*CalculationResult, error) {
	total = round(total)
	if !total.IsPositive() {
		return nil, invalidf("total amount must be greater than zero")
	}
	v, warning, err := c.resolveRate(rate)
	if err != nil {
		return nil, err
	}
	base := round(total.Mul(hundred).Div(hundred.Add(v)))
	res, err := c.calculate(base, v, method)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		res.Warnings = append(res.Warnings, warning)
	}
	return res, nil
}

// calculate rounds amount to paisa before checking it, so sub-paisa amounts
// are rejected rather than priced at zero.
func (c *Calculator) calculate(amount, rate decimal.Decimal, method Method) (*CalculationResult, error) {
	amount = round(amount)
	if !amount.IsPositive() {
		return nil, invalidf("amount must be at least 0.01")
	}
	if !method.Valid() {
		return nil, invalidf("unrecognised calculation method %q; expected CGST+SGST or IGST", string(method))
	}

	tax := percentOf(amount, rate)
	total := amount.Add(tax)

	return &CalculationResult{
		OriginalAmount: amount,
		TaxRatePercent: rate,
		TaxAmount:      tax,
		TotalAmount:    total,
		Method:         method,
		Components:     split(tax, rate, method),
		Breakdown: Breakdown{
			Subtotal: amount,
			Tax:      tax,
			Total:    total,
		},
	}, nil
}

// split divides tax between authorities. For CGST+SGST the state share takes
// the remainder so the two halves always add back to tax.
func split(tax, rate decimal.Decimal, method Method) []Component {
	if method == MethodIGST {
		return []Component{{Name: IGST, RatePercent: rate, Amount: tax}}
	}
	half := rate.Div(two)
	central := round(tax.Div(two))
	return []Component{
		{Name: CGST, RatePercent: half, Amount: central},
		{Name: SGST, RatePercent: half, Amount: tax.Sub(central)},
	}
}
