package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"voicegst/internal/domain"
)

// Places is the number of decimal places (paisa) every published amount is
// rounded to. Rounding is half away from zero, which for the non-negative
// amounts this package produces is round-half-up.
const Places = 2

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// percentOf returns amount × rate / 100 rounded to paisa.
func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return round(amount.Mul(rate).Div(hundred))
}

// ratio returns part / whole × 100 rounded to paisa, or zero when whole is zero.
func ratio(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return round(part.Div(whole).Mul(hundred))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
