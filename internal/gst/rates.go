package gst

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// StandardRate is the 18% slab applied when a rate is missing.
var StandardRate = decimal.NewFromInt(18)

// Rate is a caller-supplied GST rate in percent. It decodes from a JSON
// number or from a string with an optional trailing "%" ("12", "12%", "2.5 %").
// The zero value means "not specified".
type Rate struct {
	text string
	set  bool
}

// RateOf returns a Rate holding v.
func RateOf(v decimal.Decimal) Rate {
	return Rate{text: v.String(), set: true}
}

// RateFromString returns a Rate holding the raw text s.
func RateFromString(s string) Rate {
	return Rate{text: s, set: true}
}

// IsSet reports whether a rate was supplied.
func (r Rate) IsSet() bool { return r.set }

// String returns the raw text the rate was built from.
func (r Rate) String() string { return r.text }

// Parse returns the numeric value of the rate. ok is false when the rate is
// unset or its text is not a number.
func (r Rate) Parse() (v decimal.Decimal, ok bool) {
	if !r.set {
		return decimal.Zero, false
	}
	s := strings.TrimSpace(r.text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

func (r *Rate) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*r = Rate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = Rate{text: s, set: true}
		return nil
	}
	*r = Rate{text: raw, set: true}
	return nil
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.set {
		return []byte("null"), nil
	}
	return json.Marshal(r.text)
}

// Slab is one of the rates recognised by the GST council.
type Slab struct {
	RatePercent decimal.Decimal `json:"ratePercent"`
	Label       string          `json:"label"`
}

// CommonRates lists the recognised slabs in ascending order.
func CommonRates() []Slab {
	return []Slab{
		{RatePercent: decimal.NewFromInt(0), Label: "0% - Exempt"},
		{RatePercent: decimal.NewFromInt(5), Label: "5%"},
		{RatePercent: decimal.NewFromInt(12), Label: "12%"},
		{RatePercent: decimal.NewFromInt(18), Label: "18%"},
		{RatePercent: decimal.NewFromInt(28), Label: "28%"},
	}
}

// IsRecognisedSlab reports whether v is one of CommonRates.
func IsRecognisedSlab(v decimal.Decimal) bool {
	for _, s := range CommonRates() {
		if s.RatePercent.Equal(v) {
			return true
		}
	}
	return false
}

var categoryRates = map[string]int64{
	"food":        0,
	"books":       0,
	"clothing":    5,
	"electronics": 18,
	"services":    18,
	"luxury":      28,
}

// CategoryRate returns the rate for a product category. Unknown categories
// get StandardRate with matched set to false.
func CategoryRate(category string) (rate decimal.Decimal, matched bool) {
	v, ok := categoryRates[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return StandardRate, false
	}
	return decimal.NewFromInt(v), true
}

// Categories returns the category table keyed by category name.
func Categories() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(categoryRates))
	for k, v := range categoryRates {
		out[k] = decimal.NewFromInt(v)
	}
	return out
}

// Method selects how the tax is split between central and state authorities.
type Method string

const (
	// MethodCGSTSGST applies to intra-state supplies.
	MethodCGSTSGST Method = "CGST+SGST"
	// MethodIGST applies to inter-state supplies.
	MethodIGST Method = "IGST"
)

var methodAliases = map[string]Method{
	"cgst+sgst": MethodCGSTSGST,
	"cgst_sgst": MethodCGSTSGST,
	"cgst-sgst": MethodCGSTSGST,
	"intra":     MethodCGSTSGST,
	"igst":      MethodIGST,
	"inter":     MethodIGST,
}

// ParseMethod maps user input onto a Method. The empty string selects
// CGST+SGST.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return MethodCGSTSGST, nil
	}
	m, ok := methodAliases[key]
	if !ok {
		return "", invalidf("unrecognised calculation method %q; expected CGST+SGST or IGST", s)
	}
	return m, nil
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	return m == MethodCGSTSGST || m == MethodIGST
}

// Description returns the supply type the method applies to.
func (m Method) Description() string {
	switch m {
	case MethodIGST:
		return "For inter-state transactions"
	case MethodCGSTSGST:
		return "For intra-state transactions"
	default:
		return ""
	}
}
