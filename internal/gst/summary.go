package gst

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded sale, purchase or expense with its tax already
// known.
type Transaction struct {
	InvoiceNumber  string          `json:"invoiceNumber,omitempty"`
	Date           string          `json:"date,omitempty"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TaxRatePercent Rate            `json:"taxRatePercent"`
}

// RateBucket aggregates the transactions recorded at one rate.
type RateBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
	Tax    decimal.Decimal `json:"tax"`
}

// TransactionSummary totals a set of transactions.
type TransactionSummary struct {
	TotalAmount           decimal.Decimal       `json:"totalAmount"`
	TotalTax              decimal.Decimal       `json:"totalTax"`
	TotalWithTax          decimal.Decimal       `json:"totalWithTax"`
	RateSummary           map[string]RateBucket `json:"rateSummary"`
	AverageTaxRatePercent decimal.Decimal       `json:"averageTaxRatePercent"`
	Warnings              []string              `json:"warnings,omitempty"`
}

// TaxSummary is the liability position for a return period.
type TaxSummary struct {
	OutputTax       decimal.Decimal `json:"outputTax"`
	InputTax        decimal.Decimal `json:"inputTax"`
	NetTaxLiability decimal.Decimal `json:"netTaxLiability"`
	InputTaxCredit  decimal.Decimal `json:"inputTaxCredit"`
	Payable         decimal.Decimal `json:"payable"`
}

// DocumentCounts records how many documents fed each summary.
type DocumentCounts struct {
	SalesCount    int `json:"salesCount"`
	PurchaseCount int `json:"purchaseCount"`
	ExpenseCount  int `json:"expenseCount"`
}

// QuarterlyReturn is the summary behind a quarterly GST filing.
type QuarterlyReturn struct {
	Period           string             `json:"period"`
	SalesSummary     TransactionSummary `json:"salesSummary"`
	PurchasesSummary TransactionSummary `json:"purchasesSummary"`
	ExpensesSummary  TransactionSummary `json:"expensesSummary"`
	TaxSummary       TaxSummary         `json:"taxSummary"`
	Documents        DocumentCounts     `json:"documents"`
}

// RateLabel formats a rate as a rate-summary key, e.g. "18%".
func RateLabel(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// SummarizeTransactions totals txns and buckets them by their recorded rate.
// Transactions without a rate fall in the default rate's bucket.
func (c *Calculator) SummarizeTransactions(txns []Transaction) (TransactionSummary, error) {
	sum := TransactionSummary{
		TotalAmount:  decimal.Zero,
		TotalTax:     decimal.Zero,
		TotalWithTax: decimal.Zero,
		RateSummary:  make(map[string]RateBucket),
	}

	for i := range txns {
		t := &txns[i]
		rate, warning, err := c.resolveRate(t.TaxRatePercent)
		if err != nil {
			return TransactionSummary{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		if warning != "" {
			sum.Warnings = append(sum.Warnings, fmt.Sprintf("transaction %d: %s", i, warning))
		}

		sum.TotalAmount = sum.TotalAmount.Add(t.Amount)
		sum.TotalTax = sum.TotalTax.Add(t.TaxAmount)

		label := RateLabel(rate)
		bucket := sum.RateSummary[label]
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(t.Amount)
		bucket.Tax = bucket.Tax.Add(t.TaxAmount)
		sum.RateSummary[label] = bucket
	}

	for label, bucket := range sum.RateSummary {
		bucket.Amount = round(bucket.Amount)
		bucket.Tax = round(bucket.Tax)
		sum.RateSummary[label] = bucket
	}
	sum.TotalAmount = round(sum.TotalAmount)
	sum.TotalTax = round(sum.TotalTax)
	sum.TotalWithTax = sum.TotalAmount.Add(sum.TotalTax)
	if sum.TotalAmount.IsPositive() {
		sum.AverageTaxRatePercent = ratio(sum.TotalTax, sum.TotalAmount)
	}
	return sum, nil
}

// CalculateQuarterlyReturn summarises the three ledgers and nets output tax
// against input tax. Neither the liability nor the credit is ever negative.
// An empty period is replaced by the current financial quarter.
func (c *Calculator) CalculateQuarterlyReturn(period string, sales, purchases, expenses []Transaction) (*QuarterlyReturn, error) {
	salesSum, err := c.SummarizeTransactions(sales)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	purchaseSum, err := c.SummarizeTransactions(purchases)
	if err != nil {
		return nil, fmt.Errorf("purchases: %w", err)
	}
	expenseSum, err := c.SummarizeTransactions(expenses)
	if err != nil {
		return nil, fmt.Errorf("expenses: %w", err)
	}

	if period == "" {
		period = FinancialQuarter(c.now())
	}

	output := salesSum.TotalTax
	input := purchaseSum.TotalTax.Add(expenseSum.TotalTax)
	net := decimal.Max(decimal.Zero, output.Sub(input))
	credit := decimal.Max(decimal.Zero, input.Sub(output))

	return &QuarterlyReturn{
		Period:           period,
		SalesSummary:     salesSum,
		PurchasesSummary: purchaseSum,
		ExpensesSummary:  expenseSum,
		TaxSummary: TaxSummary{
			OutputTax:       output,
			InputTax:        input,
			NetTaxLiability: net,
			InputTaxCredit:  credit,
			Payable:         net,
		},
		Documents: DocumentCounts{
			SalesCount:    len(sales),
			PurchaseCount: len(purchases),
			ExpenseCount:  len(expenses),
		},
	}, nil
}

// FinancialQuarter labels the Indian financial-year quarter containing t.
// The financial year starts on 1 April, so October 2026 is "FY2026-27 Q3".
func FinancialQuarter(t time.Time) string {
	year := t.Year()
	month := int(t.Month())
	start := year
	if month < 4 {
		start = year - 1
	}
	quarter := ((month+8)%12)/3 + 1
	return fmt.Sprintf("FY%d-%02d Q%d", start, (start+1)%100, quarter)
}
