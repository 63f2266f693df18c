package handler

import (
	"github.com/shopspring/decimal"

	"voicegst/internal/gst"
)

// Request bodies. Decimal fields accept JSON numbers or numeric strings;
// rate fields additionally accept a trailing "%".

// CalculateRequest is the body of POST /gst/calculate.
type CalculateRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"`
	RatePercent gst.Rate        `json:"ratePercent" swaggertype:"string" example:"18"`
	Method      string          `json:"method" example:"CGST+SGST"`
}

// ReverseCalculateRequest is the body of POST /gst/calculate-reverse.
type ReverseCalculateRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"1180"`
	RatePercent gst.Rate        `json:"ratePercent" swaggertype:"string" example:"18"`
	Method      string          `json:"method" example:"IGST"`
}

// CalculateItemsRequest is the body of POST /gst/calculate-items.
type CalculateItemsRequest struct {
	Items  []gst.LineItem `json:"items"`
	Method string         `json:"method" example:"CGST+SGST"`
}

// QuarterlyReturnRequest is the body of POST /gst/quarterly-return.
type QuarterlyReturnRequest struct {
	Period    string            `json:"period" example:"FY2026-27 Q2"`
	Sales     []gst.Transaction `json:"sales"`
	Purchases []gst.Transaction `json:"purchases"`
	Expenses  []gst.Transaction `json:"expenses"`
}

// GSTR1Request is the body of POST /gst/gstr1 and /gst/gstr1/export.
type GSTR1Request struct {
	Invoices    []gst.Invoice `json:"invoices"`
	StrictGSTIN bool          `json:"strictGstin"`
}

// InterpretRequest is the body of POST /commands/interpret.
type InterpretRequest struct {
	Transcript string `json:"transcript" binding:"required" example:"calculate gst on 10000 rupees"`
	Language   string `json:"language" example:"en-IN"`
}
