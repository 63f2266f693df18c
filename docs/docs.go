// Package docs holds the swagger document served at /swagger/index.html.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/gst/calculate": {
            "post": {
                "description": "Computes tax on a tax-exclusive amount and splits it into components",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Calculate GST",
                "parameters": [
                    {
                        "description": "Amount, rate and method",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CalculateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/gst.CalculationResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/calculate-reverse": {
            "post": {
                "description": "Derives the tax-exclusive amount from a tax-inclusive total",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Reverse-calculate GST",
                "parameters": [
                    {
                        "description": "Total, rate and method",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ReverseCalculateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/gst.CalculationResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/calculate-items": {
            "post": {
                "description": "Prices each item at its own rate and aggregates the components per rate",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Calculate GST for line items",
                "parameters": [
                    {
                        "description": "Items and method",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CalculateItemsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/gst.ItemsResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/quarterly-return": {
            "post": {
                "description": "Summarises sales, purchases and expenses and computes the net liability or credit",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Quarterly return summary",
                "parameters": [
                    {
                        "description": "Transactions for the period",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.QuarterlyReturnRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/gst.QuarterlyReturn"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/gstr1": {
            "post": {
                "description": "Splits invoices into B2B and B2C (small) sections by customer GSTIN",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gstr1"
                ],
                "summary": "Build GSTR-1 data",
                "parameters": [
                    {
                        "description": "Invoices",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GSTR1Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/gst.GSTR1"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/commands/interpret": {
            "post": {
                "description": "Resolves an English or Hindi transcript to an intent. GST questions that name an amount are answered with a calculation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "commands"
                ],
                "summary": "Interpret a transcript",
                "parameters": [
                    {
                        "description": "Transcript and language",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.InterpretRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/voicecmd.Interpretation"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/gstr1/export": {
            "post": {
                "description": "Downloads the GSTR-1 sections as CSV (UTF-8 with BOM) or an XLSX workbook",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "gstr1"
                ],
                "summary": "Export GSTR-1 data",
                "parameters": [
                    {
                        "type": "string",
                        "default": "csv",
                        "description": "csv or xlsx",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "description": "Invoices",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GSTR1Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/validate/{gstin}": {
            "get": {
                "description": "Checks the GSTIN format and decodes state, PAN and checksum. With strict=true an invalid GSTIN answers 400.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Validate a GSTIN",
                "parameters": [
                    {
                        "type": "string",
                        "description": "GSTIN",
                        "name": "gstin",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "default": false,
                        "description": "Reject invalid GSTINs with 400",
                        "name": "strict",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.GSTINCheck"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        },
        "/gst/rates": {
            "get": {
                "description": "Lists the recognised slabs, category rates and calculation methods",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "List GST rates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.RateCatalogue"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/gst/rates/categories/{category}": {
            "get": {
                "description": "Unknown categories return the default rate with matched=false",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Rate for a product category",
                "parameters": [
                    {
                        "type": "string",
                        "example": "electronics",
                        "description": "Product category",
                        "name": "category",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.CategoryRate"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/gst/method": {
            "get": {
                "description": "CGST+SGST for intra-state supply, IGST otherwise. Either parameter may be a state code or a GSTIN.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Choose the calculation method",
                "parameters": [
                    {
                        "type": "string",
                        "example": "27",
                        "description": "Supplier state code or GSTIN",
                        "name": "supplierState",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "example": "29",
                        "description": "Place of supply state code or GSTIN",
                        "name": "placeOfSupply",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handler.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.MethodChoice"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.APIResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "data": {},
                "error": {
                    "$ref": "#/definitions/handler.APIError"
                }
            }
        },
        "handler.CalculateRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "1000"
                },
                "ratePercent": {
                    "type": "string",
                    "example": "18"
                },
                "method": {
                    "type": "string",
                    "example": "CGST+SGST"
                }
            }
        },
        "handler.ReverseCalculateRequest": {
            "type": "object",
            "properties": {
                "totalAmount": {
                    "type": "string",
                    "example": "1180"
                },
                "ratePercent": {
                    "type": "string",
                    "example": "18"
                },
                "method": {
                    "type": "string",
                    "example": "IGST"
                }
            }
        },
        "handler.CalculateItemsRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.LineItem"
                    }
                },
                "method": {
                    "type": "string",
                    "example": "CGST+SGST"
                }
            }
        },
        "handler.QuarterlyReturnRequest": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string",
                    "example": "FY2026-27 Q2"
                },
                "sales": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Transaction"
                    }
                },
                "purchases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Transaction"
                    }
                },
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Transaction"
                    }
                }
            }
        },
        "handler.GSTR1Request": {
            "type": "object",
            "properties": {
                "invoices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Invoice"
                    }
                },
                "strictGstin": {
                    "type": "boolean"
                }
            }
        },
        "handler.InterpretRequest": {
            "type": "object",
            "required": [
                "transcript"
            ],
            "properties": {
                "transcript": {
                    "type": "string",
                    "example": "calculate gst on 10000 rupees"
                },
                "language": {
                    "type": "string",
                    "example": "en-IN"
                }
            }
        },
        "gst.Component": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "ratePercent": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                }
            }
        },
        "gst.Breakdown": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "type": "string"
                },
                "tax": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "gst.CalculationResult": {
            "type": "object",
            "properties": {
                "originalAmount": {
                    "type": "string"
                },
                "taxRatePercent": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "components": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Component"
                    }
                },
                "breakdown": {
                    "$ref": "#/definitions/gst.Breakdown"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gst.LineItem": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                },
                "unitAmount": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "taxRatePercent": {
                    "type": "string"
                }
            }
        },
        "gst.PricedItem": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                },
                "unitAmount": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "taxRatePercent": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "components": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Component"
                    }
                }
            }
        },
        "gst.ItemsResult": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.PricedItem"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/gst.Breakdown"
                },
                "method": {
                    "type": "string"
                },
                "components": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.Component"
                    }
                },
                "breakdown": {
                    "type": "object",
                    "properties": {
                        "itemCount": {
                            "type": "integer"
                        },
                        "averageTaxRatePercent": {
                            "type": "string"
                        }
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gst.Transaction": {
            "type": "object",
            "properties": {
                "invoiceNumber": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                },
                "taxRatePercent": {
                    "type": "string"
                }
            }
        },
        "gst.TransactionSummary": {
            "type": "object",
            "properties": {
                "totalAmount": {
                    "type": "string"
                },
                "totalTax": {
                    "type": "string"
                },
                "totalWithTax": {
                    "type": "string"
                },
                "rateSummary": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "properties": {
                            "count": {
                                "type": "integer"
                            },
                            "amount": {
                                "type": "string"
                            },
                            "tax": {
                                "type": "string"
                            }
                        }
                    }
                },
                "averageTaxRatePercent": {
                    "type": "string"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gst.QuarterlyReturn": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "salesSummary": {
                    "$ref": "#/definitions/gst.TransactionSummary"
                },
                "purchasesSummary": {
                    "$ref": "#/definitions/gst.TransactionSummary"
                },
                "expensesSummary": {
                    "$ref": "#/definitions/gst.TransactionSummary"
                },
                "taxSummary": {
                    "type": "object",
                    "properties": {
                        "outputTax": {
                            "type": "string"
                        },
                        "inputTax": {
                            "type": "string"
                        },
                        "netTaxLiability": {
                            "type": "string"
                        },
                        "inputTaxCredit": {
                            "type": "string"
                        },
                        "payable": {
                            "type": "string"
                        }
                    }
                },
                "documents": {
                    "type": "object",
                    "properties": {
                        "salesCount": {
                            "type": "integer"
                        },
                        "purchaseCount": {
                            "type": "integer"
                        },
                        "expenseCount": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "gst.InvoiceItem": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string"
                },
                "unitPrice": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "taxRatePercent": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                }
            }
        },
        "gst.Invoice": {
            "type": "object",
            "properties": {
                "invoiceNumber": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "customerGSTIN": {
                    "type": "string"
                },
                "placeOfSupply": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.InvoiceItem"
                    }
                }
            }
        },
        "gst.GSTR1Entry": {
            "type": "object",
            "properties": {
                "invoiceNumber": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "customerGSTIN": {
                    "type": "string"
                },
                "placeOfSupply": {
                    "type": "string"
                },
                "taxableValue": {
                    "type": "string"
                },
                "taxAmount": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.InvoiceItem"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gst.GSTR1": {
            "type": "object",
            "properties": {
                "b2b": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.GSTR1Entry"
                    }
                },
                "b2cs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gst.GSTR1Entry"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "totalTaxableValue": {
                            "type": "string"
                        },
                        "totalTaxLiability": {
                            "type": "string"
                        },
                        "invoiceCount": {
                            "type": "integer"
                        },
                        "b2bCount": {
                            "type": "integer"
                        },
                        "b2csCount": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "gst.GSTINDetails": {
            "type": "object",
            "properties": {
                "gstin": {
                    "type": "string"
                },
                "valid": {
                    "type": "boolean"
                },
                "stateCode": {
                    "type": "string"
                },
                "stateName": {
                    "type": "string"
                },
                "pan": {
                    "type": "string"
                },
                "entityNumber": {
                    "type": "string"
                },
                "checksumValid": {
                    "type": "boolean"
                }
            }
        },
        "service.GSTINCheck": {
            "type": "object",
            "properties": {
                "valid": {
                    "type": "boolean"
                },
                "details": {
                    "$ref": "#/definitions/gst.GSTINDetails"
                }
            }
        },
        "service.CategoryRate": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "ratePercent": {
                    "type": "string"
                },
                "matched": {
                    "type": "boolean"
                }
            }
        },
        "service.MethodChoice": {
            "type": "object",
            "properties": {
                "supplierState": {
                    "type": "string"
                },
                "placeOfSupply": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "service.RateCatalogue": {
            "type": "object",
            "properties": {
                "defaultRatePercent": {
                    "type": "string"
                },
                "slabs": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "ratePercent": {
                                "type": "string"
                            },
                            "label": {
                                "type": "string"
                            }
                        }
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.CategoryRate"
                    }
                },
                "methods": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "method": {
                                "type": "string"
                            },
                            "description": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "voicecmd.Command": {
            "type": "object",
            "properties": {
                "intent": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "phrase": {
                    "type": "string"
                },
                "transcript": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "ratePercent": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                }
            }
        },
        "voicecmd.Interpretation": {
            "type": "object",
            "properties": {
                "intent": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "phrase": {
                    "type": "string"
                },
                "transcript": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "ratePercent": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "calculation": {
                    "$ref": "#/definitions/gst.CalculationResult"
                },
                "response": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "VoiceGST API",
	Description:      "GST calculation, GSTIN validation, GSTR-1 export and voice command interpretation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
