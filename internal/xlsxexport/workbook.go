// Package xlsxexport renders GSTR-1 data as an Excel workbook with one sheet
// per section and a summary sheet.
package xlsxexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"voicegst/internal/gst"
)

// Sheet names.
const (
	SheetB2B     = "b2b"
	SheetB2CS    = "b2cs"
	SheetSummary = "summary"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var entryHeader = []interface{}{
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Customer GSTIN",
	"Place of Supply",
	"Taxable Value",
	"Tax Amount",
	"Total Amount",
	"Line Item Count",
	"Warnings",
}

// money columns in entryHeader, 1-based.
const (
	firstMoneyCol = 6
	lastMoneyCol  = 8
)

// WriteGSTR1 builds the workbook for report and writes it to w.
func WriteGSTR1(w io.Writer, report *gst.GSTR1) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName(f.GetSheetName(0), SheetB2B); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeEntries(f, styles, SheetB2B, report.B2B); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetB2CS); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetB2CS, err)
	}
	if err := writeEntries(f, styles, SheetB2CS, report.B2CS); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetSummary, err)
	}
	if err := writeSummary(f, styles, &report.Summary); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type styles struct {
	header int
	money  int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles{}, fmt.Errorf("header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return styles{}, fmt.Errorf("money style: %w", err)
	}
	return styles{header: header, money: money}, nil
}

func writeEntries(f *excelize.File, st styles, sheet string, entries []gst.GSTR1Entry) error {
	if err := writeHeader(f, st, sheet, entryHeader); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.InvoiceNumber,
			e.Date,
			e.CustomerName,
			e.CustomerGSTIN,
			e.PlaceOfSupply,
			e.TaxableValue.InexactFloat64(),
			e.TaxAmount.InexactFloat64(),
			e.TotalAmount.InexactFloat64(),
			len(e.Items),
			strings.Join(e.Warnings, "; "),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, rowNum, err)
		}
	}

	if len(entries) == 0 {
		return nil
	}
	from, _ := excelize.CoordinatesToCellName(firstMoneyCol, 2)
	to, _ := excelize.CoordinatesToCellName(lastMoneyCol, len(entries)+1)
	return f.SetCellStyle(sheet, from, to, st.money)
}

func writeSummary(f *excelize.File, st styles, s *gst.GSTR1Summary) error {
	if err := writeHeader(f, st, SheetSummary, []interface{}{"Metric", "Value"}); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Invoice Count", s.InvoiceCount},
		{"B2B Count", s.B2BCount},
		{"B2CS Count", s.B2CSCount},
		{"Total Taxable Value", s.TotalTaxableValue.InexactFloat64()},
		{"Total Tax Liability", s.TotalTaxLiability.InexactFloat64()},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetSummary, cell, &rows[i]); err != nil {
			return fmt.Errorf("summary row %d: %w", i+2, err)
		}
	}
	return f.SetCellStyle(SheetSummary, "B5", "B6", st.money)
}

func writeHeader(f *excelize.File, st styles, sheet string, header []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	return f.SetCellStyle(sheet, "A1", last, st.header)
}
