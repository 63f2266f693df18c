package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"voicegst/internal/gst"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Section names as written in the first column.
const (
	SectionB2B  = "B2B"
	SectionB2CS = "B2CS"
)

// columns defines the CSV header row (11 columns).
var columns = []string{
	"Section",
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

// Columns returns a copy of the header row.
func Columns() []string {
	return append([]string(nil), columns...)
}

// Writer wraps csv.Writer for exporting GSTR-1 entries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries writes one row per entry, tagged with section.
func (w *Writer) WriteEntries(section string, entries []gst.GSTR1Entry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(section, &entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteGSTR1 writes the BOM, the header and both sections, then flushes.
func WriteGSTR1(out io.Writer, report *gst.GSTR1) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteEntries(SectionB2B, report.B2B); err != nil {
		return err
	}
	if err := w.WriteEntries(SectionB2CS, report.B2CS); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(section string, e *gst.GSTR1Entry) []string {
	return []string{
		section,
		e.InvoiceNumber,
		e.Date,
		e.CustomerName,
		e.CustomerGSTIN,
		e.PlaceOfSupply,
		FormatMoney(e.TaxableValue),
		FormatMoney(e.TaxAmount),
		FormatMoney(e.TotalAmount),
		strconv.Itoa(len(e.Items)),
		strings.Join(e.Warnings, "; "),
	}
}

// FormatMoney renders d with exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string, now time.Time) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "export"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), ext)
}
