package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"voicegst/internal/csvexport"
	"voicegst/internal/domain"
	"voicegst/internal/gst"
	"voicegst/internal/metrics"
	"voicegst/internal/service"
	"voicegst/internal/voicecmd"
	"voicegst/internal/xlsxexport"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newService(t *testing.T, opts ...gst.Option) (service.GSTService, *metrics.Metrics, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New()
	return service.NewGSTService(gst.NewCalculator(opts...), m, zap.New(core)), m, logs
}

func countSeries(t *testing.T, m *metrics.Metrics) int {
	t.Helper()
	n, err := testutil.GatherAndCount(m.Registry(), "gst_calculations_total")
	require.NoError(t, err)
	return n
}

func sampleInvoices() []gst.Invoice {
	return []gst.Invoice{
		{InvoiceNumber: "INV-001", CustomerGSTIN: "27AAPFU0939F1ZV", Subtotal: dec("1000"), TaxAmount: dec("180"), TotalAmount: dec("1180")},
		{InvoiceNumber: "INV-002", Subtotal: dec("200"), TaxAmount: dec("10"), TotalAmount: dec("210")},
	}
}

func TestGSTService_Calculate(t *testing.T) {
	svc, m, _ := newService(t)

	res, err := svc.Calculate(context.Background(), dec("1000"), gst.RateOf(dec("18")), "")
	require.NoError(t, err)
	assert.Equal(t, gst.MethodCGSTSGST, res.Method)
	assert.True(t, res.TaxAmount.Equal(dec("180")))

	res, err = svc.Calculate(context.Background(), dec("1000"), gst.RateOf(dec("18")), "igst")
	require.NoError(t, err)
	assert.Len(t, res.Components, 1)

	assert.Equal(t, 1, countSeries(t, m))
}

func TestGSTService_CalculateRejected(t *testing.T) {
	svc, m, logs := newService(t)
	ctx := domain.WithRequestID(context.Background(), "req-1")

	_, err := svc.Calculate(ctx, dec("100"), gst.Rate{}, "vat")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.ReverseCalculate(ctx, dec("0"), gst.Rate{}, "")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, 2, countSeries(t, m))

	rejected := logs.FilterMessage("gst operation rejected").All()
	require.Len(t, rejected, 2)
	assert.Equal(t, "req-1", rejected[0].ContextMap()["request_id"])
	assert.Equal(t, service.OpCalculate, rejected[0].ContextMap()["operation"])
}

func TestGSTService_WarningsAreLogged(t *testing.T) {
	svc, _, logs := newService(t)

	res, err := svc.Calculate(context.Background(), dec("100"), gst.RateFromString("abc"), "")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, logs.FilterMessage("gst operation completed with warnings").Len())
}

func TestGSTService_StrictRates(t *testing.T) {
	svc, _, _ := newService(t, gst.WithStrictRates(true))

	_, err := svc.CalculateItems(context.Background(), []gst.LineItem{{Amount: dec("1"), TaxRatePercent: gst.RateFromString("x")}}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGSTService_QuarterlyReturn(t *testing.T) {
	svc, _, _ := newService(t)

	ret, err := svc.QuarterlyReturn(context.Background(), "FY2026-27 Q2",
		[]gst.Transaction{{Amount: dec("1000"), TaxAmount: dec("180")}},
		[]gst.Transaction{{Amount: dec("500"), TaxAmount: dec("90")}},
		nil,
	)
	require.NoError(t, err)
	assert.True(t, ret.TaxSummary.Payable.Equal(dec("90")))
}

func TestGSTService_ValidateGSTIN(t *testing.T) {
	svc, _, _ := newService(t)

	check := svc.ValidateGSTIN(context.Background(), "27AAPFU0939F1ZV")
	assert.True(t, check.Valid)
	assert.Equal(t, "Maharashtra", check.Details.StateName)

	check = svc.ValidateGSTIN(context.Background(), "invalid")
	assert.False(t, check.Valid)
}

func TestGSTService_Rates(t *testing.T) {
	svc, _, _ := newService(t, gst.WithDefaultRate(dec("12")))

	cat := svc.Rates(context.Background())
	assert.True(t, cat.DefaultRatePercent.Equal(dec("12")))
	assert.Len(t, cat.Slabs, 5)
	require.Len(t, cat.Categories, 6)
	assert.Equal(t, "books", cat.Categories[0].Category)
	assert.Len(t, cat.Methods, 2)
}

func TestGSTService_CategoryRate(t *testing.T) {
	svc, _, _ := newService(t, gst.WithDefaultRate(dec("12")))

	got := svc.CategoryRate(context.Background(), " Food ")
	assert.Equal(t, "food", got.Category)
	assert.True(t, got.Matched)
	assert.True(t, got.RatePercent.IsZero())

	got = svc.CategoryRate(context.Background(), "furniture")
	assert.False(t, got.Matched)
	assert.True(t, got.RatePercent.Equal(dec("12")), "unknown categories take the configured default")
}

func TestGSTService_MethodForStates(t *testing.T) {
	svc, _, _ := newService(t)

	choice, err := svc.MethodForStates(context.Background(), "27", "29")
	require.NoError(t, err)
	assert.Equal(t, gst.MethodIGST, choice.Method)
	assert.NotEmpty(t, choice.Description)

	_, err = svc.MethodForStates(context.Background(), "", "29")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGSTService_GSTR1(t *testing.T) {
	svc, _, _ := newService(t)

	report, err := svc.GSTR1(context.Background(), sampleInvoices(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.B2BCount)
	assert.Equal(t, 1, report.Summary.B2CSCount)
}

func TestGSTService_ExportCSV(t *testing.T) {
	svc, _, _ := newService(t)

	out, err := svc.ExportGSTR1(context.Background(), sampleInvoices(), false, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Filename, "gstr1_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".csv"))
	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out.Data, csvexport.BOM))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestGSTService_ExportXLSX(t *testing.T) {
	svc, _, _ := newService(t)

	out, err := svc.ExportGSTR1(context.Background(), sampleInvoices(), false, "XLSX")
	require.NoError(t, err)
	assert.Equal(t, xlsxexport.ContentType, out.ContentType)
	assert.True(t, strings.HasSuffix(out.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(out.Data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Contains(t, f.GetSheetList(), xlsxexport.SheetSummary)
}

func TestGSTService_ExportUnsupportedFormat(t *testing.T) {
	svc, m, _ := newService(t)

	_, err := svc.ExportGSTR1(context.Background(), sampleInvoices(), false, "pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Equal(t, 1, countSeries(t, m))
}

func TestGSTService_ExportCancelled(t *testing.T) {
	svc, _, logs := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ExportGSTR1(ctx, sampleInvoices(), false, "csv")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, logs.FilterMessage("gst operation failed").Len())
}

func TestGSTService_Interpret(t *testing.T) {
	svc, _, logs := newService(t)

	out, err := svc.Interpret(context.Background(), "calculate gst on 500", "en-IN")
	require.NoError(t, err)
	assert.Equal(t, voicecmd.IntentCalculateGST, out.Intent)
	require.NotNil(t, out.Calculation)
	assert.True(t, out.Calculation.TaxAmount.Equal(dec("90")))

	entries := logs.FilterMessage("gst operation completed").All()
	require.NotEmpty(t, entries)
	assert.Equal(t, "calculate_gst", entries[len(entries)-1].ContextMap()["intent"])
}
