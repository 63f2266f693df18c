package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"voicegst/internal/csvexport"
	"voicegst/internal/domain"
	"voicegst/internal/gst"
	"voicegst/internal/metrics"
	"voicegst/internal/voicecmd"
	"voicegst/internal/xlsxexport"
)

// Operation names used for logging and the gst_calculations_total metric.
const (
	OpCalculate       = "calculate"
	OpReverse         = "calculate_reverse"
	OpItems           = "calculate_items"
	OpQuarterlyReturn = "quarterly_return"
	OpValidateGSTIN   = "validate_gstin"
	OpMethodForStates = "method_for_states"
	OpGSTR1           = "gstr1"
	OpGSTR1Export     = "gstr1_export"
	OpInterpret       = "interpret"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// GSTINCheck is the result of validating a GSTIN.
type GSTINCheck struct {
	Valid   bool             `json:"valid"`
	Details gst.GSTINDetails `json:"details"`
}

// MethodInfo describes a calculation method.
type MethodInfo struct {
	Method      gst.Method `json:"method"`
	Description string     `json:"description"`
}

// RateCatalogue lists the recognised slabs, category rates and methods.
type RateCatalogue struct {
	DefaultRatePercent decimal.Decimal `json:"defaultRatePercent"`
	Slabs              []gst.Slab      `json:"slabs"`
	Categories         []CategoryRate  `json:"categories"`
	Methods            []MethodInfo    `json:"methods"`
}

// CategoryRate is the rate looked up for a product category. Matched is
// false when the category is unknown and the default rate was used.
type CategoryRate struct {
	Category    string          `json:"category"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Matched     bool            `json:"matched"`
}

// MethodChoice is the method chosen for a supplier state and place of supply.
type MethodChoice struct {
	SupplierState string     `json:"supplierState"`
	PlaceOfSupply string     `json:"placeOfSupply"`
	Method        gst.Method `json:"method"`
	Description   string     `json:"description"`
}

// Export is a rendered GSTR-1 file.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// GSTService exposes the calculator to transports.
type GSTService interface {
	Calculate(ctx context.Context, amount decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error)
	ReverseCalculate(ctx context.Context, total decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error)
	CalculateItems(ctx context.Context, items []gst.LineItem, method string) (*gst.ItemsResult, error)
	QuarterlyReturn(ctx context.Context, period string, sales, purchases, expenses []gst.Transaction) (*gst.QuarterlyReturn, error)
	ValidateGSTIN(ctx context.Context, gstin string) GSTINCheck
	Rates(ctx context.Context) RateCatalogue
	CategoryRate(ctx context.Context, category string) CategoryRate
	MethodForStates(ctx context.Context, supplierState, placeOfSupply string) (*MethodChoice, error)
	GSTR1(ctx context.Context, invoices []gst.Invoice, strict bool) (*gst.GSTR1, error)
	ExportGSTR1(ctx context.Context, invoices []gst.Invoice, strict bool, format string) (*Export, error)
	Interpret(ctx context.Context, transcript, language string) (*voicecmd.Interpretation, error)
}

type gstService struct {
	calc        *gst.Calculator
	interpreter *voicecmd.Interpreter
	metrics     *metrics.Metrics
	log         *zap.Logger
	now         func() time.Time
}

// NewGSTService creates a GSTService. m may be nil.
func NewGSTService(calc *gst.Calculator, m *metrics.Metrics, log *zap.Logger) GSTService {
	if log == nil {
		log = zap.NewNop()
	}
	return &gstService{
		calc:        calc,
		interpreter: voicecmd.NewInterpreter(calc),
		metrics:     m,
		log:         log,
		now:         time.Now,
	}
}

func (s *gstService) Calculate(ctx context.Context, amount decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error) {
	res, err := s.calculate(amount, rate, method, s.calc.Calculate)
	s.record(ctx, OpCalculate, err, warningsOf(res))
	return res, err
}

func (s *gstService) ReverseCalculate(ctx context.Context, total decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error) {
	res, err := s.calculate(total, rate, method, s.calc.ReverseCalculate)
	s.record(ctx, OpReverse, err, warningsOf(res))
	return res, err
}

func (s *gstService) calculate(
	amount decimal.Decimal, rate gst.Rate, method string,
	fn func(decimal.Decimal, gst.Rate, gst.Method) (*gst.CalculationResult, error),
) (*gst.CalculationResult, error) {
	m, err := gst.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return fn(amount, rate, m)
}

func (s *gstService) CalculateItems(ctx context.Context, items []gst.LineItem, method string) (*gst.ItemsResult, error) {
	res, err := func() (*gst.ItemsResult, error) {
		m, err := gst.ParseMethod(method)
		if err != nil {
			return nil, err
		}
		return s.calc.CalculateForItems(items, m)
	}()

	var warnings []string
	if res != nil {
		warnings = res.Warnings
	}
	s.record(ctx, OpItems, err, warnings, zap.Int("items", len(items)))
	return res, err
}

func (s *gstService) QuarterlyReturn(ctx context.Context, period string, sales, purchases, expenses []gst.Transaction) (*gst.QuarterlyReturn, error) {
	ret, err := s.calc.CalculateQuarterlyReturn(period, sales, purchases, expenses)

	var warnings []string
	if ret != nil {
		warnings = append(warnings, ret.SalesSummary.Warnings...)
		warnings = append(warnings, ret.PurchasesSummary.Warnings...)
		warnings = append(warnings, ret.ExpensesSummary.Warnings...)
	}
	s.record(ctx, OpQuarterlyReturn, err, warnings,
		zap.Int("sales", len(sales)),
		zap.Int("purchases", len(purchases)),
		zap.Int("expenses", len(expenses)),
	)
	return ret, err
}

func (s *gstService) ValidateGSTIN(ctx context.Context, gstin string) GSTINCheck {
	details := gst.InspectGSTIN(gstin)
	s.record(ctx, OpValidateGSTIN, nil, nil, zap.Bool("valid", details.Valid))
	return GSTINCheck{Valid: details.Valid, Details: details}
}

func (s *gstService) Rates(_ context.Context) RateCatalogue {
	table := gst.Categories()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]CategoryRate, 0, len(names))
	for _, name := range names {
		categories = append(categories, CategoryRate{Category: name, RatePercent: table[name], Matched: true})
	}

	return RateCatalogue{
		DefaultRatePercent: s.calc.DefaultRate(),
		Slabs:              gst.CommonRates(),
		Categories:         categories,
		Methods: []MethodInfo{
			{Method: gst.MethodCGSTSGST, Description: gst.MethodCGSTSGST.Description()},
			{Method: gst.MethodIGST, Description: gst.MethodIGST.Description()},
		},
	}
}

func (s *gstService) CategoryRate(_ context.Context, category string) CategoryRate {
	name := strings.ToLower(strings.TrimSpace(category))
	rate, matched := gst.CategoryRate(name)
	if !matched {
		rate = s.calc.DefaultRate()
	}
	return CategoryRate{Category: name, RatePercent: rate, Matched: matched}
}

func (s *gstService) MethodForStates(ctx context.Context, supplierState, placeOfSupply string) (*MethodChoice, error) {
	m, err := gst.MethodForStates(supplierState, placeOfSupply)
	s.record(ctx, OpMethodForStates, err, nil)
	if err != nil {
		return nil, err
	}
	return &MethodChoice{
		SupplierState: supplierState,
		PlaceOfSupply: placeOfSupply,
		Method:        m,
		Description:   m.Description(),
	}, nil
}

func (s *gstService) GSTR1(ctx context.Context, invoices []gst.Invoice, strict bool) (*gst.GSTR1, error) {
	report, err := gst.BuildGSTR1(invoices, strict)
	s.record(ctx, OpGSTR1, err, nil, zap.Int("invoices", len(invoices)), zap.Bool("strict", strict))
	return report, err
}

func (s *gstService) ExportGSTR1(ctx context.Context, invoices []gst.Invoice, strict bool, format string) (*Export, error) {
	out, err := s.export(ctx, invoices, strict, format)
	s.record(ctx, OpGSTR1Export, err, nil, zap.String("format", format), zap.Int("invoices", len(invoices)))
	return out, err
}

func (s *gstService) export(ctx context.Context, invoices []gst.Invoice, strict bool, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, fmt.Errorf("%w: %q; expected csv or xlsx", domain.ErrUnsupportedType, format)
	}

	report, err := gst.BuildGSTR1(invoices, strict)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	out := &Export{Filename: csvexport.BuildFilename("gstr1", format, s.now())}
	switch format {
	case FormatXLSX:
		err = xlsxexport.WriteGSTR1(&buf, report)
		out.ContentType = xlsxexport.ContentType
	default:
		err = csvexport.WriteGSTR1(&buf, report)
		out.ContentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	out.Data = buf.Bytes()
	return out, nil
}

func (s *gstService) Interpret(ctx context.Context, transcript, language string) (*voicecmd.Interpretation, error) {
	out, err := s.interpreter.Interpret(transcript, language)

	fields := []zap.Field{zap.String("language", voicecmd.NormalizeLanguage(language))}
	if out != nil {
		fields = append(fields, zap.String("intent", string(out.Intent)))
	}
	s.record(ctx, OpInterpret, err, nil, fields...)
	return out, err
}

// record counts the operation and logs rejected or failed calls. Client
// errors are logged at debug; anything else at error.
func (s *gstService) record(ctx context.Context, op string, err error, warnings []string, fields ...zap.Field) {
	s.metrics.RecordCalculation(op, err)

	fields = append(fields, zap.String("operation", op))
	if id := domain.RequestIDFrom(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	switch {
	case err == nil && len(warnings) > 0:
		s.log.Info("gst operation completed with warnings", append(fields, zap.Strings("warnings", warnings))...)
	case err == nil:
		s.log.Debug("gst operation completed", fields...)
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrUnsupportedType):
		s.log.Debug("gst operation rejected", append(fields, zap.Error(err))...)
	default:
		s.log.Error("gst operation failed", append(fields, zap.Error(err))...)
	}
}

func warningsOf(res *gst.CalculationResult) []string {
	if res == nil {
		return nil
	}
	return res.Warnings
}
