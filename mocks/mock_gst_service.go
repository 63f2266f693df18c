package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"voicegst/internal/gst"
	"voicegst/internal/service"
	"voicegst/internal/voicecmd"
)

// MockGSTService is a mock implementation of service.GSTService.
type MockGSTService struct {
	mock.Mock
}

func (m *MockGSTService) Calculate(ctx context.Context, amount decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error) {
	args := m.Called(ctx, amount, rate, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.CalculationResult), args.Error(1)
}

func (m *MockGSTService) ReverseCalculate(ctx context.Context, total decimal.Decimal, rate gst.Rate, method string) (*gst.CalculationResult, error) {
	args := m.Called(ctx, total, rate, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.CalculationResult), args.Error(1)
}

func (m *MockGSTService) CalculateItems(ctx context.Context, items []gst.LineItem, method string) (*gst.ItemsResult, error) {
	args := m.Called(ctx, items, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.ItemsResult), args.Error(1)
}

func (m *MockGSTService) QuarterlyReturn(ctx context.Context, period string, sales, purchases, expenses []gst.Transaction) (*gst.QuarterlyReturn, error) {
	args := m.Called(ctx, period, sales, purchases, expenses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.QuarterlyReturn), args.Error(1)
}

func (m *MockGSTService) ValidateGSTIN(ctx context.Context, gstin string) service.GSTINCheck {
	args := m.Called(ctx, gstin)
	return args.Get(0).(service.GSTINCheck)
}

func (m *MockGSTService) Rates(ctx context.Context) service.RateCatalogue {
	args := m.Called(ctx)
	return args.Get(0).(service.RateCatalogue)
}

func (m *MockGSTService) CategoryRate(ctx context.Context, category string) service.CategoryRate {
	args := m.Called(ctx, category)
	return args.Get(0).(service.CategoryRate)
}

func (m *MockGSTService) MethodForStates(ctx context.Context, supplierState, placeOfSupply string) (*service.MethodChoice, error) {
	args := m.Called(ctx, supplierState, placeOfSupply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MethodChoice), args.Error(1)
}

func (m *MockGSTService) GSTR1(ctx context.Context, invoices []gst.Invoice, strict bool) (*gst.GSTR1, error) {
	args := m.Called(ctx, invoices, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.GSTR1), args.Error(1)
}

func (m *MockGSTService) ExportGSTR1(ctx context.Context, invoices []gst.Invoice, strict bool, format string) (*service.Export, error) {
	args := m.Called(ctx, invoices, strict, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockGSTService) Interpret(ctx context.Context, transcript, language string) (*voicecmd.Interpretation, error) {
	args := m.Called(ctx, transcript, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voicecmd.Interpretation), args.Error(1)
}
