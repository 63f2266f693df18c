package voicecmd_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/domain"
	"voicegst/internal/gst"
	"voicegst/internal/voicecmd"
)

func TestInterpret_GSTWithAmount(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	out, err := i.Interpret("calculate gst on 10000 rupees", "en")
	require.NoError(t, err)

	require.NotNil(t, out.Calculation)
	assert.Equal(t, voicecmd.IntentCalculateGST, out.Intent)
	assert.Equal(t, "1800", out.Calculation.TaxAmount.String())
	assert.Equal(t, "GST at 18% on ₹10,000.00 is ₹1,800.00, total ₹11,800.00", out.Response)
}

func TestInterpret_GSTHindiWithRate(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	out, err := i.Interpret("1000 रुपये पर 5% जीएसटी", "hi")
	require.NoError(t, err)

	require.NotNil(t, out.Calculation)
	assert.Equal(t, "50", out.Calculation.TaxAmount.String())
	assert.Equal(t, "₹1,000.00 पर 5% जीएसटी ₹50.00 लगेगा, कुल ₹1,050.00", out.Response)
}

func TestInterpret_GSTWithoutAmountPrompts(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	out, err := i.Interpret("compute gst", "en")
	require.NoError(t, err)
	assert.Nil(t, out.Calculation)
	assert.Contains(t, out.Response, "Please specify an amount")
}

func TestInterpret_RateOutOfRange(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	_, err := i.Interpret("calculate gst on 100 at 150%", "en")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestInterpret_OtherIntents(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	tests := []struct {
		transcript string
		lang       string
		want       string
	}{
		{"search for invoice INV-001", "en", "Searching for invoice INV-001"},
		{"record sale 5000", "en", "Opening sale entry form for ₹5,000.00"},
		{"2000 रुपये का खर्च", "hi", "खर्च दर्ज करने का फॉर्म खुल रहा है: ₹2,000.00"},
		{"go to dashboard", "en", "Opening dashboard"},
		{"sing a song", "en", "Command not understood"},
		{"गाना सुनाओ", "hi", "आदेश समझ नहीं आया"},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			out, err := i.Interpret(tt.transcript, tt.lang)
			require.NoError(t, err)
			assert.Nil(t, out.Calculation)
			assert.Equal(t, tt.want, out.Response)
		})
	}
}

func TestInterpret_EmptyTranscript(t *testing.T) {
	i := voicecmd.NewInterpreter(gst.NewCalculator())

	_, err := i.Interpret("  ", "en")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999.999", "₹1,000.00"},
		{"1000", "₹1,000.00"},
		{"100000", "₹1,00,000.00"},
		{"12345678.9", "₹1,23,45,678.90"},
		{"-2500.5", "-₹2,500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, voicecmd.FormatINR(decimal.RequireFromString(tt.in)))
		})
	}
}
