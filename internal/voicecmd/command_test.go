package voicecmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/voicecmd"
)

func TestParse_Intents(t *testing.T) {
	tests := []struct {
		transcript string
		lang       string
		want       voicecmd.Intent
	}{
		{"Create invoice for Sharma ji", "en", voicecmd.IntentCreateInvoice},
		{"please make invoice", "en-IN", voicecmd.IntentCreateInvoice},
		{"Search for invoice INV-001", "en", voicecmd.IntentSearchInvoice},
		{"find invoice 42", "en", voicecmd.IntentSearchInvoice},
		{"add expense of 2000 for rent", "en", voicecmd.IntentAddExpense},
		{"record sale 5000", "en", voicecmd.IntentRecordSale},
		{"show reports", "en", voicecmd.IntentViewReports},
		{"calculate GST on 1000 rupees", "en", voicecmd.IntentCalculateGST},
		{"what is my balance", "en", voicecmd.IntentCheckBalance},
		{"go to dashboard", "en", voicecmd.IntentDashboard},
		{"what can I do", "en", voicecmd.IntentHelp},
		{"5000 रुपये की बिक्री", "hi", voicecmd.IntentRecordSale},
		{"2000 रुपये का खर्च", "hi", voicecmd.IntentAddExpense},
		{"मेरा बैलेंस बताओ", "hi", voicecmd.IntentCheckBalance},
		{"10000 रुपये पर जीएसटी", "hi", voicecmd.IntentCalculateGST},
		{"नया बिल बनाओ", "hi", voicecmd.IntentCreateInvoice},
		{"बिल खोजो INV-7", "hi", voicecmd.IntentSearchInvoice},
		{"calculate gst on 500", "hi", voicecmd.IntentCalculateGST},
		{"play some music", "en", voicecmd.IntentUnknown},
		{"   ", "en", voicecmd.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			assert.Equal(t, tt.want, voicecmd.Parse(tt.transcript, tt.lang).Intent)
		})
	}
}

func TestParse_Extraction(t *testing.T) {
	t.Run("amount_and_rate", func(t *testing.T) {
		cmd := voicecmd.Parse("calculate 12% gst on 1,00,000.50", "en")
		require.NotNil(t, cmd.RatePercent)
		require.NotNil(t, cmd.Amount)
		assert.Equal(t, "12", cmd.RatePercent.String())
		assert.Equal(t, "100000.5", cmd.Amount.String())
		assert.Equal(t, "gst on", cmd.Phrase)
	})

	t.Run("rate_in_words", func(t *testing.T) {
		cmd := voicecmd.Parse("gst on 2500 at 5 percent", "en")
		require.NotNil(t, cmd.RatePercent)
		assert.Equal(t, "5", cmd.RatePercent.String())
		assert.Equal(t, "2500", cmd.Amount.String())
	})

	t.Run("invoice_number_not_read_as_amount", func(t *testing.T) {
		cmd := voicecmd.Parse("search for invoice inv-001", "en")
		assert.Equal(t, "INV-001", cmd.InvoiceNumber)
		assert.Nil(t, cmd.Amount)
	})

	t.Run("bare_invoice_word_when_searching", func(t *testing.T) {
		cmd := voicecmd.Parse("find invoice 42", "en")
		assert.Equal(t, "42", cmd.InvoiceNumber)
		assert.Nil(t, cmd.Amount)
	})

	t.Run("bare_invoice_word_otherwise_is_amount", func(t *testing.T) {
		cmd := voicecmd.Parse("create invoice 5000", "en")
		assert.Empty(t, cmd.InvoiceNumber)
		require.NotNil(t, cmd.Amount)
		assert.Equal(t, "5000", cmd.Amount.String())
	})

	t.Run("invoice_reference_is_not_the_amount", func(t *testing.T) {
		cmd := voicecmd.Parse("add expense for invoice 12 of 500", "en")
		assert.Equal(t, voicecmd.IntentAddExpense, cmd.Intent)
		assert.Empty(t, cmd.InvoiceNumber)
		require.NotNil(t, cmd.Amount)
		assert.Equal(t, "500", cmd.Amount.String())
	})

	t.Run("invoice_reference_with_rate", func(t *testing.T) {
		cmd := voicecmd.Parse("record sale invoice 7 of 1,200 at 12%", "en")
		assert.Equal(t, voicecmd.IntentRecordSale, cmd.Intent)
		require.NotNil(t, cmd.Amount)
		assert.Equal(t, "1200", cmd.Amount.String())
		require.NotNil(t, cmd.RatePercent)
		assert.Equal(t, "12", cmd.RatePercent.String())
	})

	t.Run("devanagari_digits", func(t *testing.T) {
		cmd := voicecmd.Parse("५००० रुपये की बिक्री", "hi")
		require.NotNil(t, cmd.Amount)
		assert.Equal(t, "5000", cmd.Amount.String())
	})

	t.Run("hindi_percent", func(t *testing.T) {
		cmd := voicecmd.Parse("1000 पर 28 प्रतिशत जीएसटी", "hi")
		require.NotNil(t, cmd.RatePercent)
		assert.Equal(t, "28", cmd.RatePercent.String())
		assert.Equal(t, "1000", cmd.Amount.String())
	})
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "en", voicecmd.NormalizeLanguage("en-IN"))
	assert.Equal(t, "en", voicecmd.NormalizeLanguage("EN"))
	assert.Equal(t, "hi", voicecmd.NormalizeLanguage("hi-IN"))
	assert.Equal(t, "hi", voicecmd.NormalizeLanguage(""))
	assert.Equal(t, "hi", voicecmd.NormalizeLanguage("ta"))
}
