package voicecmd

import (
	"fmt"
	"strings"

	"voicegst/internal/domain"
	"voicegst/internal/gst"
)

// Interpretation is a parsed command plus the reply for the user. GST
// intents that name an amount carry the calculation.
type Interpretation struct {
	Command
	Calculation *gst.CalculationResult `json:"calculation,omitempty"`
	Response    string                 `json:"response"`
}

// Interpreter answers transcripts. GST questions are computed with the
// calculator; other intents get a confirmation of the action to take.
type Interpreter struct {
	calc *gst.Calculator
}

// NewInterpreter creates an Interpreter backed by calc.
func NewInterpreter(calc *gst.Calculator) *Interpreter {
	return &Interpreter{calc: calc}
}

// Interpret parses transcript and builds the reply in the command's language.
func (i *Interpreter) Interpret(transcript, language string) (*Interpretation, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("%w: transcript is empty", domain.ErrInvalidArgument)
	}

	cmd := Parse(transcript, language)
	out := &Interpretation{Command: cmd}

	if cmd.Intent == IntentCalculateGST && cmd.Amount != nil && cmd.Amount.IsPositive() {
		rate := gst.Rate{}
		if cmd.RatePercent != nil {
			rate = gst.RateOf(*cmd.RatePercent)
		}
		res, err := i.calc.Calculate(*cmd.Amount, rate, gst.MethodCGSTSGST)
		if err != nil {
			return nil, err
		}
		out.Calculation = res
		out.Response = gstReply(cmd.Language, res)
		return out, nil
	}

	out.Response = reply(cmd)
	return out, nil
}

func gstReply(lang string, res *gst.CalculationResult) string {
	if lang == LanguageHindi {
		return fmt.Sprintf("%s पर %s%% जीएसटी %s लगेगा, कुल %s",
			FormatINR(res.OriginalAmount), res.TaxRatePercent, FormatINR(res.TaxAmount), FormatINR(res.TotalAmount))
	}
	return fmt.Sprintf("GST at %s%% on %s is %s, total %s",
		res.TaxRatePercent, FormatINR(res.OriginalAmount), FormatINR(res.TaxAmount), FormatINR(res.TotalAmount))
}

var englishReplies = map[Intent]string{
	IntentCalculateGST:  `Please specify an amount. For example: "Calculate GST for 1000 rupees"`,
	IntentSearchInvoice: `Please specify an invoice number. For example: "Search for invoice INV-001"`,
	IntentCreateInvoice: "Opening invoice creation form",
	IntentAddExpense:    "Opening expense entry form",
	IntentRecordSale:    "Opening sale entry form",
	IntentViewReports:   "Showing latest reports",
	IntentCheckBalance:  "Showing your balance",
	IntentDashboard:     "Opening dashboard",
	IntentHelp:          "You can say: create invoice, add expense, calculate GST on 1000, search invoice INV-001, view reports",
	IntentUnknown:       "Command not understood",
}

var hindiReplies = map[Intent]string{
	IntentCalculateGST:  "कृपया राशि बताएं, जैसे: 1000 रुपये पर जीएसटी",
	IntentSearchInvoice: "कृपया बिल संख्या बताएं, जैसे: बिल INV-001 खोजो",
	IntentCreateInvoice: "नया बिल बनाया जा रहा है",
	IntentAddExpense:    "खर्च दर्ज करने का फॉर्म खुल रहा है",
	IntentRecordSale:    "बिक्री दर्ज करने का फॉर्म खुल रहा है",
	IntentViewReports:   "रिपोर्ट दिखाई जा रही है",
	IntentCheckBalance:  "आपका बैलेंस दिखाया जा रहा है",
	IntentDashboard:     "डैशबोर्ड खुल रहा है",
	IntentHelp:          "आप बोल सकते हैं: बिक्री, खर्च, बैलेंस, जीएसटी, बिल",
	IntentUnknown:       "आदेश समझ नहीं आया",
}

func reply(cmd Command) string {
	replies := englishReplies
	if cmd.Language == LanguageHindi {
		replies = hindiReplies
	}

	switch {
	case cmd.Intent == IntentSearchInvoice && cmd.InvoiceNumber != "":
		if cmd.Language == LanguageHindi {
			return fmt.Sprintf("बिल %s खोजा जा रहा है", cmd.InvoiceNumber)
		}
		return fmt.Sprintf("Searching for invoice %s", cmd.InvoiceNumber)
	case (cmd.Intent == IntentRecordSale || cmd.Intent == IntentAddExpense) && cmd.Amount != nil:
		if cmd.Language == LanguageHindi {
			return fmt.Sprintf("%s: %s", replies[cmd.Intent], FormatINR(*cmd.Amount))
		}
		return fmt.Sprintf("%s for %s", replies[cmd.Intent], FormatINR(*cmd.Amount))
	}
	return replies[cmd.Intent]
}
