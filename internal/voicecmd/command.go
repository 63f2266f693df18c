// Package voicecmd maps a recognised speech transcript onto an accounting
// intent and extracts the figures spoken with it.
package voicecmd

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Intent is the action a transcript asks for.
type Intent string

const (
	IntentCalculateGST  Intent = "calculate_gst"
	IntentSearchInvoice Intent = "search_invoice"
	IntentCreateInvoice Intent = "create_invoice"
	IntentAddExpense    Intent = "add_expense"
	IntentRecordSale    Intent = "record_sale"
	IntentViewReports   Intent = "view_reports"
	IntentCheckBalance  Intent = "check_balance"
	IntentDashboard     Intent = "go_to_dashboard"
	IntentHelp          Intent = "help"
	IntentUnknown       Intent = "unknown"
)

// Supported languages.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

type rule struct {
	intent  Intent
	phrases []string
}

// Multi-word phrases are tried before single keywords so that "search for
// invoice" wins over the bare "invoice" keyword.
var englishPhrases = []rule{
	{IntentCalculateGST, []string{"calculate gst", "gst calculation", "compute gst", "gst on"}},
	{IntentSearchInvoice, []string{"find invoice", "search invoice", "search for invoice", "look for invoice"}},
	{IntentCreateInvoice, []string{"create invoice", "make invoice", "new invoice"}},
	{IntentAddExpense, []string{"add expense", "record expense", "log expense"}},
	{IntentRecordSale, []string{"record sale", "add sale", "new sale"}},
	{IntentViewReports, []string{"show reports", "view reports", "see reports"}},
	{IntentDashboard, []string{"go to dashboard", "show dashboard"}},
	{IntentHelp, []string{"what can i do"}},
}

var englishKeywords = []rule{
	{IntentCalculateGST, []string{"gst"}},
	{IntentCreateInvoice, []string{"invoice"}},
	{IntentAddExpense, []string{"expense"}},
	{IntentRecordSale, []string{"sale"}},
	{IntentCheckBalance, []string{"balance"}},
	{IntentViewReports, []string{"report"}},
	{IntentDashboard, []string{"dashboard"}},
	{IntentHelp, []string{"help", "commands"}},
}

var hindiPhrases = []rule{
	{IntentSearchInvoice, []string{"बिल खोजो", "बिल खोजें", "बिल ढूंढो"}},
}

var hindiKeywords = []rule{
	{IntentCalculateGST, []string{"जीएसटी"}},
	{IntentRecordSale, []string{"बिक्री"}},
	{IntentAddExpense, []string{"खर्च"}},
	{IntentCheckBalance, []string{"बैलेंस"}},
	{IntentCreateInvoice, []string{"बिल"}},
	{IntentViewReports, []string{"रिपोर्ट"}},
	{IntentDashboard, []string{"डैशबोर्ड"}},
	{IntentHelp, []string{"मदद"}},
}

var (
	invoicePattern     = regexp.MustCompile(`(?i)\bINV-\d+\b`)
	invoiceWordPattern = regexp.MustCompile(`(?i)\binvoice\s+(?:number\s+)?([A-Z]*\d[\w-]*)`)
	ratePattern        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:%|percent\b|per cent\b|प्रतिशत)`)
	amountPattern      = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)
)

const devanagariZero = '०'

// Command is a transcript resolved to an intent with the figures it carries.
type Command struct {
	Intent        Intent           `json:"intent"`
	Language      string           `json:"language"`
	Phrase        string           `json:"phrase,omitempty"`
	Transcript    string           `json:"transcript"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	RatePercent   *decimal.Decimal `json:"ratePercent,omitempty"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
}

// NormalizeLanguage reduces a locale such as "en-IN" to its language code.
// Anything that is not English is treated as Hindi.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if lang == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageHindi
}

// Parse resolves transcript to a Command. The tables of the requested
// language are consulted first, then those of the other language, since
// spoken Hindi commonly mixes in English words.
func Parse(transcript, language string) Command {
	lang := NormalizeLanguage(language)
	cmd := Command{Intent: IntentUnknown, Language: lang, Transcript: transcript}

	text := strings.ToLower(strings.TrimSpace(asciiDigits(transcript)))
	if text == "" {
		return cmd
	}

	tables := [][]rule{englishPhrases, hindiPhrases, englishKeywords, hindiKeywords}
	if lang == LanguageHindi {
		tables = [][]rule{hindiPhrases, englishPhrases, hindiKeywords, englishKeywords}
	}
	cmd.Intent, cmd.Phrase = match(text, tables)

	extract(&cmd, asciiDigits(transcript))
	return cmd
}

func match(text string, tables [][]rule) (Intent, string) {
	for _, table := range tables {
		for _, r := range table {
			for _, p := range r.phrases {
				if strings.Contains(text, p) {
					return r.intent, p
				}
			}
		}
	}
	return IntentUnknown, ""
}

// extract pulls the invoice number, rate and amount out of text. Each match
// is blanked before the next search so that the digits of "INV-001" or
// "18%" are not read as the amount. A bare "invoice 42" is only read as an
// invoice number when searching; for other intents it is blanked as a
// reference unless it holds the only number in the text ("create invoice
// 5000").
func extract(cmd *Command, text string) {
	if loc := invoicePattern.FindStringIndex(text); loc != nil {
		cmd.InvoiceNumber = strings.ToUpper(text[loc[0]:loc[1]])
		text = blank(text, loc)
	} else if m := invoiceWordPattern.FindStringSubmatchIndex(text); m != nil {
		rest := blank(text, m[2:4])
		switch {
		case cmd.Intent == IntentSearchInvoice:
			cmd.InvoiceNumber = strings.ToUpper(text[m[2]:m[3]])
			text = rest
		case amountPattern.MatchString(rest):
			text = rest
		}
	}

	if m := ratePattern.FindStringSubmatchIndex(text); m != nil {
		if v, err := decimal.NewFromString(text[m[2]:m[3]]); err == nil {
			cmd.RatePercent = &v
		}
		text = blank(text, m[0:2])
	}

	if raw := amountPattern.FindString(text); raw != "" {
		if v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "")); err == nil {
			cmd.Amount = &v
		}
	}
}

func blank(s string, loc []int) string {
	return s[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + s[loc[1]:]
}

// asciiDigits rewrites Devanagari digits (०-९) as ASCII digits.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, s)
}
