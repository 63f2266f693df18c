package gst_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/domain"
	"voicegst/internal/gst"
)

func TestRate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantOK  bool
		want    string
	}{
		{name: "number", body: `{"r": 18}`, wantSet: true, wantOK: true, want: "18"},
		{name: "fraction", body: `{"r": 0.25}`, wantSet: true, wantOK: true, want: "0.25"},
		{name: "string_percent", body: `{"r": "12%"}`, wantSet: true, wantOK: true, want: "12"},
		{name: "garbage_string", body: `{"r": "GST"}`, wantSet: true, wantOK: false},
		{name: "bool", body: `{"r": true}`, wantSet: true, wantOK: false},
		{name: "null", body: `{"r": null}`, wantSet: false, wantOK: false},
		{name: "absent", body: `{}`, wantSet: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				R gst.Rate `json:"r"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &v))
			assert.Equal(t, tt.wantSet, v.R.IsSet())

			got, ok := v.R.Parse()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assertDec(t, tt.want, got)
			}
		})
	}
}

func TestRate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A gst.Rate `json:"a"`
		B gst.Rate `json:"b"`
	}{A: gst.RateFromString("5%")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"5%","b":null}`, string(b))
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want gst.Method
	}{
		{"", gst.MethodCGSTSGST},
		{"CGST+SGST", gst.MethodCGSTSGST},
		{"cgst_sgst", gst.MethodCGSTSGST},
		{"intra", gst.MethodCGSTSGST},
		{"IGST", gst.MethodIGST},
		{" igst ", gst.MethodIGST},
		{"inter", gst.MethodIGST},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := gst.ParseMethod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.True(t, m.Valid())
			assert.NotEmpty(t, m.Description())
		})
	}

	_, err := gst.ParseMethod("VAT")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCommonRates(t *testing.T) {
	slabs := gst.CommonRates()
	require.Len(t, slabs, 5)
	assert.Equal(t, "0% - Exempt", slabs[0].Label)
	assertDec(t, "28", slabs[4].RatePercent)

	assert.True(t, gst.IsRecognisedSlab(dec("12")))
	assert.False(t, gst.IsRecognisedSlab(dec("3")))
}

func TestCategoryRate(t *testing.T) {
	tests := []struct {
		category    string
		want        string
		wantMatched bool
	}{
		{"food", "0", true},
		{"Books", "0", true},
		{"clothing", "5", true},
		{" electronics ", "18", true},
		{"luxury", "28", true},
		{"furniture", "18", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			rate, matched := gst.CategoryRate(tt.category)
			assert.Equal(t, tt.wantMatched, matched)
			assertDec(t, tt.want, rate)
		})
	}

	assert.Len(t, gst.Categories(), 6)
}
