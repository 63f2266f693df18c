package gst

import (
	"regexp"
	"strings"
)

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

const gstinAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// stateNames maps GST state codes to state or union-territory names.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"28": "Andhra Pradesh (Old)",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"97": "Other Territory",
	"99": "Centre Jurisdiction",
}

// ValidateGSTIN reports whether gstin has the 15-character GSTIN shape. The
// check is structural and case-sensitive; it does not verify the checksum.
func ValidateGSTIN(gstin string) bool {
	return gstinPattern.MatchString(gstin)
}

// GSTINDetails is what can be read off a GSTIN without contacting the portal.
type GSTINDetails struct {
	GSTIN         string `json:"gstin"`
	Valid         bool   `json:"valid"`
	StateCode     string `json:"stateCode,omitempty"`
	StateName     string `json:"stateName,omitempty"`
	PAN           string `json:"pan,omitempty"`
	EntityNumber  string `json:"entityNumber,omitempty"`
	ChecksumValid bool   `json:"checksumValid"`
}

// InspectGSTIN validates gstin and, when it is well formed, decodes its parts.
func InspectGSTIN(gstin string) GSTINDetails {
	d := GSTINDetails{GSTIN: gstin, Valid: ValidateGSTIN(gstin)}
	if !d.Valid {
		return d
	}
	d.StateCode = gstin[:2]
	d.StateName, _ = StateName(d.StateCode)
	d.PAN = gstin[2:12]
	d.EntityNumber = gstin[12:13]
	d.ChecksumValid = gstinChecksum(gstin[:14]) == gstin[14]
	return d
}

// gstinChecksum computes the mod-36 check character over the first 14
// characters. Odd positions (1-based) are weighted 1, even positions 2, and
// each product contributes its base-36 quotient plus remainder.
func gstinChecksum(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		v := strings.IndexByte(gstinAlphabet, body[i])
		if v < 0 {
			return 0
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := v * factor
		sum += p/36 + p%36
	}
	return gstinAlphabet[(36-sum%36)%36]
}

// StateName returns the state for a two-digit GST state code.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// MethodForStates picks CGST+SGST when supply stays within one state and IGST
// otherwise. Either argument may be a two-digit state code or a full GSTIN.
func MethodForStates(supplier, placeOfSupply string) (Method, error) {
	from, err := stateCodeOf(supplier)
	if err != nil {
		return "", err
	}
	to, err := stateCodeOf(placeOfSupply)
	if err != nil {
		return "", err
	}
	if from == to {
		return MethodCGSTSGST, nil
	}
	return MethodIGST, nil
}

func stateCodeOf(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 15 {
		if !ValidateGSTIN(s) {
			return "", invalidf("malformed GSTIN %q", s)
		}
		s = s[:2]
	}
	if _, ok := StateName(s); !ok {
		return "", invalidf("unknown state code %q", s)
	}
	return s, nil
}
