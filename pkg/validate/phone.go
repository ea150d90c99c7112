package validate

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const region = "NG"

// NormalizePhone converts a Nigerian mobile number to its 11-digit local
// form. The second result is false when the input is not a mobile number.
func NormalizePhone(s string) (string, bool) {
	// phonenumbers maps letters to keypad digits; a typo must not become a number.
	if strings.IndexFunc(s, unicode.IsLetter) >= 0 {
		return "", false
	}
	num, err := phonenumbers.Parse(s, region)
	if err != nil || !phonenumbers.IsValidNumberForRegion(num, region) {
		return "", false
	}
	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
	default:
		return "", false
	}
	return "0" + phonenumbers.GetNationalSignificantNumber(num), true
}
