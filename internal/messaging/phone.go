package messaging

import "strings"

// DefaultCountryCode is the Brazilian dialing prefix
const DefaultCountryCode = "55"

// FormatPhone normalizes a stored phone number to the digits-only form the
// gateway expects. Numbers that already carry the country code are kept,
// national numbers (area code plus 8 or 9 digits) get the prefix and
// anything else is returned as bare digits.
func FormatPhone(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder
	b.Grow(len(raw) + len(countryCode))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, countryCode) && len(digits) >= 12 {
		return digits
	}
	if len(digits) == 10 || len(digits) == 11 {
		return countryCode + digits
	}
	return digits
}
