// Package phone normalizes Philippine mobile numbers into the form the SMS
// gateway accepts: country code 63 followed by the ten-digit subscriber
// number, with no leading plus.
package phone

import (
	"fmt"
	"strings"
)

const (
	countryCode      = "63"
	subscriberDigits = 10
)

// Normalize accepts +63XXXXXXXXXX, 0063XXXXXXXXXX, 63XXXXXXXXXX,
// 09XXXXXXXXX and 9XXXXXXXXX, ignoring spaces, dashes, dots and parentheses.
func Normalize(raw string) (string, error) {
	digits, hasPlus, err := stripFormatting(raw)
	if err != nil {
		return "", err
	}

	var subscriber string
	switch {
	case hasPlus:
		subscriber, err = trimPrefix(digits, countryCode)
	case strings.HasPrefix(digits, "00"+countryCode):
		subscriber, err = trimPrefix(digits, "00"+countryCode)
	case strings.HasPrefix(digits, countryCode) && len(digits) == len(countryCode)+subscriberDigits:
		subscriber = digits[len(countryCode):]
	case strings.HasPrefix(digits, "0"):
		subscriber = digits[1:]
	default:
		subscriber = digits
	}
	if err != nil {
		return "", fmt.Errorf("phone %q: %w", raw, err)
	}

	if len(subscriber) != subscriberDigits || subscriber[0] != '9' {
		return "", fmt.Errorf("phone %q is not a mobile number", raw)
	}

	return countryCode + subscriber, nil
}

func stripFormatting(raw string) (digits string, hasPlus bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false, fmt.Errorf("phone is empty")
	}

	var b strings.Builder
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			hasPlus = true
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", false, fmt.Errorf("phone %q contains %q", raw, r)
		}
	}

	return b.String(), hasPlus, nil
}

func trimPrefix(digits, prefix string) (string, error) {
	if !strings.HasPrefix(digits, prefix) {
		return "", fmt.Errorf("expected country code %s", countryCode)
	}

	return digits[len(prefix):], nil
}
