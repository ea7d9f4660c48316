package payments

import "strings"

// CardNetwork classifies a card by its IIN prefix.
func CardNetwork(number string) string {
	digits := digitsOnly(number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "MasterCard"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return "Discover"
	default:
		return "Unknown"
	}
}

// LastFour masks a card number to its trailing four digits.
func LastFour(number string) string {
	digits := digitsOnly(number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
