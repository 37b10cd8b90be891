// Package dispatch loads bulk-dispatch contact lists from spreadsheets and
// normalizes Brazilian phone numbers for WhatsApp delivery.
package dispatch

import (
	"fmt"
	"strings"
)

// NormalizePhone converts a Brazilian phone number in any common written
// form to E.164 digits without the plus sign: 55 + DDD + number. Numbers
// are WhatsApp mobiles, so 8-digit locals gain the leading 9.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// International prefix written as 0055.
	digits = strings.TrimPrefix(digits, "00")

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "55"):
		return digits, nil
	case len(digits) == 12 && strings.HasPrefix(digits, "55"):
		// 55 + DDD + 8-digit local: insert the mobile 9.
		return digits[:4] + "9" + digits[4:], nil
	case len(digits) == 11:
		return "55" + digits, nil
	case len(digits) == 10:
		return "55" + digits[:2] + "9" + digits[2:], nil
	default:
		return "", fmt.Errorf("dispatch.NormalizePhone: unrecognized phone %q", raw)
	}
}
