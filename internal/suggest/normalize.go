package suggest

import (
	"strings"
	"unicode"
)

// Normalize case-folds s and drops separators, so that "Order_ID",
// "order-id" and "orderId" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
