package export

import (
	"math"
	"strconv"
	"strings"
)

// FormatCNY formats a rounded yuan amount as a string like "¥12,500".
// Quotation prices are whole currency units, so no decimals are shown.
func FormatCNY(amount float64) string {
	value := int64(math.Round(amount))
	neg := value < 0
	if neg {
		value = -value
	}

	s := strconv.FormatInt(value, 10)
	if len(s) <= 3 {
		if neg {
			return "-¥" + s
		}
		return "¥" + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 3)
	if neg {
		b.WriteString("-¥")
	} else {
		b.WriteString("¥")
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

// formatQty renders a quantity: whole number when integral, otherwise
// two decimals.
func formatQty(q float64) string {
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', 2, 64)
}
