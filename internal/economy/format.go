package economy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a balance in pounds rounded to pence, with thousands
// separators: 1234.567 becomes "£1,234.57".
func FormatMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "£" + groupThousands(whole) + "." + frac
}

// RoundMoney rounds a balance to pence.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
