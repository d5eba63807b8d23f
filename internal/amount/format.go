package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders d with comma thousands separators, keeping exactly the
// number of decimal places d carries. "1234.50" stays "1,234.50"; "1234.5"
// stays "1,234.5".
func Format(d decimal.Decimal) string {
	var places int32
	if exp := d.Exponent(); exp < 0 {
		places = -exp
	}
	s := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
