package compensation

import "strings"

// FormatAmountES renders an amount in Spanish convention with two decimals:
// dot as thousands separator, comma as decimal mark. 1234567.89 becomes
// "1.234.567,89".
func FormatAmountES(a Amount) string {
	fixed := a.Value.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, decPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	b.WriteByte(',')
	b.WriteString(decPart)
	return b.String()
}
