package report

import (
	"fmt"
	"strings"
)

const lineWidth = 80

// money renders a currency value with thousands separators and exactly two
// decimal places: 1234567.5 -> "1,234,567.50".
func money(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func rule(c byte) string {
	return strings.Repeat(string(c), lineWidth)
}
