package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatHryvnia renders "1 234.50 ₴" with a space as thousand separator.
func FormatHryvnia(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := FormatMoney(amount)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + s + " ₴"
	}
	return fmt.Sprintf("%s%s.%s ₴", sign, formatThousand(n), frac)
}

// FormatPrice prints a price the way the backend sends it: no trailing zeros.
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(c)
	}
	return out.String()
}
