package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	million      = decimal.NewFromInt(1_000_000)
	groupPrinter = message.NewPrinter(language.English)
)

// FormatARR formats a total ARR in dollars as millions with one decimal,
// e.g. 113015000 -> "$113.0M". Ties round half away from zero and the integer
// part is grouped with commas ("$1,234.5M").
func FormatARR(total float64) string {
	switch {
	case math.IsNaN(total):
		return "$NaNM"
	case math.IsInf(total, 1):
		return "$+InfM"
	case math.IsInf(total, -1):
		return "$-InfM"
	}

	millions := decimal.NewFromFloat(total).Div(million).Round(1)

	sign := ""
	if millions.IsNegative() {
		sign = "-"
		millions = millions.Abs()
	}

	intPart, fracPart, _ := strings.Cut(millions.StringFixed(1), ".")
	return "$" + sign + groupDigits(intPart) + "." + fracPart + "M"
}

// groupDigits inserts a comma every three digits from the right. It works on
// the digit string so totals beyond int64 keep their value.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatUSD formats a dollar amount with thousands separators and no decimals
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
	}

	rounded := decimal.NewFromFloat(amount).Round(0)
	if rounded.IsNegative() {
		return "$-" + groupDigits(rounded.Abs().StringFixed(0))
	}
	return "$" + groupDigits(rounded.StringFixed(0))
}

// formatPercent formats a fraction as a whole or one-decimal percentage
func formatPercent(fraction float64) string {
	pct := decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).Round(1)
	s := pct.StringFixed(1)
	return strings.TrimSuffix(s, ".0") + "%"
}
