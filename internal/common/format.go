package common

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const crore = 10000000

// FormatAmount renders amount in currency with a fixed number of decimals.
// INR uses Indian digit grouping; other currencies use their standard form.
func FormatAmount(amount float64, currency string, decimals int) string {
	if strings.EqualFold(currency, "INR") {
		return FormatINR(amount, decimals)
	}
	cur := *money.New(0, currency).Currency()
	cur.Fraction = decimals
	minor := decimal.NewFromFloat(amount).Shift(int32(decimals)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatSignedAmount is FormatAmount with an explicit "+" for positive amounts.
func FormatSignedAmount(amount float64, currency string, decimals int) string {
	if amount > 0 {
		return "+" + FormatAmount(amount, currency, decimals)
	}
	return FormatAmount(amount, currency, decimals)
}

// KnownCurrency reports whether code is an ISO currency code known to the
// money formatter.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// FormatINR renders an amount in rupees with Indian digit grouping
// (last three digits, then groups of two): 1234567.8 -> "₹12,34,567.80".
func FormatINR(amount float64, decimals int) string {
	s := decimal.NewFromFloat(amount).Abs().StringFixed(int32(decimals))

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := "₹" + groupIndian(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if amount < 0 && strings.Trim(s, "0.") != "" {
		out = "-" + out
	}
	return out
}

// groupIndian inserts en-IN thousands separators into a string of digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatCrore renders an amount as crores with two decimals: "₹1,146.73Cr".
func FormatCrore(amount float64) string {
	return FormatINR(amount/crore, 2) + "Cr"
}

// FormatPercent renders p with the given number of decimals and a "%" suffix.
func FormatPercent(p float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, p)
}

// FormatSignedPercent renders p with two decimals and an explicit sign for
// non-negative values, the way gain columns are displayed: "+1.42%".
func FormatSignedPercent(p float64) string {
	if p >= 0 {
		return fmt.Sprintf("+%.2f%%", p)
	}
	return fmt.Sprintf("%.2f%%", p)
}

// FormatOptionalPercent renders a percentage that may be undefined
// (zero denominator). Undefined values render as "n/a".
func FormatOptionalPercent(p *float64, decimals int) string {
	if p == nil {
		return "n/a"
	}
	return FormatPercent(*p, decimals)
}
