package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero. Every monetary
// value crossing a package boundary is expected to already be rounded this
// way; unrounded cents must never leak into downstream sums.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SplitCents splits an amount into its whole part and rounded centimes,
// carrying a 100-centime overflow into the whole part so callers never see
// "100 Cts". The sign is dropped; the forms only print magnitudes.
func SplitCents(d decimal.Decimal) (int64, int) {
	abs := d.Abs()
	whole := abs.Truncate(0)
	cents := int(abs.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if cents == 100 {
		return whole.IntPart() + 1, 0
	}
	return whole.IntPart(), cents
}

// Grouped formats |d| with two decimals and space-separated thousands,
// using a decimal point: 12345.5 -> "12 345.50".
func Grouped(d decimal.Decimal) string {
	return group(d, ".")
}

// GroupedComma is Grouped with a decimal comma: 12345.5 -> "12 345,50".
func GroupedComma(d decimal.Decimal) string {
	return group(d, ",")
}

func group(d decimal.Decimal, point string) string {
	text := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(text, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + point + frac
}

// Plain formats with two decimals and no grouping; decimalComma switches
// the separator (the timesheet honours a per-request locale flag).
func Plain(d decimal.Decimal, decimalComma bool) string {
	text := d.StringFixed(2)
	if decimalComma {
		return strings.Replace(text, ".", ",", 1)
	}
	return text
}

// WordsWithCents renders "<Words> dhs <cc> Cts", e.g. 3760 ->
// "Trois Mille Sept Cent Soixante dhs 00 Cts".
func WordsWithCents(d decimal.Decimal) string {
	whole, cents := SplitCents(d)
	return fmt.Sprintf("%s dhs %02d Cts", Words(whole), cents)
}

// WordsWithCentsUpper is the all-caps variant used on the RCAR statements
// and the timesheet totals block.
func WordsWithCentsUpper(d decimal.Decimal) string {
	whole, cents := SplitCents(d)
	return fmt.Sprintf("%s DHS %02d CTS", strings.ToUpper(Words(whole)), cents)
}
