package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGrouped(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"7.5", "7.50"},
		{"999", "999.00"},
		{"1000", "1 000.00"},
		{"12345.5", "12 345.50"},
		{"1234567.89", "1 234 567.89"},
		{"-3760", "3 760.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Grouped(dec(tc.in)), "Grouped(%s)", tc.in)
	}
}

func TestGroupedComma(t *testing.T) {
	assert.Equal(t, "12 345,50", GroupedComma(dec("12345.5")))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "42.00", Plain(dec("42"), false))
	assert.Equal(t, "42,50", Plain(dec("42.5"), true))
}

func TestSplitCentsCarry(t *testing.T) {
	// 12.995 rounds to 100 centimes; the carry must land in the whole part.
	whole, cents := SplitCents(dec("12.995"))
	assert.Equal(t, int64(13), whole)
	assert.Equal(t, 0, cents)

	whole, cents = SplitCents(dec("3760.00"))
	assert.Equal(t, int64(3760), whole)
	assert.Equal(t, 0, cents)

	whole, cents = SplitCents(dec("12.34"))
	assert.Equal(t, int64(12), whole)
	assert.Equal(t, 34, cents)
}

func TestWordsWithCents(t *testing.T) {
	assert.Equal(t, "Trois Mille Sept Cent Soixante dhs 00 Cts", WordsWithCents(dec("3760")))
	assert.Equal(t, "Treize dhs 00 Cts", WordsWithCents(dec("12.995")))
	assert.Equal(t, "Vingt Et Un dhs 05 Cts", WordsWithCents(dec("21.05")))
}

func TestWordsWithCentsUpper(t *testing.T) {
	assert.Equal(t, "QUATRE VINGT ONZE DHS 10 CTS", WordsWithCentsUpper(dec("91.10")))
}

func TestRound2(t *testing.T) {
	assert.True(t, Round2(dec("1.005")).Equal(dec("1.01")))
	assert.True(t, Round2(dec("240.0000")).Equal(dec("240")))
}
