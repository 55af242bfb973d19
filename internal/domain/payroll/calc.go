// Package payroll is the computation core: date and age arithmetic, the
// age-conditioned RCAR deduction, and period aggregation of worker records.
// Every document reporting figures for a period goes through this package,
// so a certificate and a mandate for the same month can never disagree.
package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"regie/internal/domain/amount"
)

// ParseDate accepts DD/MM/YYYY, YYYY-MM-DD and RFC3339 timestamps. The
// zero time and false are returned for anything else; callers treat an
// unparseable birth date the same as a missing one.
func ParseDate(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// AgeAt returns the calendar-accurate age at ref, or false when the birth
// date is absent or unparseable.
func AgeAt(birthDate string, ref time.Time) (int, bool) {
	birth, ok := ParseDate(birthDate)
	if !ok {
		return 0, false
	}
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// Deduction computes the levy on gross pay: round2(gross x rate) when the
// worker's age at ref is at most ageLimit, zero above it. A missing birth
// date counts as subject to the levy; the régie fails safe toward
// collecting rather than under-collecting.
func Deduction(birthDate string, ref time.Time, gross decimal.Decimal, ageLimit int, rate decimal.Decimal) decimal.Decimal {
	if age, ok := AgeAt(birthDate, ref); ok && age > ageLimit {
		return decimal.Zero
	}
	return amount.Round2(gross.Mul(rate))
}

// Net is round2(gross - Deduction(...)).
func Net(birthDate string, ref time.Time, gross decimal.Decimal, ageLimit int, rate decimal.Decimal) decimal.Decimal {
	return amount.Round2(gross.Sub(Deduction(birthDate, ref, gross, ageLimit, rate)))
}
