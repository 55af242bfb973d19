package payroll

import "github.com/shopspring/decimal"

// WorkerRecord is one payroll input line as received on the wire. Field
// names follow the legacy report format. A record carries either explicit
// period totals (TotalDays/TotalAmount or DaysWorked/Amount), or a presence
// list with a daily wage, or per-month stats; the first shape present wins.
// Records are never mutated by the computation layer.
type WorkerRecord struct {
	FullName      string `json:"nom_prenom"`
	CIN           string `json:"cin"`
	CINValidUntil string `json:"cin_validite"`
	Category      string `json:"type"`
	BirthDate     string `json:"date_naissance"`

	DaysWorked  decimal.Decimal `json:"days_worked"`
	Amount      decimal.Decimal `json:"amount"`
	TotalDays   decimal.Decimal `json:"total_days"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	PresenceDays []int           `json:"presenceDays"`
	DailyRate    decimal.Decimal `json:"salaire_journalier"`
	DailyRateAlt decimal.Decimal `json:"dailySalary"`

	MonthlyStats []MonthlyStat `json:"monthlyStats"`
}

// MonthlyStat is a per-month slice of a worker's activity, used by the
// quarterly RCAR statements when no period totals were pre-aggregated.
type MonthlyStat struct {
	Month      int             `json:"month"`
	DaysWorked decimal.Decimal `json:"days_worked"`
	Amount     decimal.Decimal `json:"amount"`
}

func (w WorkerRecord) effectiveDays() decimal.Decimal {
	if w.DaysWorked.IsPositive() {
		return w.DaysWorked
	}
	return w.TotalDays
}

func (w WorkerRecord) effectiveGross() decimal.Decimal {
	if w.Amount.IsPositive() {
		return w.Amount
	}
	return w.TotalAmount
}

func (w WorkerRecord) effectiveDailyRate() decimal.Decimal {
	if w.DailyRate.IsPositive() {
		return w.DailyRate
	}
	return w.DailyRateAlt
}

// Row is one computed payroll line: resolved days and gross for the period
// with the deduction applied at period end. All amounts are rounded to two
// decimals before they reach a Row.
type Row struct {
	FullName      string
	CIN           string
	CINValidUntil string
	Category      string
	Days          decimal.Decimal
	DailyRate     decimal.Decimal
	Gross         decimal.Decimal
	Deduction     decimal.Decimal
	Net           decimal.Decimal
}

// Totals aggregates rows for a period. Net equals Gross minus Deduction both
// per row and in aggregate; totals are sums of already-rounded lines,
// re-rounded, matching the paper-form convention.
type Totals struct {
	Days      decimal.Decimal
	Gross     decimal.Decimal
	Deduction decimal.Decimal
	Net       decimal.Decimal
}
