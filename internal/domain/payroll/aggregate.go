package payroll

import (
	"github.com/shopspring/decimal"

	"regie/internal/domain/amount"
)

// Aggregate filters and sums worker records into period totals. Per record:
//
//  1. Effective days and gross are resolved: explicit period totals win;
//     otherwise presence days inside the period's day range are counted at
//     the daily rate; otherwise per-month stats are summed.
//  2. Records without positive days and gross are excluded entirely.
//  3. Deduction and net are computed with the period end as reference date
//     (a policy date, not the generation date).
//
// Every per-worker value is rounded before accumulation and the totals are
// rounded again at the end: the paper forms reconcile as a sum of rounded
// lines, not a rounding of the exact sum. Rows preserve input order; totals
// are order-independent.
func Aggregate(workers []WorkerRecord, period Period, ageLimit int, rate decimal.Decimal) ([]Row, Totals) {
	rows := make([]Row, 0, len(workers))
	var totals Totals

	for _, w := range workers {
		days, gross, dailyRate := resolveEffective(w, period)
		if !days.IsPositive() || !gross.IsPositive() {
			continue
		}

		gross = amount.Round2(gross)
		deduction := Deduction(w.BirthDate, period.End, gross, ageLimit, rate)
		net := amount.Round2(gross.Sub(deduction))

		rows = append(rows, Row{
			FullName:      w.FullName,
			CIN:           w.CIN,
			CINValidUntil: w.CINValidUntil,
			Category:      w.Category,
			Days:          days,
			DailyRate:     dailyRate,
			Gross:         gross,
			Deduction:     deduction,
			Net:           net,
		})

		totals.Days = totals.Days.Add(days)
		totals.Gross = totals.Gross.Add(gross)
		totals.Deduction = totals.Deduction.Add(deduction)
		totals.Net = totals.Net.Add(net)
	}

	totals.Gross = amount.Round2(totals.Gross)
	totals.Deduction = amount.Round2(totals.Deduction)
	totals.Net = amount.Round2(totals.Net)
	return rows, totals
}

func resolveEffective(w WorkerRecord, period Period) (days, gross, dailyRate decimal.Decimal) {
	days = w.effectiveDays()
	gross = w.effectiveGross()
	dailyRate = w.effectiveDailyRate()

	if days.IsPositive() && gross.IsPositive() {
		if !dailyRate.IsPositive() {
			dailyRate = amount.Round2(gross.Div(days))
		}
		return days, gross, dailyRate
	}

	if dailyRate.IsPositive() && len(w.PresenceDays) > 0 {
		count := 0
		for _, day := range w.PresenceDays {
			if period.StartDay > 0 && (day < period.StartDay || day > period.EndDay) {
				continue
			}
			count++
		}
		if count > 0 {
			days = decimal.NewFromInt(int64(count))
			return days, amount.Round2(days.Mul(dailyRate)), dailyRate
		}
		return decimal.Zero, decimal.Zero, dailyRate
	}

	// Quarterly statements arrive as per-month stats when nothing was
	// pre-aggregated.
	if len(w.MonthlyStats) > 0 {
		days, gross = decimal.Zero, decimal.Zero
		for _, stat := range w.MonthlyStats {
			days = days.Add(stat.DaysWorked)
			gross = gross.Add(stat.Amount)
		}
		if days.IsPositive() && gross.IsPositive() && !dailyRate.IsPositive() {
			dailyRate = amount.Round2(gross.Div(days))
		}
		return days, amount.Round2(gross), dailyRate
	}

	return days, gross, dailyRate
}
