package document

import (
	"github.com/shopspring/decimal"

	"regie/internal/domain/payroll"
)

// rateFor selects the deduction rate by document type. Only the employer
// statement uses the employer rate; everything else reports worker-side
// figures.
func rateFor(t Type) decimal.Decimal {
	if t == TypeRCARPatronale {
		return payroll.RateEmployer
	}
	return payroll.RateWorker
}

// monthTotals computes the canonical totals for a whole-month document.
// Every renderer that reports figures for a month goes through here with
// the same payload, so a certificate and a mandate for the same period can
// never disagree.
func monthTotals(req *Request, opts Options) ([]payroll.Row, payroll.Totals, error) {
	period, err := payroll.MonthPeriod(req.Year, req.Month)
	if err != nil {
		return nil, payroll.Totals{}, validationf("Missing required fields for %s: year, month", req.DocumentType)
	}
	rows, totals := payroll.Aggregate(req.Report.Rows, period, opts.RCARAgeLimit, rateFor(req.Type()))
	return rows, totals, nil
}

// quarterTotals resolves the quarter period (explicit month list wins) and
// aggregates at the document's rate.
func quarterTotals(req *Request, opts Options) (payroll.Period, []payroll.Row, payroll.Totals, error) {
	period, err := payroll.QuarterPeriod(req.Year, req.Quarter, req.Report.Period.Months)
	if err != nil {
		return payroll.Period{}, nil, payroll.Totals{}, validationf("Missing required fields for %s: year, quarter", req.DocumentType)
	}
	rows, totals := payroll.Aggregate(req.Report.Rows, period, opts.RCARAgeLimit, rateFor(req.Type()))
	return period, rows, totals, nil
}

// dayRangeTotals aggregates a sub-month slice of the payroll, used by the
// bordereau's ledger ranges. Only presence-day records contribute, as the
// explicit period totals cannot be attributed to a day range.
func dayRangeTotals(req *Request, opts Options, startDay, endDay int) (payroll.Totals, error) {
	period, err := payroll.DayRangePeriod(req.Year, req.Month, startDay, endDay)
	if err != nil {
		return payroll.Totals{}, validationf("Missing required fields for %s: year, month", req.DocumentType)
	}
	workers := make([]payroll.WorkerRecord, 0, len(req.Report.Rows))
	for _, w := range req.Report.Rows {
		w.DaysWorked = decimal.Zero
		w.Amount = decimal.Zero
		w.TotalDays = decimal.Zero
		w.TotalAmount = decimal.Zero
		w.MonthlyStats = nil
		workers = append(workers, w)
	}
	_, totals := payroll.Aggregate(workers, period, opts.RCARAgeLimit, rateFor(req.Type()))
	return totals, nil
}
