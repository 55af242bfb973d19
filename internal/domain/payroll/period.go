package payroll

import (
	"fmt"
	"time"
)

// Period is a closed date interval [Start, End]. Monthly and day-range
// periods live inside a single month and carry the day bounds used to
// filter presence lists; quarterly periods list their constituent months.
type Period struct {
	Start  time.Time
	End    time.Time
	Months []int
	// StartDay/EndDay are set for periods scoped to one month; zero for
	// multi-month periods.
	StartDay int
	EndDay   int
}

func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthPeriod covers a whole calendar month; End is always the last day of
// the month.
func MonthPeriod(year, month int) (Period, error) {
	if year <= 0 || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid period: year %d month %d", year, month)
	}
	last := lastDayOfMonth(year, month)
	return Period{
		Start:    time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(year, time.Month(month), last, 0, 0, 0, 0, time.UTC),
		StartDay: 1,
		EndDay:   last,
	}, nil
}

// DayRangePeriod covers an explicit day sub-range within one month, used by
// the bordereau for sub-month ledger sections.
func DayRangePeriod(year, month, startDay, endDay int) (Period, error) {
	if year <= 0 || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid period: year %d month %d", year, month)
	}
	last := lastDayOfMonth(year, month)
	if startDay < 1 || endDay > last || startDay > endDay {
		return Period{}, fmt.Errorf("invalid day range %d..%d for %04d-%02d", startDay, endDay, year, month)
	}
	return Period{
		Start:    time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, time.UTC),
		End:      time.Date(year, time.Month(month), endDay, 0, 0, 0, 0, time.UTC),
		StartDay: startDay,
		EndDay:   endDay,
	}, nil
}

// QuarterMonths maps a quarter number to its calendar months.
func QuarterMonths(quarter int) []int {
	switch quarter {
	case 1:
		return []int{1, 2, 3}
	case 2:
		return []int{4, 5, 6}
	case 3:
		return []int{7, 8, 9}
	case 4:
		return []int{10, 11, 12}
	}
	return nil
}

// QuarterPeriod covers a quarter. An explicit month list wins over the
// standard quarter mapping; when only months are given the quarter is
// back-derived from the first month. The interval runs from the first day
// of the first month to the last day of the last month.
func QuarterPeriod(year, quarter int, months []int) (Period, error) {
	if year <= 0 {
		return Period{}, fmt.Errorf("invalid period: year %d", year)
	}
	valid := make([]int, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			valid = append(valid, m)
		}
	}
	if len(valid) == 0 {
		valid = QuarterMonths(quarter)
	}
	if len(valid) == 0 {
		return Period{}, fmt.Errorf("invalid period: quarter %d with no months", quarter)
	}
	first, last := valid[0], valid[len(valid)-1]
	return Period{
		Start:  time.Date(year, time.Month(first), 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(year, time.Month(last), lastDayOfMonth(year, last), 0, 0, 0, 0, time.UTC),
		Months: valid,
	}, nil
}

// Quarter returns the quarter number a period's months belong to, or 0 for
// non-quarterly periods.
func (p Period) Quarter() int {
	if len(p.Months) == 0 {
		return 0
	}
	return (p.Months[0]-1)/3 + 1
}
