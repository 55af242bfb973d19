package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthPeriodEndsOnLastDay(t *testing.T) {
	p, err := MonthPeriod(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 29, p.End.Day(), "2024 is a leap year")
	assert.Equal(t, 1, p.StartDay)
	assert.Equal(t, 29, p.EndDay)

	p, err = MonthPeriod(2023, 2)
	require.NoError(t, err)
	assert.Equal(t, 28, p.End.Day())
}

func TestMonthPeriodRejectsInvalid(t *testing.T) {
	_, err := MonthPeriod(0, 3)
	assert.Error(t, err)
	_, err = MonthPeriod(2024, 13)
	assert.Error(t, err)
	_, err = MonthPeriod(2024, 0)
	assert.Error(t, err)
}

func TestDayRangePeriod(t *testing.T) {
	p, err := DayRangePeriod(2024, 1, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Start.Day())
	assert.Equal(t, 20, p.End.Day())

	_, err = DayRangePeriod(2024, 1, 20, 10)
	assert.Error(t, err)
	_, err = DayRangePeriod(2024, 4, 1, 31)
	assert.Error(t, err, "April has 30 days")
}

func TestQuarterPeriodFromQuarterNumber(t *testing.T) {
	p, err := QuarterPeriod(2024, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, p.Months)
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, 4, int(p.Start.Month()))
	assert.Equal(t, 30, p.End.Day())
	assert.Equal(t, 2, p.Quarter())
}

func TestQuarterPeriodExplicitMonthsWin(t *testing.T) {
	p, err := QuarterPeriod(2024, 0, []int{7, 8})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, p.Months)
	assert.Equal(t, 31, p.End.Day())
	assert.Equal(t, 3, p.Quarter(), "quarter back-derived from first month")
}

func TestQuarterPeriodRejectsEmpty(t *testing.T) {
	_, err := QuarterPeriod(2024, 0, nil)
	assert.Error(t, err)
	_, err = QuarterPeriod(2024, 5, []int{13, 0})
	assert.Error(t, err)
}
