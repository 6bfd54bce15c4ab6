package main

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Period is the lookback window requested by the client
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// parsePeriod normalizes the raw request value. An empty value means a week;
// anything else is kept as sent so it can be echoed back.
func parsePeriod(raw string) Period {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return PeriodWeek
	}
	return Period(trimmed)
}

func (p Period) known() bool {
	return p == PeriodToday || p == PeriodWeek || p == PeriodMonth
}

// trendDays is the days_count passed to get_daily_trend
func (p Period) trendDays() int32 {
	if p == PeriodMonth {
		return 30
	}
	return 7
}

// DateRange is an inclusive span of calendar dates. Both ends are midnight UTC
// values carrying only a calendar date.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartDate() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndDate() string   { return r.End.Format(dateLayout) }

// resolveDateRange computes the window for period ending on the calendar
// date of now in loc. Unrecognized periods get a single-day window.
func resolveDateRange(period Period, now time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	start := end
	switch period {
	case PeriodWeek:
		start = end.AddDate(0, 0, -7)
	case PeriodMonth:
		start = previousMonth(end)
	}

	return DateRange{Start: start, End: end}
}

// previousMonth returns the same day one month earlier, clamped to the last
// day of that month (March 31 becomes February 28 or 29).
func previousMonth(d time.Time) time.Time {
	firstOfMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	lastOfPrevious := firstOfMonth.AddDate(0, 0, -1)

	day := d.Day()
	if day > lastOfPrevious.Day() {
		day = lastOfPrevious.Day()
	}
	return time.Date(lastOfPrevious.Year(), lastOfPrevious.Month(), day, 0, 0, 0, 0, d.Location())
}
