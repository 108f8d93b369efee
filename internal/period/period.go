// Package period resolves calendar dates into the year, month and ISO-8601
// week markers that goals are filtered by.
package period

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MaxISOWeek is the highest week number any ISO week-year can have.
const MaxISOWeek = 53

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ISOWeek returns the ISO-8601 week-year and week number of t. Week 1 is the
// week containing the year's first Thursday, so early January days can belong
// to the previous week-year and late December days to the next one.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in the given week-year.
func WeeksInYear(year int) int {
	// December 28th always falls in the last ISO week of its year.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}
