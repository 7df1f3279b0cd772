package models

import (
	"fmt"
	"time"
)

var weekdayAbbr = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tues",
	time.Wednesday: "Wed",
	time.Thursday:  "Thurs",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// Display formats d for the date selector, e.g. "Tues, Dec 16th".
func (d DateKey) Display() string {
	return fmt.Sprintf("%s, %s %d%s",
		weekdayAbbr[d.Weekday()],
		d.Month.String()[:3],
		d.Day,
		OrdinalSuffix(d.Day),
	)
}

// OrdinalSuffix returns the English ordinal suffix for n (st, nd, rd, th).
func OrdinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
