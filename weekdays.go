// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName returns the English name of the weekday, or an empty string
// for a value outside of time.Sunday to time.Saturday.
func DayName(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return dayNames[wd]
}

// WeekdayName returns the name of the day of the week, in the time's
// own location, as one of Sunday through Saturday.
func WeekdayName(when time.Time) string {
	return DayName(when.Weekday())
}

// IsWeekend returns true for Saturdays and Sundays.
func IsWeekend(when time.Time) bool {
	wd := when.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextFriday returns the first Friday strictly after the specified time,
// keeping its time of day. A Friday yields the Friday of the following week.
func NextFriday(when time.Time) time.Time {
	var days int
	switch dow := when.Weekday(); {
	case dow == time.Friday:
		days = 7
	case dow < time.Friday:
		days = int(time.Friday - dow)
	default:
		days = 6
	}
	return when.AddDate(0, 0, days)
}

// NextFridayThe13th returns the first Friday the 13th strictly after the
// specified time. The search starts with the 13th of the time's month and
// proceeds a month at a time, keeping the time of day.
func NextFridayThe13th(when time.Time) time.Time {
	year, month, _ := when.Date()
	for i := 0; ; i++ {
		candidate := time.Date(year, month+time.Month(i), 13,
			when.Hour(), when.Minute(), when.Second(), when.Nanosecond(), when.Location())
		if candidate.Weekday() == time.Friday && candidate.After(when) {
			return candidate
		}
	}
}

// CountWeekendDays returns the number of Saturdays and Sundays in the
// specified month. Months outside of 1-12 are normalized as per DaysInMonth.
func CountWeekendDays(year int, month Month) int {
	count, days := 0, DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		if IsWeekend(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}

// ISOWeek returns the ISO 8601 week number, 1-53, of the specified time.
// Weeks start on Monday and week 1 is the week that contains the first
// Thursday of the year, hence the first days of January may belong to
// week 52 or 53 of the previous year and the last days of December to
// week 1 of the next year.
func ISOWeek(when time.Time) int {
	_, week := when.ISOWeek()
	return week
}

// ISOWeekYear returns the ISO 8601 year and week number of the specified time.
func ISOWeekYear(when time.Time) (year, week int) {
	return when.ISOWeek()
}
