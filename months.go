// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides pure calendar arithmetic over time.Time values
// and calendar dates: timestamps, day names, weekend counts, ISO week
// numbers, quarters, leap years and date periods.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// Month as an int, 1 for January through 12 for December.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// IsLeapYear returns true if the year of the given time is a leap year.
func IsLeapYear(when time.Time) bool {
	return IsLeap(when.Year())
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. This is the day of month of the zeroth day of the following month
// and hence months outside of 1-12 are normalized in the same way as
// time.Date, eg. month 13 is January of the following year.
func DaysInMonth(year int, month Month) int {
	if month >= 1 && month <= 12 {
		if IsLeap(year) {
			return daysInMonthLeap[month-1]
		}
		return daysInMonth[month-1]
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Quarter returns the quarter of the year, 1-4, for the given time.
func Quarter(when time.Time) int {
	return (int(when.Month())-1)/3 + 1
}
