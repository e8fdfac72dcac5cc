// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CalendarDate represents a date with a year, month and day but no
// time of day or location.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the specified time in
// its own location.
func NewCalendarDate(when time.Time) CalendarDate {
	y, m, d := when.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// IsValid returns true if the month is in the range 1-12 and the day
// exists in that month.
func (cd CalendarDate) IsValid() bool {
	return cd.Month >= 1 && cd.Month <= 12 && cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// String returns the date in DD-MM-YYYY format.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", cd.Day, cd.Month, cd.Year)
}

// Time returns the time.Time for midnight on the date in the specified
// location. A nil loc is treated as UTC.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time(time.UTC).Weekday()
}

// Before returns true if cd is strictly before date.
func (cd CalendarDate) Before(date CalendarDate) bool {
	if cd.Year != date.Year {
		return cd.Year < date.Year
	}
	if cd.Month != date.Month {
		return cd.Month < date.Month
	}
	return cd.Day < date.Day
}

// Tomorrow returns the date of the following day, 12/31 wraps to 1/1
// of the next year. Days that exceed those of their month are treated
// as the last day of that month.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Day >= DaysInMonth(cd.Year, cd.Month) {
		if cd.Month >= 12 {
			return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
		}
		return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
	}
	cd.Day++
	return cd
}

// ParseDMY parses a date in DD-MM-YYYY format, the day and month may be
// one or two digits. The date must exist, so that 29-02-2023 is an error.
// All errors wrap ErrInvalidDate.
func ParseDMY(val string) (CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(val), "-")
	if len(parts) != 3 || len(parts[0]) > 2 || len(parts[1]) > 2 || len(parts[2]) != 4 {
		return CalendarDate{}, fmt.Errorf("%q, expected format 'DD-MM-YYYY': %w", val, ErrInvalidDate)
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return CalendarDate{}, fmt.Errorf("%q: invalid number %q: %w", val, p, ErrInvalidDate)
		}
		fields[i] = n
	}
	cd := CalendarDate{Year: fields[2], Month: Month(fields[1]), Day: fields[0]}
	if !cd.IsValid() {
		return CalendarDate{}, fmt.Errorf("%q: no such day: %w", val, ErrInvalidDate)
	}
	return cd, nil
}

// Parse parses val using ParseDMY.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseDMY(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

func (cd *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	return cd.Parse(node.Value)
}

type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	return strings.Join(cdl.Strings(), ", ")
}

// Strings returns each date in DD-MM-YYYY format.
func (cdl CalendarDateList) Strings() []string {
	out := make([]string, len(cdl))
	for i, cd := range cdl {
		out[i] = cd.String()
	}
	return out
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
