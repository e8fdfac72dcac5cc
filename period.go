// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

const millisPerDay = int64(24 * time.Hour / time.Millisecond)

// DatePeriod represents the period from Start to End, inclusive of both.
// Start is not required to be before End.
type DatePeriod struct {
	Start, End time.Time
}

// DaysInPeriod returns the number of whole days from start to end
// plus one, ie. floor((end - start) / 24h) + 1 computed on millisecond
// timestamps. The result is 1 for start == end and negative when end is
// more than a day before start.
func DaysInPeriod(start, end time.Time) int {
	diff := end.UnixMilli() - start.UnixMilli()
	days := diff / millisPerDay
	if diff%millisPerDay != 0 && diff < 0 {
		days--
	}
	return int(days) + 1
}

// IsWithinPeriod returns true if start <= when <= end.
func IsWithinPeriod(when time.Time, period DatePeriod) bool {
	return period.Contains(when)
}

// Days returns DaysInPeriod(p.Start, p.End).
func (p DatePeriod) Days() int {
	return DaysInPeriod(p.Start, p.End)
}

// Contains returns true if when is on or after Start and on or before End.
// It always returns false when End is before Start.
func (p DatePeriod) Contains(when time.Time) bool {
	return !when.Before(p.Start) && !when.After(p.End)
}

func (p DatePeriod) String() string {
	return fmt.Sprintf("%s - %s", p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
}

// CalendarPeriod represents the range of calendar dates from From to To,
// inclusive of both. From is not required to be before To.
type CalendarPeriod struct {
	From CalendarDate `yaml:"from"`
	To   CalendarDate `yaml:"to"`
}

// NewCalendarPeriod returns a CalendarPeriod for the from/to dates. Unlike
// date ranges used for scheduling the dates are never swapped.
func NewCalendarPeriod(from, to CalendarDate) CalendarPeriod {
	return CalendarPeriod{From: from, To: to}
}

// ParseCalendarPeriod parses from and to in DD-MM-YYYY format.
func ParseCalendarPeriod(from, to string) (CalendarPeriod, error) {
	f, err := ParseDMY(from)
	if err != nil {
		return CalendarPeriod{}, fmt.Errorf("invalid from: %w", err)
	}
	t, err := ParseDMY(to)
	if err != nil {
		return CalendarPeriod{}, fmt.Errorf("invalid to: %w", err)
	}
	return CalendarPeriod{From: f, To: t}, nil
}

// Parse parses a period in the format 'DD-MM-YYYY:DD-MM-YYYY'.
func (cp *CalendarPeriod) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	p, err := ParseCalendarPeriod(parts[0], parts[1])
	if err != nil {
		return err
	}
	*cp = p
	return nil
}

func (cp CalendarPeriod) String() string {
	return fmt.Sprintf("%s - %s", cp.From, cp.To)
}

// Empty returns true if To is before From.
func (cp CalendarPeriod) Empty() bool {
	return cp.To.Before(cp.From)
}

// DatePeriod returns the DatePeriod from midnight of From to midnight of To
// in the specified location.
func (cp CalendarPeriod) DatePeriod(loc *time.Location) DatePeriod {
	return DatePeriod{Start: cp.From.Time(loc), End: cp.To.Time(loc)}
}

// Days returns the number of days in the period, inclusive of both ends.
func (cp CalendarPeriod) Days() int {
	return cp.DatePeriod(time.UTC).Days()
}

// Dates returns an iterator that yields each date from From to To
// inclusive. Nothing is yielded if To is before From or if either
// end of the period is not a valid date.
func (cp CalendarPeriod) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !cp.From.IsValid() || !cp.To.IsValid() {
			return
		}
		for cd := cp.From; !cp.To.Before(cd); cd = cd.Tomorrow() {
			if !yield(cd) {
				return
			}
		}
	}
}
