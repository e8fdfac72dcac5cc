// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for generating work schedules from
// repeating cycles of working days and days off.
package schedule

import (
	"fmt"
	"iter"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
)

// ErrInvalidCycle is returned for a WorkCycle with no working days or
// a negative number of days off.
var ErrInvalidCycle = errors.New("invalid work cycle")

// WorkCycle represents a repeating pattern of WorkDays consecutive working
// days followed by OffDays consecutive days off.
type WorkCycle struct {
	WorkDays int `yaml:"work"`
	OffDays  int `yaml:"off"`
}

// Validate returns an error wrapping ErrInvalidCycle if WorkDays is less
// than one or OffDays is negative.
func (wc WorkCycle) Validate() error {
	if wc.WorkDays < 1 || wc.OffDays < 0 {
		return fmt.Errorf("%v: %w", wc, ErrInvalidCycle)
	}
	return nil
}

// Len returns the number of days in a single cycle.
func (wc WorkCycle) Len() int {
	return wc.WorkDays + wc.OffDays
}

// IsWorkDay returns true if the day at offset days from the start of
// a cycle is a working day.
func (wc WorkCycle) IsWorkDay(offset int) bool {
	if wc.Len() <= 0 {
		return false
	}
	offset %= wc.Len()
	if offset < 0 {
		offset += wc.Len()
	}
	return offset < wc.WorkDays
}

func (wc WorkCycle) String() string {
	return fmt.Sprintf("%d on/%d off", wc.WorkDays, wc.OffDays)
}

// WorkDays returns an iterator over the working days in the period, with
// the first day of the period being the first day of the cycle. Every day
// from From to To inclusive is visited, the cycle counter is incremented
// for each day and reset to zero when it reaches the length of the cycle.
// Nothing is yielded if To is before From or the cycle is invalid.
func WorkDays(period calendar.CalendarPeriod, wc WorkCycle) iter.Seq[calendar.CalendarDate] {
	return workDays(period, wc, 0)
}

func workDays(period calendar.CalendarPeriod, wc WorkCycle, offset int) iter.Seq[calendar.CalendarDate] {
	return func(yield func(calendar.CalendarDate) bool) {
		if wc.Validate() != nil {
			return
		}
		cycleDay := offset % wc.Len()
		if cycleDay < 0 {
			cycleDay += wc.Len()
		}
		for day := range period.Dates() {
			if cycleDay < wc.WorkDays {
				if !yield(day) {
					return
				}
			}
			cycleDay++
			if cycleDay >= wc.Len() {
				cycleDay = 0
			}
		}
	}
}

// Build returns the working days in the period for the specified cycle.
func Build(period calendar.CalendarPeriod, wc WorkCycle) (calendar.CalendarDateList, error) {
	if err := wc.Validate(); err != nil {
		return nil, err
	}
	days := calendar.CalendarDateList{}
	for day := range WorkDays(period, wc) {
		days = append(days, day)
	}
	return days, nil
}

// BuildWorkSchedule returns the working days, in DD-MM-YYYY format, for
// the period from start to end, also in DD-MM-YYYY format, for a cycle of
// workDays working days followed by offDays days off. For example,
// 01-01-2024 to 15-01-2024 with 1 day on and 3 off yields
// 01-01-2024, 05-01-2024, 09-01-2024 and 13-01-2024.
func BuildWorkSchedule(start, end string, workDays, offDays int) ([]string, error) {
	period, err := calendar.ParseCalendarPeriod(start, end)
	if err != nil {
		return nil, err
	}
	days, err := Build(period, WorkCycle{WorkDays: workDays, OffDays: offDays})
	if err != nil {
		return nil, err
	}
	return days.Strings(), nil
}
