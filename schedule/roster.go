// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendar"
	"cloudeng.io/errors"
)

// Worker represents a named worker with their own work cycle. Offset
// is the number of days into the cycle that the worker is on at the
// start of the roster's period.
type Worker struct {
	Name   string    `yaml:"name"`
	Cycle  WorkCycle `yaml:",inline"`
	Offset int       `yaml:"offset"`
}

// Roster represents the work cycles of a set of workers over a period.
type Roster struct {
	Period  calendar.CalendarPeriod `yaml:"period"`
	Workers []Worker                `yaml:"workers"`
}

// Shift represents a single worker working on a single date.
type Shift struct {
	Date   calendar.CalendarDate
	Worker string
}

// DayShifts represents all of the workers working on a given date.
type DayShifts struct {
	Date    calendar.CalendarDate
	Workers []string
}

// Validate returns all of the problems with the roster's period and workers.
func (r Roster) Validate() error {
	var errs errors.M
	if !r.Period.From.IsValid() || !r.Period.To.IsValid() {
		errs.Append(fmt.Errorf("period %v: %w", r.Period, calendar.ErrInvalidDate))
	}
	seen := map[string]struct{}{}
	for i, w := range r.Workers {
		if len(w.Name) == 0 {
			errs.Append(fmt.Errorf("worker %d: missing name", i))
		}
		if _, ok := seen[w.Name]; ok && len(w.Name) > 0 {
			errs.Append(fmt.Errorf("worker %d: duplicate name %q", i, w.Name))
		}
		seen[w.Name] = struct{}{}
		if err := w.Cycle.Validate(); err != nil {
			errs.Append(fmt.Errorf("worker %d: %q: %w", i, w.Name, err))
		}
		if w.Offset < 0 {
			errs.Append(fmt.Errorf("worker %d: %q: negative offset %d", i, w.Name, w.Offset))
		}
	}
	return errs.Err()
}

// WorkDays returns the working days for the named worker.
func (r Roster) WorkDays(name string) iter.Seq[calendar.CalendarDate] {
	for _, w := range r.Workers {
		if w.Name == name {
			return workDays(r.Period, w.Cycle, w.Offset)
		}
	}
	return func(func(calendar.CalendarDate) bool) {}
}

type rosterEntry struct {
	date   calendar.CalendarDate
	worker int
}

func dayNumber(cd calendar.CalendarDate) int64 {
	return cd.Time(time.UTC).Unix() / (24 * 60 * 60)
}

// Shifts returns an iterator over every shift in the roster ordered by
// date and then by the order in which the workers are listed. Workers
// with an invalid cycle are ignored.
func (r Roster) Shifts() iter.Seq[Shift] {
	return func(yield func(Shift) bool) {
		n := int64(len(r.Workers))
		h := heap.NewMin(heap.WithSliceCap[int64, rosterEntry](len(r.Workers)))
		next := make([]func() (calendar.CalendarDate, bool), len(r.Workers))
		for i, w := range r.Workers {
			nextDay, stop := iter.Pull(workDays(r.Period, w.Cycle, w.Offset))
			defer stop()
			next[i] = nextDay
			if cd, ok := nextDay(); ok {
				h.Push(dayNumber(cd)*n+int64(i), rosterEntry{date: cd, worker: i})
			}
		}
		for h.Len() > 0 {
			_, e := h.Pop()
			if !yield(Shift{Date: e.date, Worker: r.Workers[e.worker].Name}) {
				return
			}
			if cd, ok := next[e.worker](); ok {
				h.Push(dayNumber(cd)*n+int64(e.worker), rosterEntry{date: cd, worker: e.worker})
			}
		}
	}
}

// ByDate returns the roster's shifts grouped by date, in date order.
// Dates on which nobody works are omitted.
func (r Roster) ByDate() []DayShifts {
	var days []DayShifts
	for s := range r.Shifts() {
		if l := len(days); l > 0 && days[l-1].Date == s.Date {
			days[l-1].Workers = append(days[l-1].Workers, s.Worker)
			continue
		}
		days = append(days, DayShifts{Date: s.Date, Workers: []string{s.Worker}})
	}
	return days
}
