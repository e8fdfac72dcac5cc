// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/schedule"
	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type commonFlags struct {
	cmdutil.LoggingFlags
	Location string `subcmd:"location,Local,'location used for dates and times that do not specify a timezone, eg. UTC or America/New_York'"`
}

type atFlags struct {
	commonFlags
	At string `subcmd:"at,,'time of day, as HH[:MM[:SS]], for the result, the time of day of the supplied date is used by default'"`
}

type scheduleFlags struct {
	commonFlags
	WorkDays int `subcmd:"work,1,number of consecutive working days"`
	OffDays  int `subcmd:"off,0,number of consecutive days off"`
}

type rosterFlags struct {
	commonFlags
	ByDate bool `subcmd:"by-date,false,'print one line per date listing all of the workers for that date'"`
}

type commands struct {
	out io.Writer
}

// setup configures logging and the location used to interpret zone-less
// dates, the returned function must be called to release the logger.
func (c *commands) setup(ctx context.Context, cf *commonFlags) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	loc, err := time.LoadLocation(cf.Location)
	if err != nil {
		logger.Close()
		return ctx, func() {}, fmt.Errorf("invalid location %q: %w", cf.Location, err)
	}
	ctx = calendar.ContextWithLocation(ctx, loc)
	return ctx, func() { logger.Close() }, nil
}

func parseDates(ctx context.Context, args []string) ([]time.Time, error) {
	loc := calendar.LocationFromContext(ctx)
	dates := make([]time.Time, len(args))
	var errs errors.M
	for i, arg := range args {
		t, err := calendar.ParseInstant(arg, loc)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("parsed date", "arg", arg, "time", t)
		dates[i] = t
	}
	return dates, errs.Err()
}

func parseMonthYear(month, year string) (calendar.Month, int, error) {
	var errs errors.M
	var m calendar.Month
	errs.Append(m.Parse(month))
	y, err := strconv.Atoi(year)
	if err != nil {
		errs.Append(fmt.Errorf("invalid year: %q", year))
	}
	return m, y, errs.Err()
}

// dateCommand runs fn with the dates parsed from args.
func (c *commands) dateCommand(ctx context.Context, values any, args []string, fn func(dates []time.Time) any) error {
	ctx, done, err := c.setup(ctx, values.(*commonFlags))
	if err != nil {
		return err
	}
	defer done()
	dates, err := parseDates(ctx, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, fn(dates))
	return err
}

func (c *commands) monthCommand(ctx context.Context, values any, args []string, fn func(year int, month calendar.Month) any) error {
	ctx, done, err := c.setup(ctx, values.(*commonFlags))
	if err != nil {
		return err
	}
	defer done()
	month, year, err := parseMonthYear(args[0], args[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("parsed month", "month", month, "year", year)
	_, err = fmt.Fprintln(c.out, fn(year, month))
	return err
}

func (c *commands) timestamp(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.Timestamp(dates[0])
	})
}

func (c *commands) timeOfDay(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.TimeOfDayString(dates[0])
	})
}

func (c *commands) weekday(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.WeekdayName(dates[0])
	})
}

// atCommand runs fn with the first date parsed from args and prints the
// result with its time of day replaced by that of the --at flag if set.
func (c *commands) atCommand(ctx context.Context, values any, args []string, fn func(time.Time) time.Time) error {
	fv := values.(*atFlags)
	var tod calendar.TimeOfDay
	if len(fv.At) > 0 {
		if err := tod.Parse(fv.At); err != nil {
			return err
		}
	}
	return c.dateCommand(ctx, &fv.commonFlags, args, func(dates []time.Time) any {
		t := fn(dates[0])
		if len(fv.At) > 0 {
			t = tod.On(t)
		}
		return t.Format(time.RFC3339)
	})
}

func (c *commands) nextFriday(ctx context.Context, values any, args []string) error {
	return c.atCommand(ctx, values, args, calendar.NextFriday)
}

func (c *commands) daysInPeriod(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.DaysInPeriod(dates[0], dates[1])
	})
}

func (c *commands) within(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.IsWithinPeriod(dates[0], calendar.DatePeriod{Start: dates[1], End: dates[2]})
	})
}

func (c *commands) formatUS(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.FormatUS(dates[0])
	})
}

func (c *commands) isoWeek(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.ISOWeek(dates[0])
	})
}

func (c *commands) friday13(ctx context.Context, values any, args []string) error {
	return c.atCommand(ctx, values, args, calendar.NextFridayThe13th)
}

func (c *commands) quarter(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.Quarter(dates[0])
	})
}

func (c *commands) leapYear(ctx context.Context, values any, args []string) error {
	return c.dateCommand(ctx, values, args, func(dates []time.Time) any {
		return calendar.IsLeapYear(dates[0])
	})
}

func (c *commands) daysInMonth(ctx context.Context, values any, args []string) error {
	return c.monthCommand(ctx, values, args, func(year int, month calendar.Month) any {
		return calendar.DaysInMonth(year, month)
	})
}

func (c *commands) weekends(ctx context.Context, values any, args []string) error {
	return c.monthCommand(ctx, values, args, func(year int, month calendar.Month) any {
		return calendar.CountWeekendDays(year, month)
	})
}

func (c *commands) schedule(ctx context.Context, values any, args []string) error {
	fv := values.(*scheduleFlags)
	ctx, done, err := c.setup(ctx, &fv.commonFlags)
	if err != nil {
		return err
	}
	defer done()
	days, err := schedule.BuildWorkSchedule(args[0], args[1], fv.WorkDays, fv.OffDays)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("schedule", "from", args[0], "to", args[1], "work", fv.WorkDays, "off", fv.OffDays, "days", len(days))
	for _, day := range days {
		if _, err := fmt.Fprintln(c.out, day); err != nil {
			return err
		}
	}
	return nil
}

func (c *commands) roster(ctx context.Context, values any, args []string) error {
	fv := values.(*rosterFlags)
	ctx, done, err := c.setup(ctx, &fv.commonFlags)
	if err != nil {
		return err
	}
	defer done()
	var r schedule.Roster
	if err := cmdutil.ParseYAMLConfigFile(args[0], &r); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%v: %w", args[0], err)
	}
	ctxlog.Logger(ctx).Info("roster", "file", args[0], "period", r.Period.String(), "workers", len(r.Workers))
	if fv.ByDate {
		for _, ds := range r.ByDate() {
			if _, err := fmt.Fprintf(c.out, "%v %v\n", ds.Date, strings.Join(ds.Workers, ", ")); err != nil {
				return err
			}
		}
		return nil
	}
	for s := range r.Shifts() {
		if _, err := fmt.Fprintf(c.out, "%v %v\n", s.Date, s.Worker); err != nil {
			return err
		}
	}
	return nil
}
