// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendar provides access to the calendar arithmetic functions
// of cloudeng.io/calendar and the work schedules of
// cloudeng.io/calendar/schedule.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: calendar
summary: calendar arithmetic, work schedules and rosters
commands:
  - name: timestamp
    summary: print the number of milliseconds since the Unix epoch for an ISO 8601 date
    arguments:
      - <date>
  - name: time-of-day
    summary: print the time of day of an ISO 8601 date as HH:MM:SS
    arguments:
      - <date>
  - name: weekday
    summary: print the name of the day of the week for an ISO 8601 date
    arguments:
      - <date>
  - name: next-friday
    summary: print the first Friday after an ISO 8601 date
    arguments:
      - <date>
  - name: days-in-month
    summary: print the number of days in a month
    arguments:
      - <month>
      - <year>
  - name: days-in-period
    summary: print the number of days from start to end inclusive
    arguments:
      - <start>
      - <end>
  - name: within
    summary: print true if a date is within the period from start to end inclusive
    arguments:
      - <date>
      - <start>
      - <end>
  - name: format-us
    summary: print an ISO 8601 date, in UTC, as M/D/YYYY, h:mm:ss AM/PM
    arguments:
      - <date>
  - name: weekends
    summary: print the number of Saturdays and Sundays in a month
    arguments:
      - <month>
      - <year>
  - name: iso-week
    summary: print the ISO 8601 week number of a date
    arguments:
      - <date>
  - name: friday13
    summary: print the first Friday the 13th after a date
    arguments:
      - <date>
  - name: quarter
    summary: print the quarter of the year, 1-4, of a date
    arguments:
      - <date>
  - name: leap-year
    summary: print true if the year of a date is a leap year
    arguments:
      - <date>
  - name: schedule
    summary: print the working days, as DD-MM-YYYY, from start to end for a cycle of working days and days off
    arguments:
      - <DD-MM-YYYY>
      - <DD-MM-YYYY>
  - name: roster
    summary: print the shifts for each worker in a YAML roster file
    arguments:
      - <roster.yaml>
`

var (
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cli    = &commands{out: os.Stdout}
)

func init() {
	for name, runner := range map[string]subcmd.Runner{
		"timestamp":      cli.timestamp,
		"time-of-day":    cli.timeOfDay,
		"weekday":        cli.weekday,
		"days-in-period": cli.daysInPeriod,
		"within":         cli.within,
		"format-us":      cli.formatUS,
		"iso-week":       cli.isoWeek,
		"quarter":        cli.quarter,
		"leap-year":      cli.leapYear,
	} {
		cmdSet.Set(name).MustRunnerAndFlags(runner, subcmd.MustRegisteredFlagSet(&commonFlags{}))
	}
	cmdSet.Set("next-friday").MustRunnerAndFlags(cli.nextFriday, subcmd.MustRegisteredFlagSet(&atFlags{}))
	cmdSet.Set("friday13").MustRunnerAndFlags(cli.friday13, subcmd.MustRegisteredFlagSet(&atFlags{}))
	cmdSet.Set("days-in-month").MustRunnerAndFlags(cli.daysInMonth, subcmd.MustRegisteredFlagSet(&commonFlags{}))
	cmdSet.Set("weekends").MustRunnerAndFlags(cli.weekends, subcmd.MustRegisteredFlagSet(&commonFlags{}))
	cmdSet.Set("schedule").MustRunnerAndFlags(cli.schedule, subcmd.MustRegisteredFlagSet(&scheduleFlags{}))
	cmdSet.Set("roster").MustRunnerAndFlags(cli.roster, subcmd.MustRegisteredFlagSet(&rosterFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
