// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromTime returns the TimeOfDay for the specified time in
// its own location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// String returns the time of day as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Parse val in formats '08[:12[:10]]'.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10]'")
	}
	parts := strings.Split(strings.TrimSpace(val), ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08[:12][:10]'", val)
	}
	limits := []int{23, 59, 59}
	fields := []int{0, 0, 0}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return fmt.Errorf("invalid time of day %q", val)
		}
		fields[i] = n
	}
	*t = NewTimeOfDay(fields[0], fields[1], fields[2])
	return nil
}

// On returns the time on the same date, and in the same location, as
// when but at the time of day t.
func (t TimeOfDay) On(when time.Time) time.Time {
	y, m, d := when.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, when.Location())
}

// TimeOfDayString returns the time of day, in the time's own location,
// formatted as zero padded HH:MM:SS.
func TimeOfDayString(when time.Time) string {
	return TimeOfDayFromTime(when).String()
}

const usLayout = "1/2/2006, 3:04:05 PM"

// FormatUS returns the time, converted to UTC, formatted as
// 'M/D/YYYY, h:mm:ss AM/PM', for example '2/1/2024, 3:00:00 PM'.
// The month, day and hour have no leading zeros and midnight and
// noon are both rendered as 12.
func FormatUS(when time.Time) string {
	return when.UTC().Format(usLayout)
}
