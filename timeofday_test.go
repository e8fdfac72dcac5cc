// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"
	"time"

	"cloudeng.io/calendar"
)

func TestTimeOfDay(t *testing.T) {
	for _, tc := range []struct {
		val      string
		h, m, s  int
		asString string
	}{
		{"8", 8, 0, 0, "08:00:00"},
		{"08:12", 8, 12, 0, "08:12:00"},
		{"23:59:59", 23, 59, 59, "23:59:59"},
		{"00:00:00", 0, 0, 0, "00:00:00"},
	} {
		var tod calendar.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if tod.Hour() != tc.h || tod.Minute() != tc.m || tod.Second() != tc.s {
			t.Errorf("%q: got %v, want %02d:%02d:%02d", tc.val, tod, tc.h, tc.m, tc.s)
		}
		if got, want := tod.String(), tc.asString; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "24", "12:60", "12:00:60", "1:2:3:4", "aa:00"} {
		var tod calendar.TimeOfDay
		if err := tod.Parse(val); err == nil {
			t.Errorf("%q: failed to return an error", val)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	for _, tc := range []struct {
		when time.Time
		want string
	}{
		{time.Date(2024, 2, 1, 9, 5, 3, 0, time.UTC), "09:05:03"},
		{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "00:00:00"},
		{time.Date(2024, 2, 1, 23, 59, 59, 999999999, time.UTC), "23:59:59"},
		{time.Date(2024, 2, 1, 12, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)), "12:30:00"},
	} {
		if got, want := calendar.TimeOfDayString(tc.when), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
}

func TestTimeOfDayOn(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	when := time.Date(2024, 9, 13, 23, 59, 1, 500, est)
	var tod calendar.TimeOfDay
	if err := tod.Parse("08:30"); err != nil {
		t.Fatal(err)
	}
	got := tod.On(when)
	if want := time.Date(2024, 9, 13, 8, 30, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := got.Location(), est; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.NewTimeOfDay(0, 0, 0).On(when), time.Date(2024, 9, 13, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFormatUS(t *testing.T) {
	for _, tc := range []struct {
		val, want string
	}{
		{"2024-02-01T15:00:00.000Z", "2/1/2024, 3:00:00 PM"},
		{"1999-01-05T02:20:00.000Z", "1/5/1999, 2:20:00 AM"},
		{"2010-12-15T22:59:00.000Z", "12/15/2010, 10:59:00 PM"},
		{"2024-02-01T00:05:09.000Z", "2/1/2024, 12:05:09 AM"},
		{"2024-02-01T12:00:00.000Z", "2/1/2024, 12:00:00 PM"},
		{"2024-02-01T01:00:00.000+02:00", "1/31/2024, 11:00:00 PM"},
	} {
		when, err := calendar.ParseInstant(tc.val, time.UTC)
		if err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := calendar.FormatUS(when), tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
}
