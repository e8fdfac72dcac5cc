// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/calendar"
	"gopkg.in/yaml.v3"
)

func newCalendarDate(y, m, d int) calendar.CalendarDate {
	return calendar.CalendarDate{Year: y, Month: calendar.Month(m), Day: d}
}

func TestParseDMY(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		val  string
		want calendar.CalendarDate
	}{
		{"01-01-2024", ncd(2024, 1, 1)},
		{"1-1-2024", ncd(2024, 1, 1)},
		{"29-02-2024", ncd(2024, 2, 29)},
		{"31-12-1999", ncd(1999, 12, 31)},
		{" 15-01-2024 ", ncd(2024, 1, 15)},
	} {
		got, err := calendar.ParseDMY(tc.val)
		if err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.val, got, tc.want)
		}
	}
	for _, val := range []string{
		"",
		"29-02-2023",
		"31-04-2024",
		"00-01-2024",
		"01-13-2024",
		"01-01-24",
		"2024-01-01",
		"01/01/2024",
		"aa-01-2024",
		"001-01-2024",
	} {
		if _, err := calendar.ParseDMY(val); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", val, err)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		cd, tomorrow calendar.CalendarDate
	}{
		{ncd(2024, 1, 1), ncd(2024, 1, 2)},
		{ncd(2024, 1, 31), ncd(2024, 2, 1)},
		{ncd(2024, 2, 28), ncd(2024, 2, 29)},
		{ncd(2024, 2, 29), ncd(2024, 3, 1)},
		{ncd(2023, 2, 28), ncd(2023, 3, 1)},
		{ncd(2023, 12, 31), ncd(2024, 1, 1)},
	} {
		if got, want := tc.cd.Tomorrow(), tc.tomorrow; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
		if !tc.cd.Before(tc.tomorrow) || tc.tomorrow.Before(tc.cd) || tc.cd.Before(tc.cd) {
			t.Errorf("%v: inconsistent ordering with %v", tc.cd, tc.tomorrow)
		}
	}

	when := time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)
	cd := calendar.NewCalendarDate(when)
	if got, want := cd, ncd(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Time(nil), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Weekday(), time.Thursday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.String(), "29-02-2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cdl := calendar.CalendarDateList{ncd(2024, 1, 1), ncd(2024, 1, 5), ncd(2024, 1, 9)}
	if got, want := cdl.String(), "01-01-2024, 05-01-2024, 09-01-2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cdl.Contains(ncd(2024, 1, 5)) || cdl.Contains(ncd(2024, 1, 6)) {
		t.Errorf("incorrect result for Contains")
	}
}

func TestCalendarDateYAML(t *testing.T) {
	var cfg struct {
		Period calendar.CalendarPeriod `yaml:"period"`
	}
	contents := `
period:
  from: 01-01-2024
  to: 15-01-2024
`
	if err := yaml.Unmarshal([]byte(contents), &cfg); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Period, calendar.NewCalendarPeriod(newCalendarDate(2024, 1, 1), newCalendarDate(2024, 1, 15)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := yaml.Unmarshal([]byte("period:\n  from: 30-02-2024\n"), &cfg); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
