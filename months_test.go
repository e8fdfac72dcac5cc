// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"
	"time"

	"cloudeng.io/calendar"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want calendar.Month
	}{
		{"1", 1},
		{"01", 1},
		{"12", 12},
		{"Jan", 1},
		{"february", 2},
		{"SEPT", 9},
		{"dec", 12},
	} {
		var m calendar.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "0", "13", "ja", "Janu4ry", "-1"} {
		var m calendar.Month
		if err := m.Parse(val); err == nil {
			t.Errorf("%q: failed to return an error", val)
		}
	}
	if got, want := calendar.Month(3).String(), "March"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2022, false},
		{2020, true},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
	} {
		if got, want := calendar.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		when := time.Date(tc.year, 3, 1, 0, 0, 0, 0, time.Local)
		if got, want := calendar.IsLeapYear(when), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		feb := 28
		if tc.leap {
			feb = 29
		}
		if got, want := calendar.DaysInFeb(tc.year), feb; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month calendar.Month
		days  int
	}{
		{2024, 1, 31},
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 4, 30},
		{2024, 6, 30},
		{2024, 9, 30},
		{2024, 11, 30},
		{2024, 12, 31},
		{2024, 13, 31}, // January 2025
		{2024, 14, 28}, // February 2025
		{2024, 0, 31},  // December 2023
	} {
		if got, want := calendar.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}

	// Cross check against the zeroth day of the following month.
	for year := 1999; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			want := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := calendar.DaysInMonth(year, calendar.Month(month)); got != want {
				t.Errorf("%v/%v: got %v, want %v", month, year, got, want)
			}
		}
	}
}

func TestQuarter(t *testing.T) {
	for month := 1; month <= 12; month++ {
		when := time.Date(2024, time.Month(month), 10, 0, 0, 0, 0, time.UTC)
		if got, want := calendar.Quarter(when), (month+2)/3; got != want {
			t.Errorf("%v: got %v, want %v", month, got, want)
		}
	}
	for _, tc := range []struct {
		when time.Time
		q    int
	}{
		{time.Date(2024, 2, 13, 0, 0, 0, 0, time.Local), 1},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), 2},
		{time.Date(2024, 11, 10, 0, 0, 0, 0, time.Local), 4},
	} {
		if got, want := calendar.Quarter(tc.when), tc.q; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}
}
