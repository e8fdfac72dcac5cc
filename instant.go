// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// ErrInvalidDate is returned, wrapped, for values that do not parse
// to a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

type layout struct {
	format string
	utc    bool // date only forms are always interpreted as UTC.
}

var instantLayouts = []layout{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04Z07:00", false},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
	{time.DateOnly, true},
	{"2006-01", true},
	{"2006", true},
	{time.RFC1123, false},
	{time.RFC1123Z, false},
	{"02 Jan 2006 15:04:05 MST", false},
	{"02 Jan 2006 15:04:05 -0700", false},
}

// ParseInstant parses val as an ISO 8601 or RFC 1123 date or date and
// time. The supported forms are:
//
//	2006-01-02T15:04:05.000Z07:00  (RFC3339 with optional fractional seconds)
//	2006-01-02T15:04Z07:00
//	2006-01-02T15:04[:05[.000]]    (interpreted in loc)
//	2006-01-02, 2006-01 or 2006    (interpreted as UTC)
//	[Mon, ]02 Jan 2006 15:04:05 MST or -0700
//
// Zone abbreviations other than UTC and GMT are only recognised if
// they are used by loc.
// A nil loc is treated as time.Local. Values that do not match any of these
// forms, or that contain out of range fields such as Feb-30, result in an
// error that wraps ErrInvalidDate.
func ParseInstant(val string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return time.Time{}, fmt.Errorf("empty value: %w", ErrInvalidDate)
	}
	for _, l := range instantLayouts {
		in := loc
		if l.utc {
			in = time.UTC
		}
		if t, err := time.ParseInLocation(l.format, val, in); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", val, ErrInvalidDate)
}

// ToTimestamp parses val using ParseInstant, with zone-less values
// interpreted in time.Local, and returns the number of milliseconds
// since the Unix epoch.
func ToTimestamp(val string) (int64, error) {
	t, err := ParseInstant(val, time.Local)
	if err != nil {
		return 0, err
	}
	return Timestamp(t), nil
}

// Timestamp returns the number of milliseconds since the Unix epoch.
func Timestamp(when time.Time) int64 {
	return when.UnixMilli()
}

// FromTimestamp returns the time for the specified number of milliseconds
// since the Unix epoch in the given location. A nil loc is treated as UTC.
func FromTimestamp(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc)
}

type locKey struct{}

// ContextWithLocation returns a new context with the given location stored
// in it for use when interpreting values that carry no timezone.
func ContextWithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locKey{}, loc)
}

// LocationFromContext returns the location stored in the given context,
// or time.Local if there is none.
func LocationFromContext(ctx context.Context) *time.Location {
	loc, ok := ctx.Value(locKey{}).(*time.Location)
	if !ok || loc == nil {
		return time.Local
	}
	return loc
}
