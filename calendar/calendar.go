// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar implements arithmetic calendar systems over the
// daycount.Fixed pivot. Each calendar is an immutable value type whose
// only public constructors are a validating New function and decoding
// from a fixed day, so any value in hand represents a valid date.
// Conversion between any two systems goes through the pivot:
//
//	g, err := calendar.NewGregorian(2025, calendar.July, 26)
//	...
//	j := daycount.Convert[calendar.Julian](g)
//
// The arithmetic follows Reingold & Dershowitz, Calendrical
// Calculations.
package calendar

import (
	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/errors"
)

// Error kinds reported by the validating constructors. Errors are
// wrapped with field context; test with errors.Is.
var (
	ErrYearOutOfRange  = errors.New("year out of range")
	ErrMonthOutOfRange = errors.New("month out of range")
	ErrDayOutOfRange   = errors.New("day out of range")
	ErrWeekOutOfRange  = errors.New("week out of range")
)

// ErrUnrepresentable mirrors daycount.ErrUnrepresentable: the fields
// are internally consistent but the date falls outside the supported
// day range, or names a day the system cannot express.
var ErrUnrepresentable = daycount.ErrUnrepresentable

// Years accepted by the validating constructors. The limit keeps every
// constructible date comfortably inside [daycount.MinFixed,
// daycount.MaxFixed] for all systems.
const (
	maxYear = 40_000_000
	minYear = -40_000_000
)

func yearInRange(y int) bool {
	return y >= minYear && y <= maxYear
}

// AddDays returns the date n days after d in the same calendar system.
func AddDays[T daycount.FromFixed[T]](d daycount.ToFixed, n int64) (T, error) {
	var t T
	f, err := d.Fixed().Add(n)
	if err != nil {
		return t, err
	}
	return t.FromFixed(f), nil
}

// Compare orders two dates, possibly from different calendar systems,
// by the day they fall on.
func Compare(a, b daycount.ToFixed) int {
	return a.Fixed().Compare(b.Fixed())
}
