// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycycle implements repeating day cycles that are not
// anchored to any year: the seven day week and the 42 day Akan cycle.
// A cycle position is derived from a fixed day by modular arithmetic
// alone, so it is well defined arbitrarily far into the past.
package daycycle

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// Weekday numbers the days of the week with Sunday as 0. Fixed day 1
// (Gregorian 0001-01-01) is a Monday and the numbering extends to
// negative day counts without discontinuity.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf returns the weekday of the given fixed day.
func WeekdayOf(f daycount.Fixed) Weekday {
	return Weekday(calmath.Mod(int64(f), 7))
}

// FromFixed implements daycount.FromFixed.
func (Weekday) FromFixed(f daycount.Fixed) Weekday {
	return WeekdayOf(f)
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// OnOrBefore returns the last fixed day on or before f that falls on
// weekday w.
func (w Weekday) OnOrBefore(f daycount.Fixed) daycount.Fixed {
	return f - daycount.Fixed(calmath.Mod(int64(f)-int64(w), 7))
}

// Before returns the last day strictly before f that falls on w.
func (w Weekday) Before(f daycount.Fixed) daycount.Fixed {
	return w.OnOrBefore(f - 1)
}

// OnOrAfter returns the first day on or after f that falls on w.
func (w Weekday) OnOrAfter(f daycount.Fixed) daycount.Fixed {
	return w.OnOrBefore(f + 6)
}

// After returns the first day strictly after f that falls on w.
func (w Weekday) After(f daycount.Fixed) daycount.Fixed {
	return w.OnOrBefore(f + 7)
}

// Nearest returns the day nearest to f that falls on w, preferring
// the later day when f is equidistant.
func (w Weekday) Nearest(f daycount.Fixed) daycount.Fixed {
	return w.OnOrBefore(f + 3)
}
