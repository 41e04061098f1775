// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/calendrical/daycycle"
)

// ISO is a date in the ISO-8601 week calendar: a year, a week 1..52
// (53 in long years) and a day of the week numbered Monday=1 through
// Sunday=7. Week 1 is the week containing the first Thursday of the
// Gregorian year.
type ISO struct {
	year int
	week int
	day  int
}

// NewISO returns the validated ISO week date.
func NewISO(year, week, day int) (ISO, error) {
	if !yearInRange(year) {
		return ISO{}, fmt.Errorf("iso year %d: %w", year, ErrYearOutOfRange)
	}
	maxWeek := 52
	if IsISOLongYear(year) {
		maxWeek = 53
	}
	if week < 1 || week > maxWeek {
		return ISO{}, fmt.Errorf("iso %d-W%02d: %w", year, week, ErrWeekOutOfRange)
	}
	if day < 1 || day > 7 {
		return ISO{}, fmt.Errorf("iso day %d: %w", day, ErrDayOutOfRange)
	}
	return ISO{year, week, day}, nil
}

// Year returns the ISO week-numbering year.
func (d ISO) Year() int { return d.year }

// Week returns the week of the year.
func (d ISO) Week() int { return d.week }

// Day returns the day of the week, Monday=1 through Sunday=7.
func (d ISO) Day() int { return d.day }

// Weekday returns the day of the week in the common Sunday=0
// numbering.
func (d ISO) Weekday() daycycle.Weekday {
	return daycycle.Weekday(calmath.Mod(int64(d.day), 7))
}

// IsISOLongYear reports whether the given ISO year has 53 weeks,
// which happens when the Gregorian year begins or ends on a Thursday.
func IsISOLongYear(year int) bool {
	jan1 := daycycle.WeekdayOf(gregorianToFixed(year, January, 1))
	dec31 := daycycle.WeekdayOf(gregorianToFixed(year, December, 31))
	return jan1 == daycycle.Thursday || dec31 == daycycle.Thursday
}

// Weeks returns the number of weeks in the date's year.
func (d ISO) Weeks() int {
	if IsISOLongYear(d.year) {
		return 53
	}
	return 52
}

func isoToFixed(year, week, day int) daycount.Fixed {
	// The Sunday before the week containing the first Thursday of the
	// year, found from December 28 of the prior year.
	anchor := daycycle.Sunday.Before(gregorianToFixed(year-1, December, 28))
	return anchor + daycount.Fixed(7*int64(week)+int64(day))
}

func isoFromFixed(f daycount.Fixed) ISO {
	year := gregorianYearFromFixed(f - 3)
	if f >= isoToFixed(year+1, 1, 1) {
		year++
	}
	week := int(calmath.FloorDiv(int64(f)-int64(isoToFixed(year, 1, 1)), 7) + 1)
	day := int(calmath.AdjRem(int64(f), 7))
	return ISO{year, week, day}
}

// Fixed implements daycount.ToFixed.
func (d ISO) Fixed() daycount.Fixed {
	return isoToFixed(d.year, d.week, d.day)
}

// FromFixed implements daycount.FromFixed.
func (ISO) FromFixed(f daycount.Fixed) ISO {
	return isoFromFixed(f)
}

func (d ISO) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", d.year, d.week, d.day)
}
