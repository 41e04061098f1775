// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// The fixed day of Julian 0001-01-01, two days before the Gregorian
// epoch.
const julianEpoch = -1

// Julian is a date in the proleptic Julian calendar. There is no year
// zero: year -1 immediately precedes year 1.
type Julian struct {
	year  int
	month Month
	day   int
}

// NewJulian returns the validated Julian date.
func NewJulian(year int, month Month, day int) (Julian, error) {
	if year == 0 || !yearInRange(year) {
		return Julian{}, fmt.Errorf("julian year %d: %w", year, ErrYearOutOfRange)
	}
	if month < January || month > December {
		return Julian{}, fmt.Errorf("julian month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > julianDaysInMonth(year, month) {
		return Julian{}, fmt.Errorf("julian %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Julian{year, month, day}, nil
}

// Year returns the year; negative years are BCE and year 0 does not
// occur.
func (d Julian) Year() int { return d.year }

// Month returns the month.
func (d Julian) Month() Month { return d.month }

// Day returns the day of the month.
func (d Julian) Day() int { return d.day }

// IsJulianLeapYear reports whether the given year is a Julian leap
// year: every fourth year, which for the negative years of the
// no-year-zero numbering means year mod 4 == 3.
func IsJulianLeapYear(year int) bool {
	if year > 0 {
		return calmath.Mod(int64(year), 4) == 0
	}
	return calmath.Mod(int64(year), 4) == 3
}

func julianDaysInMonth(year int, month Month) int {
	switch month {
	case February:
		if IsJulianLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	}
	return 31
}

// DaysInMonth returns the length of the date's month.
func (d Julian) DaysInMonth() int { return julianDaysInMonth(d.year, d.month) }

// DaysInYear returns the length of the date's year.
func (d Julian) DaysInYear() int {
	if IsJulianLeapYear(d.year) {
		return 366
	}
	return 365
}

func julianToFixed(year int, month Month, day int) daycount.Fixed {
	y := int64(year)
	if y < 0 {
		y++ // no year zero
	}
	n := julianEpoch - 1 + 365*(y-1) + calmath.FloorDiv(y-1, 4)
	n += calmath.FloorDiv(367*int64(month)-362, 12)
	if month > February {
		if IsJulianLeapYear(year) {
			n--
		} else {
			n -= 2
		}
	}
	return daycount.Fixed(n + int64(day))
}

func julianFromFixed(f daycount.Fixed) Julian {
	approx := calmath.FloorDiv(4*(int64(f)-julianEpoch)+1464, 1461)
	year := int(approx)
	if approx <= 0 {
		year = int(approx) - 1
	}
	priorDays := int64(f) - int64(julianToFixed(year, January, 1))
	var correction int64
	if f >= julianToFixed(year, March, 1) {
		if IsJulianLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := Month(calmath.FloorDiv(12*(priorDays+correction)+373, 367))
	day := int(int64(f)-int64(julianToFixed(year, month, 1))) + 1
	return Julian{year, month, day}
}

// Fixed implements daycount.ToFixed.
func (d Julian) Fixed() daycount.Fixed {
	return julianToFixed(d.year, d.month, d.day)
}

// FromFixed implements daycount.FromFixed.
func (Julian) FromFixed(f daycount.Fixed) Julian {
	return julianFromFixed(f)
}

func (d Julian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d (Julian)", d.year, d.month, d.day)
}
