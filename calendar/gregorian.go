// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// Month numbers the months January (1) through December (12). It is
// shared by the calendars that keep the Roman month roster: Gregorian,
// Julian, Holocene, Roman and the Symmetry calendars.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Gregorian is a date in the proleptic Gregorian calendar with
// astronomical year numbering: year 0 precedes year 1. The calendar's
// epoch, 0001-01-01, is fixed day 1.
type Gregorian struct {
	year  int
	month Month
	day   int
}

// NewGregorian returns the validated Gregorian date.
func NewGregorian(year int, month Month, day int) (Gregorian, error) {
	if !yearInRange(year) {
		return Gregorian{}, fmt.Errorf("gregorian year %d: %w", year, ErrYearOutOfRange)
	}
	if month < January || month > December {
		return Gregorian{}, fmt.Errorf("gregorian month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > gregorianDaysInMonth(year, month) {
		return Gregorian{}, fmt.Errorf("gregorian %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Gregorian{year, month, day}, nil
}

// Year returns the astronomical year.
func (d Gregorian) Year() int { return d.year }

// Month returns the month.
func (d Gregorian) Month() Month { return d.month }

// Day returns the day of the month.
func (d Gregorian) Day() int { return d.day }

// IsGregorianLeapYear reports whether the given year is a leap year:
// divisible by 4, excluding centuries not divisible by 400.
func IsGregorianLeapYear(year int) bool {
	y := int64(year)
	if calmath.Mod(y, 4) != 0 {
		return false
	}
	switch calmath.Mod(y, 400) {
	case 100, 200, 300:
		return false
	}
	return true
}

func gregorianDaysInMonth(year int, month Month) int {
	switch month {
	case February:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	}
	return 31
}

// DaysInMonth returns the length of the date's month.
func (d Gregorian) DaysInMonth() int { return gregorianDaysInMonth(d.year, d.month) }

// DaysInYear returns the length of the date's year.
func (d Gregorian) DaysInYear() int {
	if IsGregorianLeapYear(d.year) {
		return 366
	}
	return 365
}

// gregorianPriorDays returns the number of days elapsed before
// January 1 of the given year, so the fixed day of the new year is
// gregorianPriorDays(y) + 1.
func gregorianPriorDays(year int) int64 {
	y := int64(year) - 1
	return 365*y + calmath.FloorDiv(y, 4) - calmath.FloorDiv(y, 100) + calmath.FloorDiv(y, 400)
}

// gregorianOrdinal returns the day of the year of the given date.
func gregorianOrdinal(year int, month Month, day int) int64 {
	n := calmath.FloorDiv(367*int64(month)-362, 12) + int64(day)
	if month > February {
		if IsGregorianLeapYear(year) {
			n--
		} else {
			n -= 2
		}
	}
	return n
}

func gregorianToFixed(year int, month Month, day int) daycount.Fixed {
	return daycount.Fixed(gregorianPriorDays(year) + gregorianOrdinal(year, month, day))
}

// gregorianYearFromFixed recovers the year containing a fixed day by
// peeling off complete 400, 100, 4 and 1 year cycles.
func gregorianYearFromFixed(f daycount.Fixed) int {
	d0 := int64(f) - 1
	n400 := calmath.FloorDiv(d0, 146097)
	d1 := calmath.Mod(d0, 146097)
	n100 := calmath.FloorDiv(d1, 36524)
	d2 := calmath.Mod(d1, 36524)
	n4 := calmath.FloorDiv(d2, 1461)
	d3 := calmath.Mod(d2, 1461)
	n1 := calmath.FloorDiv(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 != 4 && n1 != 4 {
		year++
	}
	return int(year)
}

func gregorianFromFixed(f daycount.Fixed) Gregorian {
	year := gregorianYearFromFixed(f)
	priorDays := int64(f) - int64(gregorianToFixed(year, January, 1))
	var correction int64
	if f >= gregorianToFixed(year, March, 1) {
		if IsGregorianLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := Month(calmath.FloorDiv(12*(priorDays+correction)+373, 367))
	day := int(int64(f)-int64(gregorianToFixed(year, month, 1))) + 1
	return Gregorian{year, month, day}
}

// Fixed implements daycount.ToFixed.
func (d Gregorian) Fixed() daycount.Fixed {
	return gregorianToFixed(d.year, d.month, d.day)
}

// FromFixed implements daycount.FromFixed.
func (Gregorian) FromFixed(f daycount.Fixed) Gregorian {
	return gregorianFromFixed(f)
}

// GregorianOfFixed returns the Gregorian date of the given fixed day.
func GregorianOfFixed(f daycount.Fixed) Gregorian {
	return gregorianFromFixed(f)
}

// DayOfYear returns the 1-based ordinal day within the year.
func (d Gregorian) DayOfYear() int {
	return int(gregorianOrdinal(d.year, d.month, d.day))
}

func (d Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
