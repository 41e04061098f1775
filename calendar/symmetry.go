// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// The Symmetry calendars share their epoch with the Gregorian
// calendar and intercalate a leap week at the end of December in 52
// of every 293 years, spread by the rule (52y + 146) mod 293 < 52.
// The mean year is 364 + 7*52/293 = 107016/293 days.
const (
	symLeapCycle    = 293
	symLeapWeeks    = 52
	symLeapShift    = 146
	symMeanYearNum  = 107_016
	symMeanYearDen  = 293
	symDaysPerWeek  = 7
	symWeeksPerYear = 52
)

// IsSymmetryLeapYear reports whether the given year of either
// Symmetry calendar carries a leap week.
func IsSymmetryLeapYear(year int) bool {
	return calmath.Mod(symLeapWeeks*int64(year)+symLeapShift, symLeapCycle) < symLeapWeeks
}

// symNewYear returns the fixed day on which the given Symmetry year
// begins. Both quarter shapes share year boundaries.
func symNewYear(year int) daycount.Fixed {
	e := int64(year) - 1
	return daycount.Fixed(1 + 364*e +
		symDaysPerWeek*calmath.FloorDiv(symLeapWeeks*e+symLeapShift, symLeapCycle))
}

// symYearFromFixed recovers the Symmetry year containing a fixed day.
// The estimate from the mean year is at most one off.
func symYearFromFixed(f daycount.Fixed) int {
	year := int(calmath.CeilDiv((int64(f)-1)*symMeanYearDen, symMeanYearNum))
	switch {
	case f < symNewYear(year):
		year--
	case f >= symNewYear(year + 1):
		year++
	}
	return year
}

// sym454DaysInMonth returns the month length under the 4-5-4 week
// quarter shape; the leap week extends December.
func sym454DaysInMonth(year int, month Month) int {
	n := 28 + 7*int(calmath.FloorDiv(calmath.Mod(int64(month), 3), 2))
	if month == December && IsSymmetryLeapYear(year) {
		n += 7
	}
	return n
}

// sym010DaysInMonth returns the month length under the 30-31-30
// quarter shape.
func sym010DaysInMonth(year int, month Month) int {
	n := 30 + int(calmath.FloorDiv(calmath.Mod(int64(month), 3), 2))
	if month == December && IsSymmetryLeapYear(year) {
		n += 7
	}
	return n
}

func sym454DaysBefore(month Month) int64 {
	return 28*(int64(month)-1) + 7*calmath.FloorDiv(int64(month), 3)
}

func sym010DaysBefore(month Month) int64 {
	return 30*(int64(month)-1) + calmath.FloorDiv(int64(month), 3)
}

type symShape struct {
	daysInMonth func(int, Month) int
	daysBefore  func(Month) int64
}

var (
	shape454 = symShape{sym454DaysInMonth, sym454DaysBefore}
	shape010 = symShape{sym010DaysInMonth, sym010DaysBefore}
)

func symValidate(name string, year int, month Month, day int, s symShape) error {
	if !yearInRange(year) {
		return fmt.Errorf("%v year %d: %w", name, year, ErrYearOutOfRange)
	}
	if month < January || month > December {
		return fmt.Errorf("%v month %d: %w", name, month, ErrMonthOutOfRange)
	}
	if day < 1 || day > s.daysInMonth(year, month) {
		return fmt.Errorf("%v %d %v %d: %w", name, year, month, day, ErrDayOutOfRange)
	}
	return nil
}

func symToFixed(year int, month Month, day int, s symShape) daycount.Fixed {
	return symNewYear(year) - 1 + daycount.Fixed(s.daysBefore(month)+int64(day))
}

func symFromFixed(f daycount.Fixed, s symShape) (int, Month, int) {
	year := symYearFromFixed(f)
	rem := int(int64(f) - int64(symNewYear(year)))
	month := January
	for rem >= s.daysInMonth(year, month) && month < December {
		rem -= s.daysInMonth(year, month)
		month++
	}
	return year, month, rem + 1
}

// Symmetry454 is a date in Bromberg's Symmetry454 calendar: perennial
// quarters of 4, 5 and 4 week months, every month beginning on a
// Monday, with a leap week in 52 of 293 years.
type Symmetry454 struct {
	year  int
	month Month
	day   int
}

// NewSymmetry454 returns the validated Symmetry454 date.
func NewSymmetry454(year int, month Month, day int) (Symmetry454, error) {
	if err := symValidate("symmetry454", year, month, day, shape454); err != nil {
		return Symmetry454{}, err
	}
	return Symmetry454{year, month, day}, nil
}

// Year returns the year, aligned with the Gregorian year.
func (d Symmetry454) Year() int { return d.year }

// Month returns the month.
func (d Symmetry454) Month() Month { return d.month }

// Day returns the day of the month.
func (d Symmetry454) Day() int { return d.day }

// DaysInMonth returns the length of the date's month.
func (d Symmetry454) DaysInMonth() int { return sym454DaysInMonth(d.year, d.month) }

// WeekOfYear returns the 1-based week of the year.
func (d Symmetry454) WeekOfYear() int {
	doy := int64(d.Fixed()) - int64(symNewYear(d.year))
	return int(calmath.FloorDiv(doy, 7)) + 1
}

// Fixed implements daycount.ToFixed.
func (d Symmetry454) Fixed() daycount.Fixed {
	return symToFixed(d.year, d.month, d.day, shape454)
}

// FromFixed implements daycount.FromFixed.
func (Symmetry454) FromFixed(f daycount.Fixed) Symmetry454 {
	y, m, dd := symFromFixed(f, shape454)
	return Symmetry454{y, m, dd}
}

func (d Symmetry454) String() string {
	return fmt.Sprintf("%04d-%02d-%02d Sym454", d.year, d.month, d.day)
}

// Symmetry010 is a date in the Symmetry010 calendar, which shares the
// Symmetry454 year structure with 30-31-30 day quarters.
type Symmetry010 struct {
	year  int
	month Month
	day   int
}

// NewSymmetry010 returns the validated Symmetry010 date.
func NewSymmetry010(year int, month Month, day int) (Symmetry010, error) {
	if err := symValidate("symmetry010", year, month, day, shape010); err != nil {
		return Symmetry010{}, err
	}
	return Symmetry010{year, month, day}, nil
}

// Year returns the year, aligned with the Gregorian year.
func (d Symmetry010) Year() int { return d.year }

// Month returns the month.
func (d Symmetry010) Month() Month { return d.month }

// Day returns the day of the month.
func (d Symmetry010) Day() int { return d.day }

// DaysInMonth returns the length of the date's month.
func (d Symmetry010) DaysInMonth() int { return sym010DaysInMonth(d.year, d.month) }

// WeekOfYear returns the 1-based week of the year.
func (d Symmetry010) WeekOfYear() int {
	doy := int64(d.Fixed()) - int64(symNewYear(d.year))
	return int(calmath.FloorDiv(doy, 7)) + 1
}

// Fixed implements daycount.ToFixed.
func (d Symmetry010) Fixed() daycount.Fixed {
	return symToFixed(d.year, d.month, d.day, shape010)
}

// FromFixed implements daycount.FromFixed.
func (Symmetry010) FromFixed(f daycount.Fixed) Symmetry010 {
	y, m, dd := symFromFixed(f, shape010)
	return Symmetry010{y, m, dd}
}

func (d Symmetry010) String() string {
	return fmt.Sprintf("%04d-%02d-%02d Sym010", d.year, d.month, d.day)
}
