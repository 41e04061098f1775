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

// CotsworthMonth numbers the thirteen months of the International
// Fixed Calendar; Sol is inserted between June and July.
type CotsworthMonth int

const (
	CotsworthJanuary CotsworthMonth = iota + 1
	CotsworthFebruary
	CotsworthMarch
	CotsworthApril
	CotsworthMay
	CotsworthJune
	Sol
	CotsworthJuly
	CotsworthAugust
	CotsworthSeptember
	CotsworthOctober
	CotsworthNovember
	CotsworthDecember
)

var cotsworthMonthNames = [13]string{
	"January", "February", "March", "April", "May", "June", "Sol",
	"July", "August", "September", "October", "November", "December",
}

func (m CotsworthMonth) String() string {
	if m < CotsworthJanuary || m > CotsworthDecember {
		return fmt.Sprintf("CotsworthMonth(%d)", int(m))
	}
	return cotsworthMonthNames[m-1]
}

// Ordinal positions of the two intercalary days. Leap Day follows
// June 28 in Gregorian leap years; Year Day ends every year.
const (
	cotsworthLeapDayOrdinal = 6*28 + 1 // June 29
)

// Cotsworth is a date in the International Fixed Calendar (the
// Cotsworth plan): thirteen 28 day months aligned to the Gregorian
// year, with Year Day as December 29 and, in leap years, Leap Day as
// June 29. The intercalary days belong to no week.
type Cotsworth struct {
	year  int
	month CotsworthMonth
	day   int
}

// NewCotsworth returns the validated Cotsworth date.
func NewCotsworth(year int, month CotsworthMonth, day int) (Cotsworth, error) {
	if !yearInRange(year) {
		return Cotsworth{}, fmt.Errorf("cotsworth year %d: %w", year, ErrYearOutOfRange)
	}
	if month < CotsworthJanuary || month > CotsworthDecember {
		return Cotsworth{}, fmt.Errorf("cotsworth month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > cotsworthDaysInMonth(year, month) {
		return Cotsworth{}, fmt.Errorf("cotsworth %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Cotsworth{year, month, day}, nil
}

// Year returns the year, identical to the Gregorian year.
func (d Cotsworth) Year() int { return d.year }

// Month returns the month.
func (d Cotsworth) Month() CotsworthMonth { return d.month }

// Day returns the day of the month.
func (d Cotsworth) Day() int { return d.day }

// IsYearDay reports whether the date is the year-ending intercalary
// day.
func (d Cotsworth) IsYearDay() bool { return d.month == CotsworthDecember && d.day == 29 }

// IsLeapDay reports whether the date is the mid-year intercalary day.
func (d Cotsworth) IsLeapDay() bool { return d.month == CotsworthJune && d.day == 29 }

// Weekday returns the perennial weekday of the date; intercalary days
// have none. Every Cotsworth month begins on a Sunday.
func (d Cotsworth) Weekday() (daycycle.Weekday, bool) {
	if d.IsYearDay() || d.IsLeapDay() {
		return 0, false
	}
	return daycycle.Weekday(calmath.Mod(int64(d.day)-1, 7)), true
}

func cotsworthDaysInMonth(year int, month CotsworthMonth) int {
	switch {
	case month == CotsworthDecember:
		return 29
	case month == CotsworthJune && IsGregorianLeapYear(year):
		return 29
	}
	return 28
}

// DaysInMonth returns the length of the date's month.
func (d Cotsworth) DaysInMonth() int { return cotsworthDaysInMonth(d.year, d.month) }

func cotsworthOrdinal(year int, month CotsworthMonth, day int) int64 {
	if month == CotsworthJune && day == 29 {
		return cotsworthLeapDayOrdinal
	}
	raw := 28*(int64(month)-1) + int64(day)
	if IsGregorianLeapYear(year) && raw >= cotsworthLeapDayOrdinal {
		raw++
	}
	return raw
}

// Fixed implements daycount.ToFixed.
func (d Cotsworth) Fixed() daycount.Fixed {
	return daycount.Fixed(gregorianPriorDays(d.year) + cotsworthOrdinal(d.year, d.month, d.day))
}

// FromFixed implements daycount.FromFixed.
func (Cotsworth) FromFixed(f daycount.Fixed) Cotsworth {
	year := gregorianYearFromFixed(f)
	ordinal := int64(f) - gregorianPriorDays(year)
	if IsGregorianLeapYear(year) {
		switch {
		case ordinal == cotsworthLeapDayOrdinal:
			return Cotsworth{year, CotsworthJune, 29}
		case ordinal > cotsworthLeapDayOrdinal:
			ordinal--
		}
	}
	if ordinal == 365 {
		return Cotsworth{year, CotsworthDecember, 29}
	}
	month := CotsworthMonth(calmath.FloorDiv(ordinal-1, 28) + 1)
	day := int(calmath.Mod(ordinal-1, 28) + 1)
	return Cotsworth{year, month, day}
}

func (d Cotsworth) String() string {
	switch {
	case d.IsYearDay():
		return fmt.Sprintf("Year Day %d", d.year)
	case d.IsLeapDay():
		return fmt.Sprintf("Leap Day %d", d.year)
	}
	return fmt.Sprintf("%v %d, %d IFC", d.month, d.day, d.year)
}
