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

// Positivist year 1 is Gregorian 1789.
const positivistYearOffset = 1_788

// PositivistMonth numbers the thirteen months of Comte's Positivist
// calendar plus the complementary festival days counted as a short
// fourteenth month.
type PositivistMonth int

const (
	Moses PositivistMonth = iota + 1
	Homer
	Aristotle
	Archimedes
	Caesar
	SaintPaul
	Charlemagne
	Dante
	Gutenberg
	Shakespeare
	Descartes
	Frederick
	Bichat
	PositivistFestivals
)

var positivistMonthNames = [14]string{
	"Moses", "Homer", "Aristotle", "Archimedes", "Caesar", "Saint Paul",
	"Charlemagne", "Dante", "Gutenberg", "Shakespeare", "Descartes",
	"Frederick", "Bichat", "Festivals",
}

func (m PositivistMonth) String() string {
	if m < Moses || m > PositivistFestivals {
		return fmt.Sprintf("PositivistMonth(%d)", int(m))
	}
	return positivistMonthNames[m-1]
}

// Positivist is a date in Auguste Comte's Positivist calendar:
// thirteen 28 day months counted from Gregorian 1789, ending with the
// Festival of the Dead and, in leap years, the Festival of Holy Women.
type Positivist struct {
	year  int
	month PositivistMonth
	day   int
}

// NewPositivist returns the validated Positivist date.
func NewPositivist(year int, month PositivistMonth, day int) (Positivist, error) {
	if !yearInRange(year) {
		return Positivist{}, fmt.Errorf("positivist year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Moses || month > PositivistFestivals {
		return Positivist{}, fmt.Errorf("positivist month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > positivistDaysInMonth(year, month) {
		return Positivist{}, fmt.Errorf("positivist %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Positivist{year, month, day}, nil
}

// Year returns the year of the Great Crisis era.
func (d Positivist) Year() int { return d.year }

// Month returns the month.
func (d Positivist) Month() PositivistMonth { return d.month }

// Day returns the day of the month.
func (d Positivist) Day() int { return d.day }

// IsPositivistLeapYear reports whether the year has a second festival
// day.
func IsPositivistLeapYear(year int) bool {
	return IsGregorianLeapYear(year + positivistYearOffset)
}

func positivistDaysInMonth(year int, month PositivistMonth) int {
	if month == PositivistFestivals {
		if IsPositivistLeapYear(year) {
			return 2
		}
		return 1
	}
	return 28
}

// DaysInMonth returns the length of the date's month.
func (d Positivist) DaysInMonth() int { return positivistDaysInMonth(d.year, d.month) }

// Weekday returns the perennial weekday of the date; the festival
// days have none. Every Positivist month begins on a Monday.
func (d Positivist) Weekday() (daycycle.Weekday, bool) {
	if d.month == PositivistFestivals {
		return 0, false
	}
	return daycycle.Weekday(calmath.Mod(int64(d.day), 7)), true
}

// Fixed implements daycount.ToFixed.
func (d Positivist) Fixed() daycount.Fixed {
	ordinal := 28*(int64(d.month)-1) + int64(d.day)
	if d.month == PositivistFestivals {
		ordinal = 364 + int64(d.day)
	}
	return daycount.Fixed(gregorianPriorDays(d.year+positivistYearOffset) + ordinal)
}

// FromFixed implements daycount.FromFixed.
func (Positivist) FromFixed(f daycount.Fixed) Positivist {
	gYear := gregorianYearFromFixed(f)
	year := gYear - positivistYearOffset
	ordinal := int64(f) - gregorianPriorDays(gYear)
	if ordinal > 364 {
		return Positivist{year, PositivistFestivals, int(ordinal - 364)}
	}
	month := PositivistMonth(calmath.FloorDiv(ordinal-1, 28) + 1)
	day := int(calmath.Mod(ordinal-1, 28) + 1)
	return Positivist{year, month, day}
}

func (d Positivist) String() string {
	if d.month == PositivistFestivals {
		if d.day == 2 {
			return fmt.Sprintf("Festival of Holy Women %d", d.year)
		}
		return fmt.Sprintf("Festival of the Dead %d", d.year)
	}
	return fmt.Sprintf("%v %d, %d", d.month, d.day, d.year)
}
