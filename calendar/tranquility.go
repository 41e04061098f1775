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

// The Tranquility epoch is the day of the first moon landing,
// Gregorian 1969-07-20.
const (
	tranquilityEpochGregorianYear = 1969
	tranquilityEpochMonth         = July
	tranquilityEpochDay           = 20
)

// tranquilityEpoch is the fixed day of Moon Landing Day.
var tranquilityEpoch = gregorianToFixed(tranquilityEpochGregorianYear, tranquilityEpochMonth, tranquilityEpochDay)

// TranquilityMonth numbers the thirteen 28 day months, named for
// scientists.
type TranquilityMonth int

const (
	ArchimedesMonth TranquilityMonth = iota + 1
	Brahe
	Copernicus
	Darwin
	Einstein
	Faraday
	Galileo
	Hippocrates
	Imhotep
	Jung
	Kepler
	Lavoisier
	Mendel
)

var tranquilityMonthNames = [13]string{
	"Archimedes", "Brahe", "Copernicus", "Darwin", "Einstein", "Faraday",
	"Galileo", "Hippocrates", "Imhotep", "Jung", "Kepler", "Lavoisier",
	"Mendel",
}

func (m TranquilityMonth) String() string {
	if m < ArchimedesMonth || m > Mendel {
		return fmt.Sprintf("TranquilityMonth(%d)", int(m))
	}
	return tranquilityMonthNames[m-1]
}

// TranquilityDay distinguishes the intercalary days that belong to no
// month.
type TranquilityDay int

const (
	MoonLandingDay TranquilityDay = iota
	ArmstrongDay
	AldrinDay
)

var tranquilityDayNames = [3]string{"Moon Landing Day", "Armstrong Day", "Aldrin Day"}

func (d TranquilityDay) String() string {
	if d < MoonLandingDay || d > AldrinDay {
		return fmt.Sprintf("TranquilityDay(%d)", int(d))
	}
	return tranquilityDayNames[d]
}

// Aldrin Day follows Hippocrates 27 in leap years; its ordinal day is
// 8*28 = 224, displacing Hippocrates 28 and everything after it.
const tranquilityAldrinOrdinal = 8 * 28

// Tranquility is a date in the Tranquility calendar: thirteen 28 day
// months counted before and after the first moon landing. Year 0
// consists of Moon Landing Day alone; year 1 begins the following
// day and year -1 ends the day before, so year -1 has no Armstrong
// Day. Intercalary dates carry month 0 and a TranquilityDay in place
// of a day of the month.
type Tranquility struct {
	year  int
	month TranquilityMonth // 0 for intercalary days
	day   int              // day of month, or int(TranquilityDay)
}

// NewTranquility returns the validated Tranquility month date.
func NewTranquility(year int, month TranquilityMonth, day int) (Tranquility, error) {
	if year == 0 || !yearInRange(year) {
		return Tranquility{}, fmt.Errorf("tranquility year %d: %w", year, ErrYearOutOfRange)
	}
	if month < ArchimedesMonth || month > Mendel {
		return Tranquility{}, fmt.Errorf("tranquility month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > 28 {
		return Tranquility{}, fmt.Errorf("tranquility %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Tranquility{year, month, day}, nil
}

// NewTranquilityIntercalary returns the validated intercalary date:
// Moon Landing Day in year 0, Armstrong Day in any year except 0 and
// -1, or Aldrin Day in a leap year.
func NewTranquilityIntercalary(year int, day TranquilityDay) (Tranquility, error) {
	if !yearInRange(year) {
		return Tranquility{}, fmt.Errorf("tranquility year %d: %w", year, ErrYearOutOfRange)
	}
	switch day {
	case MoonLandingDay:
		if year != 0 {
			return Tranquility{}, fmt.Errorf("moon landing day in year %d: %w", year, ErrDayOutOfRange)
		}
	case ArmstrongDay:
		if year == 0 || year == -1 {
			return Tranquility{}, fmt.Errorf("armstrong day in year %d: %w", year, ErrDayOutOfRange)
		}
	case AldrinDay:
		if year == 0 || !IsTranquilityLeapYear(year) {
			return Tranquility{}, fmt.Errorf("aldrin day in year %d: %w", year, ErrDayOutOfRange)
		}
	default:
		return Tranquility{}, fmt.Errorf("tranquility intercalary day %d: %w", day, ErrDayOutOfRange)
	}
	return Tranquility{year, 0, int(day)}, nil
}

// Year returns the year; positive years are After Tranquility,
// negative Before Tranquility, and 0 is Moon Landing Day itself.
func (d Tranquility) Year() int { return d.year }

// Month returns the month and true, or 0 and false for intercalary
// days.
func (d Tranquility) Month() (TranquilityMonth, bool) {
	return d.month, d.month != 0
}

// Day returns the day of the month; 0 for intercalary days.
func (d Tranquility) Day() int {
	if d.month == 0 {
		return 0
	}
	return d.day
}

// Intercalary returns the intercalary day and true, or false for
// ordinary month dates.
func (d Tranquility) Intercalary() (TranquilityDay, bool) {
	if d.month != 0 {
		return 0, false
	}
	return TranquilityDay(d.day), true
}

// IsTranquilityLeapYear reports whether the given year contains
// Aldrin Day, which happens when it contains a Gregorian February 29.
func IsTranquilityLeapYear(year int) bool {
	switch {
	case year > 0:
		return IsGregorianLeapYear(year + tranquilityEpochGregorianYear)
	case year < 0:
		return IsGregorianLeapYear(year + tranquilityEpochGregorianYear + 1)
	}
	return false
}

// Weekday returns the perennial weekday; intercalary days have none.
// Every Tranquility month begins on a Friday.
func (d Tranquility) Weekday() (daycycle.Weekday, bool) {
	if d.month == 0 {
		return 0, false
	}
	return daycycle.Weekday(calmath.Mod(int64(d.day)+4, 7)), true
}

// intercalaryCount returns the number of intercalary days ending the
// given year.
func tranquilityIntercalaryCount(year int) int64 {
	switch {
	case IsTranquilityLeapYear(year):
		return 2
	case year == -1:
		return 0
	}
	return 1
}

// tranquilityPriorDays returns the number of days elapsed before the
// first day of the given year.
func tranquilityPriorDays(year int) int64 {
	if year == 0 {
		return int64(tranquilityEpoch) - 1
	}
	y := year
	if y < 0 {
		y++
	}
	return int64(gregorianToFixed(y-1+tranquilityEpochGregorianYear, tranquilityEpochMonth, tranquilityEpochDay))
}

// tranquilityOrdinal returns the 1-based day of the year.
func (d Tranquility) tranquilityOrdinal() int64 {
	if day, ok := d.Intercalary(); ok {
		switch day {
		case MoonLandingDay:
			return 1
		case ArmstrongDay:
			return 364 + tranquilityIntercalaryCount(d.year)
		default: // AldrinDay
			return tranquilityAldrinOrdinal
		}
	}
	ordinal := 28*(int64(d.month)-1) + int64(d.day)
	if ordinal >= tranquilityAldrinOrdinal && tranquilityIntercalaryCount(d.year) == 2 {
		ordinal++
	}
	return ordinal
}

// Fixed implements daycount.ToFixed.
func (d Tranquility) Fixed() daycount.Fixed {
	return daycount.Fixed(tranquilityPriorDays(d.year) + d.tranquilityOrdinal())
}

// FromFixed implements daycount.FromFixed.
func (Tranquility) FromFixed(f daycount.Fixed) Tranquility {
	// Shift the Gregorian day of the year so that July 21 becomes day
	// 1 of the Tranquility year that starts after the epoch's
	// anniversary.
	const ordinalShift = 6*28 - 4
	g := gregorianFromFixed(f)
	gLen := int64(365)
	if IsGregorianLeapYear(g.year) {
		gLen = 366
	}
	doy := calmath.AdjRem(int64(g.DayOfYear())+ordinalShift, gLen)
	year := g.year - tranquilityEpochGregorianYear
	if doy <= ordinalShift {
		year++
	}
	if year < 1 {
		year--
	}
	if year == -1 && doy == 365 {
		return Tranquility{0, 0, int(MoonLandingDay)}
	}
	leap := IsTranquilityLeapYear(year)
	switch {
	case doy == 365 && !leap, doy == 366 && leap:
		return Tranquility{year, 0, int(ArmstrongDay)}
	case doy == tranquilityAldrinOrdinal && leap:
		return Tranquility{year, 0, int(AldrinDay)}
	}
	if leap && doy > tranquilityAldrinOrdinal {
		doy--
	}
	month := TranquilityMonth(calmath.FloorDiv(doy-1, 28) + 1)
	day := int(calmath.AdjRem(doy, 28))
	return Tranquility{year, month, day}
}

func (d Tranquility) String() string {
	era := "AT"
	year := d.year
	if year < 0 {
		era = "BT"
		year = -year
	}
	if day, ok := d.Intercalary(); ok {
		if day == MoonLandingDay {
			return "Moon Landing Day"
		}
		return fmt.Sprintf("%v, %d %v", day, year, era)
	}
	return fmt.Sprintf("%v %d, %d %v", d.month, d.day, year, era)
}
