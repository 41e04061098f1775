// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// The fixed day of French Revolutionary 0001-01-01, Gregorian
// 1792-09-22.
const frenchRevEpoch = 654_415

// FrenchRevMonth numbers the twelve 30 day Revolutionary months plus
// the sansculottides counted as a short thirteenth month.
type FrenchRevMonth int

const (
	Vendemiaire FrenchRevMonth = iota + 1
	Brumaire
	Frimaire
	Nivose
	Pluviose
	Ventose
	Germinal
	Floreal
	Prairial
	Messidor
	Thermidor
	Fructidor
	Sansculottides
)

var frenchRevMonthNames = [13]string{
	"Vendémiaire", "Brumaire", "Frimaire", "Nivôse", "Pluviôse", "Ventôse",
	"Germinal", "Floréal", "Prairial", "Messidor", "Thermidor", "Fructidor",
	"Sansculottides",
}

func (m FrenchRevMonth) String() string {
	if m < Vendemiaire || m > Sansculottides {
		return fmt.Sprintf("FrenchRevMonth(%d)", int(m))
	}
	return frenchRevMonthNames[m-1]
}

// FrenchRevWeekday is a day of the ten day décade.
type FrenchRevWeekday int

const (
	Primidi FrenchRevWeekday = iota + 1
	Duodi
	Tridi
	Quartidi
	Quintidi
	Sextidi
	Septidi
	Octidi
	Nonidi
	Decadi
)

var frenchRevWeekdayNames = [10]string{
	"Primidi", "Duodi", "Tridi", "Quartidi", "Quintidi",
	"Sextidi", "Septidi", "Octidi", "Nonidi", "Décadi",
}

func (w FrenchRevWeekday) String() string {
	if w < Primidi || w > Decadi {
		return fmt.Sprintf("FrenchRevWeekday(%d)", int(w))
	}
	return frenchRevWeekdayNames[w-1]
}

// frenchRevLeap implements the arithmetic leap rule: years divisible
// by 4, excluding non-400 centuries, excluding millennia divisible by
// 4000. The adjusted variant applies the rule to the following year,
// which matches the historically observed leap years III, VII and XI.
func frenchRevLeap(year int, adjusted bool) bool {
	y := int64(year)
	if adjusted {
		y++
	}
	if calmath.Mod(y, 4) != 0 {
		return false
	}
	switch calmath.Mod(y, 400) {
	case 100, 200, 300:
		return false
	}
	return calmath.Mod(y, 4000) != 0
}

func frenchRevDaysInMonth(year int, month FrenchRevMonth, adjusted bool) int {
	if month == Sansculottides {
		if frenchRevLeap(year, adjusted) {
			return 6
		}
		return 5
	}
	return 30
}

func frenchRevValidate(year int, month FrenchRevMonth, day int, adjusted bool) error {
	if !yearInRange(year) {
		return fmt.Errorf("french revolutionary year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Vendemiaire || month > Sansculottides {
		return fmt.Errorf("french revolutionary month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > frenchRevDaysInMonth(year, month, adjusted) {
		return fmt.Errorf("french revolutionary %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return nil
}

func frenchRevToFixed(year int, month FrenchRevMonth, day int, adjusted bool) daycount.Fixed {
	y := int64(year) - 1
	if adjusted {
		y++
	}
	n := frenchRevEpoch - 1 + 365*(int64(year)-1) +
		calmath.FloorDiv(y, 4) - calmath.FloorDiv(y, 100) +
		calmath.FloorDiv(y, 400) - calmath.FloorDiv(y, 4000)
	return daycount.Fixed(n + 30*(int64(month)-1) + int64(day))
}

func frenchRevFromFixed(f daycount.Fixed, adjusted bool) (int, FrenchRevMonth, int) {
	year := int(calmath.FloorDiv(4000*(int64(f)-frenchRevEpoch+2), 1_460_969) + 1)
	// The estimate can be off by one in either direction.
	if f < frenchRevToFixed(year, Vendemiaire, 1, adjusted) {
		year--
	} else if f >= frenchRevToFixed(year+1, Vendemiaire, 1, adjusted) {
		year++
	}
	month := FrenchRevMonth(1 + calmath.FloorDiv(int64(f)-int64(frenchRevToFixed(year, Vendemiaire, 1, adjusted)), 30))
	day := int(1 + int64(f) - int64(frenchRevToFixed(year, month, 1, adjusted)))
	return year, month, day
}

// FrenchRevArith is a date in the arithmetic French Revolutionary
// calendar with the leap rule applied to the year itself (the Romme
// proposal).
type FrenchRevArith struct {
	year  int
	month FrenchRevMonth
	day   int
}

// NewFrenchRevArith returns the validated Revolutionary date.
func NewFrenchRevArith(year int, month FrenchRevMonth, day int) (FrenchRevArith, error) {
	if err := frenchRevValidate(year, month, day, false); err != nil {
		return FrenchRevArith{}, err
	}
	return FrenchRevArith{year, month, day}, nil
}

// Year returns the Republican era year.
func (d FrenchRevArith) Year() int { return d.year }

// Month returns the month.
func (d FrenchRevArith) Month() FrenchRevMonth { return d.month }

// Day returns the day of the month.
func (d FrenchRevArith) Day() int { return d.day }

// DecadeDay returns the day's position in the ten day décade.
func (d FrenchRevArith) DecadeDay() FrenchRevWeekday {
	return FrenchRevWeekday(calmath.AdjRem(int64(d.day), 10))
}

// IsFrenchRevLeapYear reports whether the given Republican year has a
// sixth sansculottide under the unadjusted rule.
func IsFrenchRevLeapYear(year int) bool { return frenchRevLeap(year, false) }

// DaysInMonth returns the length of the date's month.
func (d FrenchRevArith) DaysInMonth() int {
	return frenchRevDaysInMonth(d.year, d.month, false)
}

// Fixed implements daycount.ToFixed.
func (d FrenchRevArith) Fixed() daycount.Fixed {
	return frenchRevToFixed(d.year, d.month, d.day, false)
}

// FromFixed implements daycount.FromFixed.
func (FrenchRevArith) FromFixed(f daycount.Fixed) FrenchRevArith {
	y, m, dd := frenchRevFromFixed(f, false)
	return FrenchRevArith{y, m, dd}
}

func (d FrenchRevArith) String() string {
	return fmt.Sprintf("%d %v an %d", d.day, d.month, d.year)
}

// FrenchRevArithAdjusted is the arithmetic Revolutionary calendar with
// the leap rule applied to the following year, which reproduces the
// leap years actually observed while the calendar was in use.
type FrenchRevArithAdjusted struct {
	year  int
	month FrenchRevMonth
	day   int
}

// NewFrenchRevArithAdjusted returns the validated Revolutionary date.
func NewFrenchRevArithAdjusted(year int, month FrenchRevMonth, day int) (FrenchRevArithAdjusted, error) {
	if err := frenchRevValidate(year, month, day, true); err != nil {
		return FrenchRevArithAdjusted{}, err
	}
	return FrenchRevArithAdjusted{year, month, day}, nil
}

// Year returns the Republican era year.
func (d FrenchRevArithAdjusted) Year() int { return d.year }

// Month returns the month.
func (d FrenchRevArithAdjusted) Month() FrenchRevMonth { return d.month }

// Day returns the day of the month.
func (d FrenchRevArithAdjusted) Day() int { return d.day }

// DecadeDay returns the day's position in the ten day décade.
func (d FrenchRevArithAdjusted) DecadeDay() FrenchRevWeekday {
	return FrenchRevWeekday(calmath.AdjRem(int64(d.day), 10))
}

// IsFrenchRevAdjustedLeapYear reports whether the given Republican
// year has a sixth sansculottide under the adjusted rule.
func IsFrenchRevAdjustedLeapYear(year int) bool { return frenchRevLeap(year, true) }

// DaysInMonth returns the length of the date's month.
func (d FrenchRevArithAdjusted) DaysInMonth() int {
	return frenchRevDaysInMonth(d.year, d.month, true)
}

// Fixed implements daycount.ToFixed.
func (d FrenchRevArithAdjusted) Fixed() daycount.Fixed {
	return frenchRevToFixed(d.year, d.month, d.day, true)
}

// FromFixed implements daycount.FromFixed.
func (FrenchRevArithAdjusted) FromFixed(f daycount.Fixed) FrenchRevArithAdjusted {
	y, m, dd := frenchRevFromFixed(f, true)
	return FrenchRevArithAdjusted{y, m, dd}
}

func (d FrenchRevArithAdjusted) String() string {
	return fmt.Sprintf("%d %v an %d (adjusted)", d.day, d.month, d.year)
}
