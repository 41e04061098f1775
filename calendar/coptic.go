// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// The fixed day of Coptic 0001-01-01, Julian 284-08-29 (the era of
// Diocletian).
const copticEpoch = 103_605

// CopticMonth numbers the twelve 30 day Coptic months plus the
// epagomenal days counted as a short thirteenth month.
type CopticMonth int

const (
	Thoout CopticMonth = iota + 1
	Paope
	Athor
	Koiak
	Tobe
	Meshir
	Paremotep
	Parmoute
	Pashons
	Paone
	Epep
	Mesore
	Epagomene
)

var copticMonthNames = [13]string{
	"Thoout", "Paope", "Athor", "Koiak", "Tobe", "Meshir", "Paremotep",
	"Parmoute", "Pashons", "Paone", "Epep", "Mesore", "Epagomene",
}

func (m CopticMonth) String() string {
	if m < Thoout || m > Epagomene {
		return fmt.Sprintf("CopticMonth(%d)", int(m))
	}
	return copticMonthNames[m-1]
}

// Coptic is a date in the Coptic (Alexandrian) calendar: twelve 30 day
// months and five epagomenal days, six in the leap years preceding
// Julian leap years.
type Coptic struct {
	year  int
	month CopticMonth
	day   int
}

// NewCoptic returns the validated Coptic date.
func NewCoptic(year int, month CopticMonth, day int) (Coptic, error) {
	if !yearInRange(year) {
		return Coptic{}, fmt.Errorf("coptic year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Thoout || month > Epagomene {
		return Coptic{}, fmt.Errorf("coptic month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > copticDaysInMonth(year, month) {
		return Coptic{}, fmt.Errorf("coptic %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Coptic{year, month, day}, nil
}

// Year returns the Diocletian era year.
func (d Coptic) Year() int { return d.year }

// Month returns the month.
func (d Coptic) Month() CopticMonth { return d.month }

// Day returns the day of the month.
func (d Coptic) Day() int { return d.day }

// IsCopticLeapYear reports whether the given year has six epagomenal
// days.
func IsCopticLeapYear(year int) bool {
	return calmath.Mod(int64(year), 4) == 3
}

func copticDaysInMonth(year int, month CopticMonth) int {
	if month == Epagomene {
		if IsCopticLeapYear(year) {
			return 6
		}
		return 5
	}
	return 30
}

// DaysInMonth returns the length of the date's month.
func (d Coptic) DaysInMonth() int { return copticDaysInMonth(d.year, d.month) }

func copticToFixed(year int, month CopticMonth, day int) daycount.Fixed {
	y := int64(year)
	return daycount.Fixed(copticEpoch - 1 + 365*(y-1) + calmath.FloorDiv(y, 4) +
		30*(int64(month)-1) + int64(day))
}

func copticFromFixed(f daycount.Fixed) Coptic {
	year := int(calmath.FloorDiv(4*(int64(f)-copticEpoch)+1463, 1461))
	month := CopticMonth(calmath.FloorDiv(int64(f)-int64(copticToFixed(year, Thoout, 1)), 30) + 1)
	day := int(int64(f) + 1 - int64(copticToFixed(year, month, 1)))
	return Coptic{year, month, day}
}

// Fixed implements daycount.ToFixed.
func (d Coptic) Fixed() daycount.Fixed {
	return copticToFixed(d.year, d.month, d.day)
}

// FromFixed implements daycount.FromFixed.
func (Coptic) FromFixed(f daycount.Fixed) Coptic {
	return copticFromFixed(f)
}

func (d Coptic) String() string {
	return fmt.Sprintf("%d %v %d AM", d.day, d.month, d.year)
}
