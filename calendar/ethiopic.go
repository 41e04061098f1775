// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/daycount"
)

// The fixed day of Ethiopic 0001-01-01, Julian 8-08-29 (the era of
// the Incarnation).
const ethiopicEpoch = 2_796

// EthiopicMonth numbers the twelve 30 day Ethiopic months plus the
// epagomenal days counted as a short thirteenth month.
type EthiopicMonth int

const (
	Maskaram EthiopicMonth = iota + 1
	Teqemt
	Hedar
	Takhsas
	Ter
	Yakatit
	Magabit
	Miyazya
	Genbot
	Sane
	Hamle
	Nahase
	Paguemen
)

var ethiopicMonthNames = [13]string{
	"Maskaram", "Teqemt", "Hedar", "Takhsas", "Ter", "Yakatit", "Magabit",
	"Miyazya", "Genbot", "Sane", "Hamle", "Nahase", "Paguemen",
}

func (m EthiopicMonth) String() string {
	if m < Maskaram || m > Paguemen {
		return fmt.Sprintf("EthiopicMonth(%d)", int(m))
	}
	return ethiopicMonthNames[m-1]
}

// Ethiopic is a date in the Ethiopic calendar, which shares the Coptic
// month structure and leap rule but counts years from the era of the
// Incarnation.
type Ethiopic struct {
	year  int
	month EthiopicMonth
	day   int
}

// NewEthiopic returns the validated Ethiopic date.
func NewEthiopic(year int, month EthiopicMonth, day int) (Ethiopic, error) {
	if !yearInRange(year) {
		return Ethiopic{}, fmt.Errorf("ethiopic year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Maskaram || month > Paguemen {
		return Ethiopic{}, fmt.Errorf("ethiopic month %d: %w", month, ErrMonthOutOfRange)
	}
	if day < 1 || day > copticDaysInMonth(year, CopticMonth(month)) {
		return Ethiopic{}, fmt.Errorf("ethiopic %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Ethiopic{year, month, day}, nil
}

// Year returns the Incarnation era year.
func (d Ethiopic) Year() int { return d.year }

// Month returns the month.
func (d Ethiopic) Month() EthiopicMonth { return d.month }

// Day returns the day of the month.
func (d Ethiopic) Day() int { return d.day }

// IsEthiopicLeapYear reports whether the given year has six epagomenal
// days.
func IsEthiopicLeapYear(year int) bool {
	return IsCopticLeapYear(year)
}

// DaysInMonth returns the length of the date's month.
func (d Ethiopic) DaysInMonth() int {
	return copticDaysInMonth(d.year, CopticMonth(d.month))
}

// Fixed implements daycount.ToFixed.
func (d Ethiopic) Fixed() daycount.Fixed {
	return copticToFixed(d.year, CopticMonth(d.month), d.day) + ethiopicEpoch - copticEpoch
}

// FromFixed implements daycount.FromFixed.
func (Ethiopic) FromFixed(f daycount.Fixed) Ethiopic {
	c := copticFromFixed(f + copticEpoch - ethiopicEpoch)
	return Ethiopic{c.year, EthiopicMonth(c.month), c.day}
}

func (d Ethiopic) String() string {
	return fmt.Sprintf("%d %v %d EE", d.day, d.month, d.year)
}
