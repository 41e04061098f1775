// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/daycount"
)

// The fixed day of Armenian 0001-01-01, Julian 552-07-11.
const armenianEpoch = 201_443

// ArmenianMonth numbers the twelve 30 day Armenian months plus the
// epagomenal aweleach days counted as a short thirteenth month.
type ArmenianMonth int

const (
	Nawasardi ArmenianMonth = iota + 1
	Hori
	Sahmi
	Tre
	Kaloch
	Arach
	Mehekani
	Areg
	Ahekani
	Mareri
	Margach
	Hrotich
	Aweleach
)

var armenianMonthNames = [13]string{
	"Nawasardi", "Hori", "Sahmi", "Tre", "Kaloch", "Arach", "Mehekani",
	"Areg", "Ahekani", "Mareri", "Margach", "Hrotich", "Aweleach",
}

func (m ArmenianMonth) String() string {
	if m < Nawasardi || m > Aweleach {
		return fmt.Sprintf("ArmenianMonth(%d)", int(m))
	}
	return armenianMonthNames[m-1]
}

// Armenian is a date in the old Armenian calendar, which shares the
// Egyptian 365 day year structure with its own epoch and month names.
type Armenian struct {
	year  int
	month ArmenianMonth
	day   int
}

// NewArmenian returns the validated Armenian date.
func NewArmenian(year int, month ArmenianMonth, day int) (Armenian, error) {
	if !yearInRange(year) {
		return Armenian{}, fmt.Errorf("armenian year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Nawasardi || month > Aweleach {
		return Armenian{}, fmt.Errorf("armenian month %d: %w", month, ErrMonthOutOfRange)
	}
	max := 30
	if month == Aweleach {
		max = 5
	}
	if day < 1 || day > max {
		return Armenian{}, fmt.Errorf("armenian %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Armenian{year, month, day}, nil
}

// Year returns the Armenian era year.
func (d Armenian) Year() int { return d.year }

// Month returns the month.
func (d Armenian) Month() ArmenianMonth { return d.month }

// Day returns the day of the month.
func (d Armenian) Day() int { return d.day }

// DaysInMonth returns the length of the date's month.
func (d Armenian) DaysInMonth() int {
	if d.month == Aweleach {
		return 5
	}
	return 30
}

// Fixed implements daycount.ToFixed.
func (d Armenian) Fixed() daycount.Fixed {
	return egyptianToFixed(d.year, EgyptianMonth(d.month), d.day) + armenianEpoch - egyptianEpoch
}

// FromFixed implements daycount.FromFixed.
func (Armenian) FromFixed(f daycount.Fixed) Armenian {
	e := egyptianFromFixed(f + egyptianEpoch - armenianEpoch)
	return Armenian{e.year, ArmenianMonth(e.month), e.day}
}

func (d Armenian) String() string {
	return fmt.Sprintf("%d %v %d AE", d.day, d.month, d.year)
}
