// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// The fixed day of Egyptian 0001-01-01, the Nabonassar era
// (JDN 1448638).
const egyptianEpoch = -272_787

// EgyptianMonth numbers the twelve 30 day Egyptian months plus the
// five epagomenal days counted as a short thirteenth month.
type EgyptianMonth int

const (
	Thoth EgyptianMonth = iota + 1
	Phaophi
	Athyr
	Choiak
	Tybi
	Mechir
	Phamenoth
	Pharmuthi
	Pachon
	Payni
	Epiphi
	Mesori
	EgyptianEpagomenae
)

var egyptianMonthNames = [13]string{
	"Thoth", "Phaophi", "Athyr", "Choiak", "Tybi", "Mechir", "Phamenoth",
	"Pharmuthi", "Pachon", "Payni", "Epiphi", "Mesori", "Epagomenae",
}

func (m EgyptianMonth) String() string {
	if m < Thoth || m > EgyptianEpagomenae {
		return fmt.Sprintf("EgyptianMonth(%d)", int(m))
	}
	return egyptianMonthNames[m-1]
}

// Egyptian is a date in the ancient Egyptian civil calendar: a fixed
// 365 day year of twelve 30 day months and five epagomenal days, with
// no leap years whatsoever.
type Egyptian struct {
	year  int
	month EgyptianMonth
	day   int
}

// NewEgyptian returns the validated Egyptian date.
func NewEgyptian(year int, month EgyptianMonth, day int) (Egyptian, error) {
	if !yearInRange(year) {
		return Egyptian{}, fmt.Errorf("egyptian year %d: %w", year, ErrYearOutOfRange)
	}
	if month < Thoth || month > EgyptianEpagomenae {
		return Egyptian{}, fmt.Errorf("egyptian month %d: %w", month, ErrMonthOutOfRange)
	}
	max := 30
	if month == EgyptianEpagomenae {
		max = 5
	}
	if day < 1 || day > max {
		return Egyptian{}, fmt.Errorf("egyptian %d %v %d: %w", year, month, day, ErrDayOutOfRange)
	}
	return Egyptian{year, month, day}, nil
}

// Year returns the Nabonassar era year.
func (d Egyptian) Year() int { return d.year }

// Month returns the month.
func (d Egyptian) Month() EgyptianMonth { return d.month }

// Day returns the day of the month.
func (d Egyptian) Day() int { return d.day }

// DaysInMonth returns the length of the date's month.
func (d Egyptian) DaysInMonth() int {
	if d.month == EgyptianEpagomenae {
		return 5
	}
	return 30
}

func egyptianToFixed(year int, month EgyptianMonth, day int) daycount.Fixed {
	return daycount.Fixed(egyptianEpoch + 365*(int64(year)-1) +
		30*(int64(month)-1) + int64(day) - 1)
}

func egyptianFromFixed(f daycount.Fixed) Egyptian {
	days := int64(f) - egyptianEpoch
	year := calmath.FloorDiv(days, 365) + 1
	month := EgyptianMonth(calmath.FloorDiv(calmath.Mod(days, 365), 30) + 1)
	day := int(days - 365*(year-1) - 30*(int64(month)-1) + 1)
	return Egyptian{int(year), month, day}
}

// Fixed implements daycount.ToFixed.
func (d Egyptian) Fixed() daycount.Fixed {
	return egyptianToFixed(d.year, d.month, d.day)
}

// FromFixed implements daycount.FromFixed.
func (Egyptian) FromFixed(f daycount.Fixed) Egyptian {
	return egyptianFromFixed(f)
}

func (d Egyptian) String() string {
	return fmt.Sprintf("%d %v %d (Nabonassar)", d.day, d.month, d.year)
}
