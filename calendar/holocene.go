// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/daycount"
)

// Holocene years lead Gregorian years by this much; Holocene 12026 is
// Gregorian 2026.
const holoceneOffset = 10_000

// Holocene is a date in the Holocene (Human Era) calendar, the
// Gregorian calendar with 10000 added to the year so that recorded
// human history has positive years.
type Holocene struct {
	year  int
	month Month
	day   int
}

// NewHolocene returns the validated Holocene date.
func NewHolocene(year int, month Month, day int) (Holocene, error) {
	g, err := NewGregorian(year-holoceneOffset, month, day)
	if err != nil {
		return Holocene{}, fmt.Errorf("holocene: %w", err)
	}
	return Holocene{year, g.Month(), g.Day()}, nil
}

// Year returns the Human Era year.
func (d Holocene) Year() int { return d.year }

// Month returns the month.
func (d Holocene) Month() Month { return d.month }

// Day returns the day of the month.
func (d Holocene) Day() int { return d.day }

// IsHoloceneLeapYear reports whether the given Human Era year is a
// leap year.
func IsHoloceneLeapYear(year int) bool {
	return IsGregorianLeapYear(year - holoceneOffset)
}

// DaysInMonth returns the length of the date's month.
func (d Holocene) DaysInMonth() int {
	return gregorianDaysInMonth(d.year-holoceneOffset, d.month)
}

// Fixed implements daycount.ToFixed.
func (d Holocene) Fixed() daycount.Fixed {
	return gregorianToFixed(d.year-holoceneOffset, d.month, d.day)
}

// FromFixed implements daycount.FromFixed.
func (Holocene) FromFixed(f daycount.Fixed) Holocene {
	g := gregorianFromFixed(f)
	return Holocene{g.year + holoceneOffset, g.month, g.day}
}

func (d Holocene) String() string {
	return fmt.Sprintf("%05d-%02d-%02d HE", d.year, d.month, d.day)
}
