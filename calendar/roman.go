// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/daycount"
)

// RomanEvent is one of the three named days a Roman date counts down
// towards.
type RomanEvent int

const (
	Kalends RomanEvent = iota + 1
	Nones
	Ides
)

var romanEventNames = [3]string{"Kalends", "Nones", "Ides"}

func (e RomanEvent) String() string {
	if e < Kalends || e > Ides {
		return fmt.Sprintf("RomanEvent(%d)", int(e))
	}
	return romanEventNames[e-1]
}

// idesOfMonth returns the day of the Ides: the 15th in March, May,
// July and October, the 13th elsewhere.
func idesOfMonth(month Month) int {
	switch month {
	case March, May, July, October:
		return 15
	}
	return 13
}

// nonesOfMonth returns the day of the Nones, eight days before the
// Ides.
func nonesOfMonth(month Month) int {
	return idesOfMonth(month) - 8
}

// Roman is a Julian calendar day in the late republican nomenclature:
// a count of days (inclusive) before the Kalends, Nones or Ides of a
// month. Count 1 is the event day itself. In leap years February 25
// is the doubled sixth day before the Kalends of March, marked by
// Leap.
type Roman struct {
	year  int
	month Month
	event RomanEvent
	count int
	leap  bool
}

// NewRoman returns the validated Roman date. The year is the Julian
// year of the referenced event; days after the Ides belong to the
// Kalends of the following month and, for December, the following
// year.
func NewRoman(year int, month Month, event RomanEvent, count int, leap bool) (Roman, error) {
	if year == 0 || !yearInRange(year) {
		return Roman{}, fmt.Errorf("roman year %d: %w", year, ErrYearOutOfRange)
	}
	if month < January || month > December {
		return Roman{}, fmt.Errorf("roman month %d: %w", month, ErrMonthOutOfRange)
	}
	if event < Kalends || event > Ides {
		return Roman{}, fmt.Errorf("roman event %d: %w", event, ErrDayOutOfRange)
	}
	var max int
	switch event {
	case Kalends:
		// Counting back into the previous month. The doubled day in a
		// leap February repeats a count rather than extending the range.
		prev := month - 1
		prevYear := year
		if month == January {
			prev = December
			prevYear = year - 1
			if prevYear == 0 {
				prevYear = -1
			}
		}
		length := julianDaysInMonth(prevYear, prev)
		if prev == February {
			length = 28
		}
		max = length - idesOfMonth(prev) + 1
	case Nones:
		max = nonesOfMonth(month)
	case Ides:
		max = 8
	}
	if count < 1 || count > max {
		return Roman{}, fmt.Errorf("roman %d days before the %v of %v: %w", count, event, month, ErrDayOutOfRange)
	}
	if leap && !(month == March && event == Kalends && count == 6 && IsJulianLeapYear(year)) {
		return Roman{}, fmt.Errorf("roman bissextile day: %w", ErrUnrepresentable)
	}
	return Roman{year, month, event, count, leap}, nil
}

// Year returns the Julian year.
func (d Roman) Year() int { return d.year }

// YearAUC returns the year ab urbe condita, counted from the founding
// of Rome in 753 BCE.
func (d Roman) YearAUC() int {
	if d.year >= -753 && d.year <= -1 {
		return d.year + 754
	}
	return d.year + 753
}

// Month returns the month whose event the date counts towards.
func (d Roman) Month() Month { return d.month }

// Event returns the referenced event.
func (d Roman) Event() RomanEvent { return d.event }

// Count returns the inclusive count of days before the event.
func (d Roman) Count() int { return d.count }

// Leap reports whether this is the bissextile (doubled) day.
func (d Roman) Leap() bool { return d.leap }

// Fixed implements daycount.ToFixed.
func (d Roman) Fixed() daycount.Fixed {
	var event daycount.Fixed
	switch d.event {
	case Kalends:
		event = julianToFixed(d.year, d.month, 1)
	case Nones:
		event = julianToFixed(d.year, d.month, nonesOfMonth(d.month))
	case Ides:
		event = julianToFixed(d.year, d.month, idesOfMonth(d.month))
	}
	f := event - daycount.Fixed(d.count)
	// In leap years the doubled day shifts the counts from 6 to 16
	// before the Kalends of March one day earlier.
	if !(IsJulianLeapYear(d.year) && d.month == March && d.event == Kalends &&
		d.count >= 6 && d.count <= 16) {
		f++
	}
	if d.leap {
		f++
	}
	return f
}

// FromFixed implements daycount.FromFixed.
func (Roman) FromFixed(f daycount.Fixed) Roman {
	j := julianFromFixed(f)
	switch {
	case j.day == 1:
		return Roman{j.year, j.month, Kalends, 1, false}
	case j.day <= nonesOfMonth(j.month):
		return Roman{j.year, j.month, Nones, nonesOfMonth(j.month) - j.day + 1, false}
	case j.day <= idesOfMonth(j.month):
		return Roman{j.year, j.month, Ides, idesOfMonth(j.month) - j.day + 1, false}
	case j.month != February || !IsJulianLeapYear(j.year):
		// Counting down to the Kalends of the next month.
		month := j.month + 1
		year := j.year
		if j.month == December {
			month = January
			year = j.year + 1
			if j.year == -1 {
				year = 1
			}
		}
		kalends := Roman{year, month, Kalends, 1, false}
		count := int(kalends.Fixed()-f) + 1
		return Roman{year, month, Kalends, count, false}
	case j.day < 25:
		return Roman{j.year, March, Kalends, 30 - j.day, false}
	default:
		return Roman{j.year, March, Kalends, 31 - j.day, j.day == 25}
	}
}

func (d Roman) String() string {
	prefix := ""
	switch {
	case d.leap:
		prefix = "bis "
	case d.count == 1:
		return fmt.Sprintf("%v of %v, %d AUC", d.event, d.month, d.YearAUC())
	case d.count == 2:
		prefix = "pridie "
	}
	if prefix == "bis " || d.count > 2 {
		return fmt.Sprintf("%vad %d %v of %v, %d AUC", prefix, d.count, d.event, d.month, d.YearAUC())
	}
	return fmt.Sprintf("%v%v of %v, %d AUC", prefix, d.event, d.month, d.YearAUC())
}
