// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
)

// The first Olympiad began in Julian year 776 BCE.
const olympiadStart = -776

// Olympiad identifies a Julian year by its position in the four year
// Olympiad cycle. It is a year mapping only, not a day resolution
// calendar.
type Olympiad struct {
	cycle int
	year  int
}

// NewOlympiad returns the validated Olympiad year.
func NewOlympiad(cycle, year int) (Olympiad, error) {
	if cycle < minYear/4 || cycle > maxYear/4 {
		return Olympiad{}, fmt.Errorf("olympiad cycle %d: %w", cycle, ErrYearOutOfRange)
	}
	if year < 1 || year > 4 {
		return Olympiad{}, fmt.Errorf("olympiad year %d: %w", year, ErrYearOutOfRange)
	}
	return Olympiad{cycle, year}, nil
}

// Cycle returns the 1-based Olympiad number.
func (o Olympiad) Cycle() int { return o.cycle }

// Year returns the year within the Olympiad, 1 through 4.
func (o Olympiad) Year() int { return o.year }

// JulianYear returns the Julian year (no year zero) the Olympiad year
// denotes.
func (o Olympiad) JulianYear() int {
	years := olympiadStart + 4*(o.cycle-1) + o.year - 1
	if years < 0 {
		return years
	}
	return years + 1
}

// OlympiadOfJulianYear returns the Olympiad containing the given
// Julian year.
func OlympiadOfJulianYear(julianYear int) (Olympiad, error) {
	if julianYear == 0 || !yearInRange(julianYear) {
		return Olympiad{}, fmt.Errorf("julian year %d: %w", julianYear, ErrYearOutOfRange)
	}
	years := int64(julianYear - olympiadStart)
	if julianYear >= 0 {
		years--
	}
	return Olympiad{
		cycle: int(calmath.FloorDiv(years, 4)) + 1,
		year:  int(calmath.Mod(years, 4)) + 1,
	}, nil
}

func (o Olympiad) String() string {
	return fmt.Sprintf("Olympiad %d, year %d", o.cycle, o.year)
}
