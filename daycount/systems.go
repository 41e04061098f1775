// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
)

// Offsets between Fixed and the other epoch day numbering systems.
// Modified Julian Day 0 is Gregorian 1858-11-17 and Unix day 0 is
// Gregorian 1970-01-01.
const (
	julianDayOffset   = 1_721_425
	modifiedJulianDay = 678_576
	unixEpochDay      = 719_163
	secondsPerDay     = 86_400
)

// RataDie is the Rata Die day number, identical to Fixed but a
// distinct type so that it participates in Convert like any other
// system.
type RataDie int64

// NewRataDie returns a bounds-checked RataDie.
func NewRataDie(n int64) (RataDie, error) {
	f, err := New(n)
	return RataDie(f), err
}

// Fixed implements ToFixed.
func (r RataDie) Fixed() Fixed { return Fixed(r) }

// FromFixed implements FromFixed.
func (RataDie) FromFixed(f Fixed) RataDie { return RataDie(f) }

func (r RataDie) String() string { return fmt.Sprintf("RD %d", int64(r)) }

// JulianDayNumber counts days in the astronomical Julian day
// numbering: JDN 1448638 is RD -272787 (the Nabonassar epoch).
type JulianDayNumber int64

// NewJulianDayNumber returns a bounds-checked JulianDayNumber.
func NewJulianDayNumber(n int64) (JulianDayNumber, error) {
	f, err := New(n - julianDayOffset)
	return JulianDayNumber(int64(f) + julianDayOffset), err
}

// Fixed implements ToFixed.
func (j JulianDayNumber) Fixed() Fixed { return Fixed(int64(j) - julianDayOffset) }

// FromFixed implements FromFixed.
func (JulianDayNumber) FromFixed(f Fixed) JulianDayNumber {
	return JulianDayNumber(int64(f) + julianDayOffset)
}

func (j JulianDayNumber) String() string { return fmt.Sprintf("JDN %d", int64(j)) }

// ModifiedJulianDay counts days from MJD 0, Gregorian 1858-11-17.
type ModifiedJulianDay int64

// NewModifiedJulianDay returns a bounds-checked ModifiedJulianDay.
func NewModifiedJulianDay(n int64) (ModifiedJulianDay, error) {
	f, err := New(n + modifiedJulianDay)
	return ModifiedJulianDay(int64(f) - modifiedJulianDay), err
}

// Fixed implements ToFixed.
func (m ModifiedJulianDay) Fixed() Fixed { return Fixed(int64(m) + modifiedJulianDay) }

// FromFixed implements FromFixed.
func (ModifiedJulianDay) FromFixed(f Fixed) ModifiedJulianDay {
	return ModifiedJulianDay(int64(f) - modifiedJulianDay)
}

func (m ModifiedJulianDay) String() string { return fmt.Sprintf("MJD %d", int64(m)) }

// UnixDay counts whole days from the Unix epoch, Gregorian 1970-01-01.
type UnixDay int64

// NewUnixDay returns a bounds-checked UnixDay.
func NewUnixDay(n int64) (UnixDay, error) {
	f, err := New(n + unixEpochDay)
	return UnixDay(int64(f) - unixEpochDay), err
}

// Fixed implements ToFixed.
func (u UnixDay) Fixed() Fixed { return Fixed(int64(u) + unixEpochDay) }

// FromFixed implements FromFixed.
func (UnixDay) FromFixed(f Fixed) UnixDay {
	return UnixDay(int64(f) - unixEpochDay)
}

func (u UnixDay) String() string { return fmt.Sprintf("unix day %d", int64(u)) }

// UnixSeconds counts seconds from the Unix epoch. It anchors to the
// day containing the instant; seconds within the day are discarded by
// Fixed and reconstructed as midnight by FromFixed.
type UnixSeconds int64

// NewUnixSeconds returns a bounds-checked UnixSeconds.
func NewUnixSeconds(n int64) (UnixSeconds, error) {
	if _, err := New(calmath.FloorDiv(n, secondsPerDay) + unixEpochDay); err != nil {
		return 0, err
	}
	return UnixSeconds(n), nil
}

// Fixed implements ToFixed.
func (u UnixSeconds) Fixed() Fixed {
	return Fixed(calmath.FloorDiv(int64(u), secondsPerDay) + unixEpochDay)
}

// FromFixed implements FromFixed.
func (UnixSeconds) FromFixed(f Fixed) UnixSeconds {
	return UnixSeconds((int64(f) - unixEpochDay) * secondsPerDay)
}

func (u UnixSeconds) String() string { return fmt.Sprintf("unix %d", int64(u)) }
