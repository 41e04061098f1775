// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendrical/calendar"
	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/errors"
)

func TestSymmetryLeapYears(t *testing.T) {
	// 52 leap years per 293 year cycle.
	leaps := 0
	for y := 1; y <= 293; y++ {
		if calendar.IsSymmetryLeapYear(y) {
			leaps++
		}
	}
	if got, want := leaps, 52; got != want {
		t.Errorf("got %v leap years per cycle, want %v", got, want)
	}
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2009, true},
		{2010, false},
		{2015, true},
		{1, false},
	} {
		if got := calendar.IsSymmetryLeapYear(tc.year); got != tc.leap {
			t.Errorf("year %v: got %v, want %v", tc.year, got, tc.leap)
		}
	}
}

func TestSymmetryKnownDates(t *testing.T) {
	// 2009-04-05 Gregorian falls on the same calendar date in both
	// quarter shapes.
	f := daycount.Fixed(733500)
	s454 := daycount.Convert[calendar.Symmetry454](f)
	if s454.Year() != 2009 || s454.Month() != calendar.April || s454.Day() != 5 {
		t.Errorf("got %v, want 2009-04-05", s454)
	}
	s010 := daycount.Convert[calendar.Symmetry010](f)
	if s010.Year() != 2009 || s010.Month() != calendar.April || s010.Day() != 5 {
		t.Errorf("got %v, want 2009-04-05", s010)
	}
	// The first day of year 2010 in both shapes.
	ny454, err := calendar.NewSymmetry454(2010, calendar.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := int64(ny454.Fixed()), int64(733776); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	ny010, err := calendar.NewSymmetry010(2010, calendar.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := int64(ny010.Fixed()), int64(733776); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSymmetryMonthLengths(t *testing.T) {
	for _, tc := range []struct {
		year    int
		month   calendar.Month
		want454 int
		want010 int
	}{
		{2010, calendar.January, 28, 30},
		{2010, calendar.February, 35, 31},
		{2010, calendar.March, 28, 30},
		{2010, calendar.November, 35, 31},
		{2010, calendar.December, 28, 30},
		{2009, calendar.December, 35, 37}, // leap week
	} {
		d454, err := calendar.NewSymmetry454(tc.year, tc.month, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := d454.DaysInMonth(); got != tc.want454 {
			t.Errorf("454 %v %v: got %v, want %v", tc.year, tc.month, got, tc.want454)
		}
		d010, err := calendar.NewSymmetry010(tc.year, tc.month, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := d010.DaysInMonth(); got != tc.want010 {
			t.Errorf("010 %v %v: got %v, want %v", tc.year, tc.month, got, tc.want010)
		}
	}
}

func TestSymmetryValidation(t *testing.T) {
	// The leap week only exists in leap years.
	if _, err := calendar.NewSymmetry454(2009, calendar.December, 35); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := calendar.NewSymmetry454(2010, calendar.December, 29); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewSymmetry010(2010, calendar.January, 31); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
}

func TestSymmetryWeeksStartMonday(t *testing.T) {
	// Every Symmetry454 month begins on a Monday.
	for _, m := range []calendar.Month{calendar.January, calendar.February, calendar.December} {
		d, err := calendar.NewSymmetry454(2010, m, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := int64(d.Fixed()) % 7; got != 1 {
			t.Errorf("%v: month starts on weekday %v, want Monday", d, got)
		}
	}
}
