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

func TestFrenchRevCoup(t *testing.T) {
	// The coup of 18 Brumaire an VIII was Gregorian 1799-11-09. The
	// adjusted rule reproduces it; the unadjusted rule lands a day
	// early because year VII was not one of its leap years.
	adj, err := calendar.NewFrenchRevArithAdjusted(8, calendar.Brumaire, 18)
	if err != nil {
		t.Fatal(err)
	}
	g := daycount.Convert[calendar.Gregorian](adj)
	if g.Year() != 1799 || g.Month() != calendar.November || g.Day() != 9 {
		t.Errorf("got %v, want 1799-11-09", g)
	}
	unadj, err := calendar.NewFrenchRevArith(8, calendar.Brumaire, 18)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := int64(unadj.Fixed()), int64(adj.Fixed())-1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFrenchRevLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year     int
		unadj    bool
		adjusted bool
	}{
		{3, false, true}, // an III, historically leap
		{4, true, false},
		{7, false, true}, // an VII
		{8, true, false},
		{11, false, true}, // an XI
		{12, true, false},
		{20, true, false},
		{100, false, false}, // century exclusion
		{400, true, false},
		{399, false, true},
		{4000, false, false}, // four millennium exclusion
	} {
		if got := calendar.IsFrenchRevLeapYear(tc.year); got != tc.unadj {
			t.Errorf("an %v: got %v, want %v", tc.year, got, tc.unadj)
		}
		if got := calendar.IsFrenchRevAdjustedLeapYear(tc.year); got != tc.adjusted {
			t.Errorf("an %v adjusted: got %v, want %v", tc.year, got, tc.adjusted)
		}
	}
}

func TestFrenchRevSansculottides(t *testing.T) {
	// The sixth complementary day only exists in leap years.
	if _, err := calendar.NewFrenchRevArithAdjusted(3, calendar.Sansculottides, 6); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := calendar.NewFrenchRevArithAdjusted(4, calendar.Sansculottides, 6); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewFrenchRevArith(4, calendar.Sansculottides, 6); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := calendar.NewFrenchRevArith(3, calendar.Vendemiaire, 31); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
}

func TestFrenchRevDecade(t *testing.T) {
	for _, tc := range []struct {
		day  int
		want calendar.FrenchRevWeekday
	}{
		{1, calendar.Primidi},
		{10, calendar.Decadi},
		{18, calendar.Octidi},
		{30, calendar.Decadi},
	} {
		d, err := calendar.NewFrenchRevArith(8, calendar.Brumaire, tc.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := d.DecadeDay(); got != tc.want {
			t.Errorf("day %v: got %v, want %v", tc.day, got, tc.want)
		}
	}
}
