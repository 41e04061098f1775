// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendrical/calendar"
	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/calendrical/daycycle"
	"cloudeng.io/errors"
)

func mustPositivist(t *testing.T, y int, m calendar.PositivistMonth, d int) calendar.Positivist {
	t.Helper()
	p, err := calendar.NewPositivist(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPositivistKnownDates(t *testing.T) {
	for _, tc := range []struct {
		name   string
		d      calendar.Positivist
		gYear  int
		gMonth calendar.Month
		gDay   int
	}{
		{"era begins with 1789", mustPositivist(t, 1, calendar.Moses, 1), 1789, calendar.January, 1},
		{"festival of the dead", mustPositivist(t, 1, calendar.PositivistFestivals, 1), 1789, calendar.December, 31},
		{"festival of holy women", mustPositivist(t, 8, calendar.PositivistFestivals, 2), 1796, calendar.December, 31},
		{"last month day", mustPositivist(t, 237, calendar.Bichat, 28), 2025, calendar.December, 30},
	} {
		g := daycount.Convert[calendar.Gregorian](tc.d)
		if g.Year() != tc.gYear || g.Month() != tc.gMonth || g.Day() != tc.gDay {
			t.Errorf("%v: got %v, want %04d-%02d-%02d", tc.name, g, tc.gYear, tc.gMonth, tc.gDay)
			continue
		}
		if back := daycount.Convert[calendar.Positivist](g); back != tc.d {
			t.Errorf("%v: round trip got %v, want %v", tc.name, back, tc.d)
		}
	}
}

func TestPositivistWeekday(t *testing.T) {
	// Every month begins on a Monday; the festival days belong to no
	// week.
	first := mustPositivist(t, 237, calendar.Shakespeare, 1)
	if wd, ok := first.Weekday(); !ok || wd != daycycle.Monday {
		t.Errorf("got %v %v, want Monday", wd, ok)
	}
	last := mustPositivist(t, 237, calendar.Shakespeare, 28)
	if wd, ok := last.Weekday(); !ok || wd != daycycle.Sunday {
		t.Errorf("got %v %v, want Sunday", wd, ok)
	}
	if _, ok := mustPositivist(t, 1, calendar.PositivistFestivals, 1).Weekday(); ok {
		t.Errorf("festival day should have no weekday")
	}
}

func TestPositivistValidation(t *testing.T) {
	// The second festival day only exists in leap years; Positivist 8
	// aligns with Gregorian 1796.
	if !calendar.IsPositivistLeapYear(8) {
		t.Errorf("year 8 should be a leap year")
	}
	if _, err := calendar.NewPositivist(1, calendar.PositivistFestivals, 2); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewPositivist(1, calendar.Moses, 29); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewPositivist(1, 15, 1); !errors.Is(err, calendar.ErrMonthOutOfRange) {
		t.Errorf("got %v, want ErrMonthOutOfRange", err)
	}
}

func TestPositivistStrings(t *testing.T) {
	for _, tc := range []struct {
		d    calendar.Positivist
		want string
	}{
		{mustPositivist(t, 237, calendar.SaintPaul, 9), "Saint Paul 9, 237"},
		{mustPositivist(t, 1, calendar.PositivistFestivals, 1), "Festival of the Dead 1"},
		{mustPositivist(t, 8, calendar.PositivistFestivals, 2), "Festival of Holy Women 8"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
