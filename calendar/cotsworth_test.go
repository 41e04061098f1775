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

func mustCotsworth(t *testing.T, y int, m calendar.CotsworthMonth, d int) calendar.Cotsworth {
	t.Helper()
	c, err := calendar.NewCotsworth(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCotsworthKnownDates(t *testing.T) {
	for _, tc := range []struct {
		name   string
		d      calendar.Cotsworth
		gYear  int
		gMonth calendar.Month
		gDay   int
	}{
		{"new year", mustCotsworth(t, 2025, calendar.CotsworthJanuary, 1), 2025, calendar.January, 1},
		{"leap day 2024", mustCotsworth(t, 2024, calendar.CotsworthJune, 29), 2024, calendar.June, 17},
		{"sol 1 common year", mustCotsworth(t, 2025, calendar.Sol, 1), 2025, calendar.June, 18},
		{"year day common", mustCotsworth(t, 2023, calendar.CotsworthDecember, 29), 2023, calendar.December, 31},
		{"year day leap", mustCotsworth(t, 2024, calendar.CotsworthDecember, 29), 2024, calendar.December, 31},
	} {
		g := daycount.Convert[calendar.Gregorian](tc.d)
		if g.Year() != tc.gYear || g.Month() != tc.gMonth || g.Day() != tc.gDay {
			t.Errorf("%v: got %v, want %04d-%02d-%02d", tc.name, g, tc.gYear, tc.gMonth, tc.gDay)
			continue
		}
		if back := daycount.Convert[calendar.Cotsworth](g); back != tc.d {
			t.Errorf("%v: round trip got %v, want %v", tc.name, back, tc.d)
		}
	}
}

func TestCotsworthWeekday(t *testing.T) {
	// Every month begins on a Sunday; the intercalary days belong to
	// no week.
	first := mustCotsworth(t, 2025, calendar.CotsworthOctober, 1)
	if wd, ok := first.Weekday(); !ok || wd != daycycle.Sunday {
		t.Errorf("got %v %v, want Sunday", wd, ok)
	}
	last := mustCotsworth(t, 2025, calendar.CotsworthOctober, 28)
	if wd, ok := last.Weekday(); !ok || wd != daycycle.Saturday {
		t.Errorf("got %v %v, want Saturday", wd, ok)
	}
	yearDay := mustCotsworth(t, 2025, calendar.CotsworthDecember, 29)
	if !yearDay.IsYearDay() {
		t.Errorf("expected year day")
	}
	if _, ok := yearDay.Weekday(); ok {
		t.Errorf("year day should have no weekday")
	}
	leapDay := mustCotsworth(t, 2024, calendar.CotsworthJune, 29)
	if !leapDay.IsLeapDay() {
		t.Errorf("expected leap day")
	}
	if _, ok := leapDay.Weekday(); ok {
		t.Errorf("leap day should have no weekday")
	}
}

func TestCotsworthValidation(t *testing.T) {
	if _, err := calendar.NewCotsworth(2023, calendar.CotsworthJune, 29); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewCotsworth(2024, calendar.CotsworthJanuary, 29); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	if _, err := calendar.NewCotsworth(2024, 14, 1); !errors.Is(err, calendar.ErrMonthOutOfRange) {
		t.Errorf("got %v, want ErrMonthOutOfRange", err)
	}
	if _, err := calendar.NewCotsworth(2024, calendar.CotsworthDecember, 30); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
}
