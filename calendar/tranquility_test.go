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

func TestTranquilityEpoch(t *testing.T) {
	g, err := calendar.NewGregorian(1969, calendar.July, 20)
	if err != nil {
		t.Fatal(err)
	}
	d := daycount.Convert[calendar.Tranquility](g)
	if d.Year() != 0 {
		t.Errorf("got year %v, want 0", d.Year())
	}
	day, ok := d.Intercalary()
	if !ok || day != calendar.MoonLandingDay {
		t.Errorf("got %v, want Moon Landing Day", d)
	}
	if got, want := d.String(), "Moon Landing Day"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := d.Fixed(); got != g.Fixed() {
		t.Errorf("got %v, want %v", got, g.Fixed())
	}
}

func mustTranquilityIntercalary(t *testing.T, year int, day calendar.TranquilityDay) calendar.Tranquility {
	t.Helper()
	d, err := calendar.NewTranquilityIntercalary(year, day)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustTranquility(t *testing.T, year int, month calendar.TranquilityMonth, day int) calendar.Tranquility {
	t.Helper()
	d, err := calendar.NewTranquility(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestTranquilityKnownDates(t *testing.T) {
	for _, tc := range []struct {
		name   string
		d      calendar.Tranquility
		gYear  int
		gMonth calendar.Month
		gDay   int
	}{
		{"first day of year 1", mustTranquility(t, 1, calendar.ArchimedesMonth, 1), 1969, calendar.July, 21},
		{"armstrong day 1 AT", mustTranquilityIntercalary(t, 1, calendar.ArmstrongDay), 1970, calendar.July, 20},
		{"day before the landing", mustTranquility(t, -1, calendar.Mendel, 28), 1969, calendar.July, 19},
		{"aldrin day 2 BT", mustTranquilityIntercalary(t, -2, calendar.AldrinDay), 1968, calendar.February, 29},
	} {
		g := daycount.Convert[calendar.Gregorian](tc.d)
		if g.Year() != tc.gYear || g.Month() != tc.gMonth || g.Day() != tc.gDay {
			t.Errorf("%v: got %v, want %04d-%02d-%02d", tc.name, g, tc.gYear, tc.gMonth, tc.gDay)
			continue
		}
		if back := daycount.Convert[calendar.Tranquility](g); back != tc.d {
			t.Errorf("%v: round trip got %v, want %v", tc.name, back, tc.d)
		}
	}
}

func TestTranquilityValidation(t *testing.T) {
	if _, err := calendar.NewTranquility(0, calendar.ArchimedesMonth, 1); !errors.Is(err, calendar.ErrYearOutOfRange) {
		t.Errorf("got %v, want ErrYearOutOfRange", err)
	}
	if _, err := calendar.NewTranquility(1, calendar.Mendel, 29); !errors.Is(err, calendar.ErrDayOutOfRange) {
		t.Errorf("got %v, want ErrDayOutOfRange", err)
	}
	for _, tc := range []struct {
		name string
		year int
		day  calendar.TranquilityDay
		want error
	}{
		{"moon landing day", 0, calendar.MoonLandingDay, nil},
		{"moon landing day in year 1", 1, calendar.MoonLandingDay, calendar.ErrDayOutOfRange},
		{"armstrong day", 1, calendar.ArmstrongDay, nil},
		{"armstrong day in year 0", 0, calendar.ArmstrongDay, calendar.ErrDayOutOfRange},
		{"armstrong day in year -1", -1, calendar.ArmstrongDay, calendar.ErrDayOutOfRange},
		{"aldrin day in leap year", 3, calendar.AldrinDay, nil},
		{"aldrin day in common year", 1, calendar.AldrinDay, calendar.ErrDayOutOfRange},
	} {
		_, err := calendar.NewTranquilityIntercalary(tc.year, tc.day)
		if tc.want == nil {
			if err != nil {
				t.Errorf("%v: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%v: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestTranquilityWeekday(t *testing.T) {
	// Every month begins on a Friday; intercalary days have no
	// weekday.
	first := mustTranquility(t, 1, calendar.Galileo, 1)
	if wd, ok := first.Weekday(); !ok || wd != daycycle.Friday {
		t.Errorf("got %v %v, want Friday", wd, ok)
	}
	last := mustTranquility(t, 1, calendar.Galileo, 28)
	if wd, ok := last.Weekday(); !ok || wd != daycycle.Thursday {
		t.Errorf("got %v %v, want Thursday", wd, ok)
	}
	if _, ok := mustTranquilityIntercalary(t, 1, calendar.ArmstrongDay).Weekday(); ok {
		t.Errorf("armstrong day should have no weekday")
	}
}

func TestTranquilityStrings(t *testing.T) {
	for _, tc := range []struct {
		d    calendar.Tranquility
		want string
	}{
		{mustTranquility(t, 56, calendar.Hippocrates, 3), "Hippocrates 3, 56 AT"},
		{mustTranquility(t, -1, calendar.Mendel, 28), "Mendel 28, 1 BT"},
		{mustTranquilityIntercalary(t, 1, calendar.ArmstrongDay), "Armstrong Day, 1 AT"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
