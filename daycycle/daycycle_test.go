// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycycle_test

import (
	"testing"

	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/calendrical/daycycle"
)

func TestWeekdayOf(t *testing.T) {
	for _, tc := range []struct {
		day  int64
		want daycycle.Weekday
	}{
		{1, daycycle.Monday},
		{0, daycycle.Sunday},
		{-1, daycycle.Saturday},
		{7, daycycle.Sunday},
		{-7, daycycle.Sunday},
		{719163, daycycle.Thursday}, // 1970-01-01
		{733407 + 195, daycycle.Tuesday},
	} {
		if got := daycycle.WeekdayOf(daycount.Fixed(tc.day)); got != tc.want {
			t.Errorf("day %v: got %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestWeekdayCycle(t *testing.T) {
	// Consecutive days yield consecutive weekdays, across zero.
	prev := daycycle.WeekdayOf(daycount.Fixed(-15))
	for day := int64(-14); day < 15; day++ {
		got := daycycle.WeekdayOf(daycount.Fixed(day))
		if want := (prev + 1) % 7; got != want {
			t.Errorf("day %v: got %v, want %v", day, got, want)
		}
		prev = got
	}
}

func TestWeekdaySearch(t *testing.T) {
	f := daycount.Fixed(1) // a Monday
	for _, tc := range []struct {
		name string
		got  daycount.Fixed
		want int64
	}{
		{"on or before same day", daycycle.Monday.OnOrBefore(f), 1},
		{"on or before earlier", daycycle.Sunday.OnOrBefore(f), 0},
		{"before skips same day", daycycle.Monday.Before(f), -6},
		{"on or after same day", daycycle.Monday.OnOrAfter(f), 1},
		{"on or after later", daycycle.Thursday.OnOrAfter(f), 4},
		{"after skips same day", daycycle.Monday.After(f), 8},
		{"nearest back", daycycle.Saturday.Nearest(f), -1},
		{"nearest forward", daycycle.Wednesday.Nearest(f), 3},
	} {
		if int64(tc.got) != tc.want {
			t.Errorf("%v: got %v, want %v", tc.name, int64(tc.got), tc.want)
		}
	}
}

func TestAkanDayOf(t *testing.T) {
	for _, tc := range []struct {
		day    int64
		prefix daycycle.AkanPrefix
		stem   daycycle.AkanStem
	}{
		{37, daycycle.Nwona, daycycle.Wukuo},
		{38, daycycle.Nkyi, daycycle.Yaw},
		{37 + 42, daycycle.Nwona, daycycle.Wukuo},
		{36, daycycle.Fo, daycycle.Bene},
		{37 - 42, daycycle.Nwona, daycycle.Wukuo},
	} {
		got := daycycle.AkanDayOf(daycount.Fixed(tc.day))
		if got.Prefix != tc.prefix || got.Stem != tc.stem {
			t.Errorf("day %v: got %v, want %v-%v", tc.day, got, tc.prefix, tc.stem)
		}
	}
}

func TestAkanDaysUntil(t *testing.T) {
	// DaysUntil agrees with walking the cycle day by day.
	base := daycount.Fixed(100)
	a := daycycle.AkanDayOf(base)
	for n := int64(1); n <= 42; n++ {
		o := daycycle.AkanDayOf(base + daycount.Fixed(n))
		if got := a.DaysUntil(o); got != n {
			t.Errorf("offset %v: got %v", n, got)
		}
	}
}

func TestAkanConvert(t *testing.T) {
	got := daycount.Convert[daycycle.AkanDay](daycount.RataDie(37))
	if got.String() != "Nwona-Wukuo" {
		t.Errorf("got %v, want Nwona-Wukuo", got)
	}
}
