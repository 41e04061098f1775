// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display_test

import (
	"testing"

	"cloudeng.io/calendrical/calendar"
	"cloudeng.io/calendrical/display"
	"cloudeng.io/errors"
)

func mustDate(t *testing.T, y int, m calendar.Month, d int) calendar.Gregorian {
	t.Helper()
	g, err := calendar.NewGregorian(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRegisteredFormats(t *testing.T) {
	g := mustDate(t, 2026, calendar.August, 24)
	for _, tc := range []struct {
		format string
		locale display.Locale
		d      display.Renderable
		want   string
	}{
		{"iso", display.EN, g, "2026-08-24"},
		{"long", display.EN, g, "Monday, 24 August 2026"},
		{"long", display.FR, g, "lundi, 24 août 2026"},
		{"short", display.EN, g, "24 Aug 2026"},
		{"short", display.FR, g, "24 aoû 2026"},
		{"dmy", display.EN, g, "24/08/2026"},
		{"mdy", display.EN, g, "08/24/2026"},
		{"ymd", display.EN, g, "2026/08/24"},
		{"iso", display.EN, mustDate(t, -44, calendar.March, 15), "-0044-03-15"},
	} {
		got, err := display.Format(tc.d, tc.format, tc.locale)
		if err != nil {
			t.Errorf("%v: %v", tc.format, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v %v: got %q, want %q", tc.format, tc.locale, got, tc.want)
		}
	}
}

func TestWeekFormat(t *testing.T) {
	d, err := calendar.NewISO(2026, 35, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := display.Format(d, "week", display.EN)
	if err != nil {
		t.Fatal(err)
	}
	if want := "2026-W35-1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestComplementaryFormat(t *testing.T) {
	armstrong, err := calendar.NewTranquilityIntercalary(1, calendar.ArmstrongDay)
	if err != nil {
		t.Fatal(err)
	}
	got, err := display.Format(armstrong, "complementary", display.EN)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Armstrong Day, 0001 AT"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	fete, err := calendar.NewFrenchRevArithAdjusted(3, calendar.Sansculottides, 6)
	if err != nil {
		t.Fatal(err)
	}
	got, err = display.Format(fete, "complementary", display.EN)
	if err != nil {
		t.Fatal(err)
	}
	if want := "La Fête de la Révolution, 0003 an"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatDeterminism(t *testing.T) {
	g := mustDate(t, 2026, calendar.August, 24)
	first, err := display.Format(g, "long", display.FR)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := display.Format(g, "long", display.FR)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Errorf("got %q, want %q", again, first)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	g := mustDate(t, 2026, calendar.August, 24)
	_, err := display.Format(g, "nosuch", display.EN)
	if !errors.Is(err, display.ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestRegister(t *testing.T) {
	display.Register("era", display.MustParse("%Y %E (%C)"))
	g := mustDate(t, -44, calendar.March, 15)
	got, err := display.Format(g, "era", display.EN)
	if err != nil {
		t.Fatal(err)
	}
	if want := "-0044 BCE (gregorian)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	found := false
	for _, name := range display.Names() {
		if name == "era" {
			found = true
		}
	}
	if !found {
		t.Errorf("registered name missing from Names")
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{"%Q", "%Y-%m-%"} {
		if _, err := display.Parse(pattern); !errors.Is(err, display.ErrBadPattern) {
			t.Errorf("%q: got %v, want ErrBadPattern", pattern, err)
		}
	}
	tmpl, err := display.Parse("100%% %Y")
	if err != nil {
		t.Fatal(err)
	}
	g := mustDate(t, 2026, calendar.August, 24)
	if got, want := tmpl.Render(g, display.EN), "100% 2026"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLocaleFallback(t *testing.T) {
	// Names without a French table entry render in English.
	c, err := calendar.NewCoptic(1741, calendar.Thoout, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := display.Format(c, "long", display.FR)
	if err != nil {
		t.Fatal(err)
	}
	en, err := display.Format(c, "long", display.EN)
	if err != nil {
		t.Fatal(err)
	}
	// The weekday translates, the Coptic month name does not.
	if got == en {
		t.Errorf("expected the weekday to translate: %q", got)
	}
	f := c.RenderFields()
	if f.MonthName != "Thoout" {
		t.Errorf("got %q, want Thoout", f.MonthName)
	}
}

func TestParseLocale(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want display.Locale
		err  error
	}{
		{"en", display.EN, nil},
		{"", display.EN, nil},
		{"fr", display.FR, nil},
		{"de", display.EN, display.ErrUnknownLocale},
	} {
		got, err := display.ParseLocale(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%q: got %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %v %v, want %v", tc.in, got, err, tc.want)
		}
	}
}
