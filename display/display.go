// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package display renders calendar dates as text. Rendering is pure:
// a template, a date and a locale always produce the same string, with
// no environment lookup at render time. Name tables are fixed data
// compiled into the package.
package display

import (
	"fmt"

	"cloudeng.io/errors"
)

// Locale selects the name tables used when rendering. French names
// exist for the weekdays and the Gregorian and Julian months; names
// without a French entry render in English.
type Locale int

const (
	EN Locale = iota
	FR
)

func (l Locale) String() string {
	switch l {
	case EN:
		return "en"
	case FR:
		return "fr"
	}
	return fmt.Sprintf("Locale(%d)", int(l))
}

// ErrUnknownLocale is returned by ParseLocale.
var ErrUnknownLocale = errors.New("unknown locale")

// ParseLocale returns the locale named by s.
func ParseLocale(s string) (Locale, error) {
	switch s {
	case "en", "":
		return EN, nil
	case "fr":
		return FR, nil
	}
	return EN, fmt.Errorf("%q: %w", s, ErrUnknownLocale)
}

// frNames maps English day and month names to their French
// equivalents.
var frNames = map[string]string{
	"Sunday":    "dimanche",
	"Monday":    "lundi",
	"Tuesday":   "mardi",
	"Wednesday": "mercredi",
	"Thursday":  "jeudi",
	"Friday":    "vendredi",
	"Saturday":  "samedi",
	"January":   "janvier",
	"February":  "février",
	"March":     "mars",
	"April":     "avril",
	"May":       "mai",
	"June":      "juin",
	"July":      "juillet",
	"August":    "août",
	"September": "septembre",
	"October":   "octobre",
	"November":  "novembre",
	"December":  "décembre",
}

func localized(loc Locale, name string) string {
	if loc == FR {
		if fr, ok := frNames[name]; ok {
			return fr
		}
	}
	return name
}

// Fields is the view of a date the rendering engine works from. Zero
// values mark fields the calendar does not define: a date with no
// weekday has an empty WeekdayName, a week calendar has Month 0.
type Fields struct {
	Calendar      string // calendar system name
	Year          int
	Month         int
	Day           int
	MonthName     string
	WeekdayName   string
	WeekdayNumber int // 1-based, Monday first for seven day weeks
	Week          int // week of the year, 0 if the calendar has none
	Era           string
	Complementary string // name of an intercalary or festival day
}

// Renderable is implemented by calendar date types.
type Renderable interface {
	RenderFields() Fields
}
