// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/calendrical/calendar"
	"cloudeng.io/calendrical/daycount"
	"cloudeng.io/calendrical/display"
	"cloudeng.io/errors"
)

var (
	errUnknownSystem = errors.New("unknown calendar system")
	errBadDate       = errors.New("malformed date")
)

// system adapts one calendar to the command line: a parser for its
// numeric date syntax and decoders from the fixed day count. parse is
// nil for systems that can only be converted to, render for systems
// the template engine cannot format.
type system struct {
	name   string
	syntax string
	parse  func(fields []int) (daycount.Fixed, error)
	decode func(f daycount.Fixed) fmt.Stringer
	render func(f daycount.Fixed) display.Renderable
}

func stringerOf[T interface {
	daycount.FromFixed[T]
	fmt.Stringer
}](f daycount.Fixed) fmt.Stringer {
	return daycount.Convert[T](f)
}

func renderableOf[T interface {
	daycount.FromFixed[T]
	display.Renderable
}](f daycount.Fixed) display.Renderable {
	return daycount.Convert[T](f)
}

func fieldCount(fields []int, n int, syntax string) error {
	if len(fields) != n {
		return fmt.Errorf("expected %v: %w", syntax, errBadDate)
	}
	return nil
}

// ymd adapts a year-month-day constructor to the field slice syntax.
func ymd[T daycount.ToFixed, M ~int](ctor func(int, M, int) (T, error), syntax string) func([]int) (daycount.Fixed, error) {
	return func(fields []int) (daycount.Fixed, error) {
		if err := fieldCount(fields, 3, syntax); err != nil {
			return 0, err
		}
		d, err := ctor(fields[0], M(fields[1]), fields[2])
		if err != nil {
			return 0, err
		}
		return d.Fixed(), nil
	}
}

// dayNumber adapts a bounds-checked day count constructor to the
// field slice syntax; out-of-domain values surface as
// daycount.ErrUnrepresentable rather than wrapping.
func dayNumber(ctor func(int64) (daycount.Fixed, error)) func([]int) (daycount.Fixed, error) {
	return func(fields []int) (daycount.Fixed, error) {
		if err := fieldCount(fields, 1, "a single day number"); err != nil {
			return 0, err
		}
		return ctor(int64(fields[0]))
	}
}

var systems = []system{
	{
		name:   "gregorian",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewGregorian, "year-month-day"),
		decode: stringerOf[calendar.Gregorian],
		render: renderableOf[calendar.Gregorian],
	},
	{
		name:   "julian",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewJulian, "year-month-day"),
		decode: stringerOf[calendar.Julian],
		render: renderableOf[calendar.Julian],
	},
	{
		name:   "holocene",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewHolocene, "year-month-day"),
		decode: stringerOf[calendar.Holocene],
		render: renderableOf[calendar.Holocene],
	},
	{
		name:   "coptic",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewCoptic, "year-month-day"),
		decode: stringerOf[calendar.Coptic],
		render: renderableOf[calendar.Coptic],
	},
	{
		name:   "ethiopic",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewEthiopic, "year-month-day"),
		decode: stringerOf[calendar.Ethiopic],
		render: renderableOf[calendar.Ethiopic],
	},
	{
		name:   "egyptian",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewEgyptian, "year-month-day"),
		decode: stringerOf[calendar.Egyptian],
		render: renderableOf[calendar.Egyptian],
	},
	{
		name:   "armenian",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewArmenian, "year-month-day"),
		decode: stringerOf[calendar.Armenian],
		render: renderableOf[calendar.Armenian],
	},
	{
		name:   "french-revolutionary",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewFrenchRevArith, "year-month-day"),
		decode: stringerOf[calendar.FrenchRevArith],
		render: renderableOf[calendar.FrenchRevArith],
	},
	{
		name:   "french-revolutionary-adjusted",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewFrenchRevArithAdjusted, "year-month-day"),
		decode: stringerOf[calendar.FrenchRevArithAdjusted],
		render: renderableOf[calendar.FrenchRevArithAdjusted],
	},
	{
		name:   "cotsworth",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewCotsworth, "year-month-day"),
		decode: stringerOf[calendar.Cotsworth],
		render: renderableOf[calendar.Cotsworth],
	},
	{
		name:   "positivist",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewPositivist, "year-month-day"),
		decode: stringerOf[calendar.Positivist],
		render: renderableOf[calendar.Positivist],
	},
	{
		name:   "iso-week",
		syntax: "year-week-day",
		parse: func(fields []int) (daycount.Fixed, error) {
			if err := fieldCount(fields, 3, "year-week-day"); err != nil {
				return 0, err
			}
			d, err := calendar.NewISO(fields[0], fields[1], fields[2])
			if err != nil {
				return 0, err
			}
			return d.Fixed(), nil
		},
		decode: stringerOf[calendar.ISO],
		render: renderableOf[calendar.ISO],
	},
	{
		name:   "symmetry454",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewSymmetry454, "year-month-day"),
		decode: stringerOf[calendar.Symmetry454],
		render: renderableOf[calendar.Symmetry454],
	},
	{
		name:   "symmetry010",
		syntax: "year-month-day",
		parse:  ymd(calendar.NewSymmetry010, "year-month-day"),
		decode: stringerOf[calendar.Symmetry010],
		render: renderableOf[calendar.Symmetry010],
	},
	{
		// Roman nomenclature is derived, not parsed.
		name:   "roman",
		decode: stringerOf[calendar.Roman],
		render: renderableOf[calendar.Roman],
	},
	{
		name:   "tranquility",
		syntax: "year-month-day (month 0 selects an intercalary day)",
		parse: func(fields []int) (daycount.Fixed, error) {
			if err := fieldCount(fields, 3, "year-month-day"); err != nil {
				return 0, err
			}
			if fields[1] == 0 {
				d, err := calendar.NewTranquilityIntercalary(fields[0], calendar.TranquilityDay(fields[2]))
				if err != nil {
					return 0, err
				}
				return d.Fixed(), nil
			}
			d, err := calendar.NewTranquility(fields[0], calendar.TranquilityMonth(fields[1]), fields[2])
			if err != nil {
				return 0, err
			}
			return d.Fixed(), nil
		},
		decode: stringerOf[calendar.Tranquility],
		render: renderableOf[calendar.Tranquility],
	},
	{
		name:   "fixed",
		syntax: "rata die day number",
		parse:  dayNumber(daycount.New),
		decode: stringerOf[daycount.RataDie],
	},
	{
		name:   "jdn",
		syntax: "julian day number",
		parse: dayNumber(func(n int64) (daycount.Fixed, error) {
			j, err := daycount.NewJulianDayNumber(n)
			if err != nil {
				return 0, err
			}
			return j.Fixed(), nil
		}),
		decode: stringerOf[daycount.JulianDayNumber],
	},
	{
		name:   "mjd",
		syntax: "modified julian day",
		parse: dayNumber(func(n int64) (daycount.Fixed, error) {
			m, err := daycount.NewModifiedJulianDay(n)
			if err != nil {
				return 0, err
			}
			return m.Fixed(), nil
		}),
		decode: stringerOf[daycount.ModifiedJulianDay],
	},
	{
		name:   "unixday",
		syntax: "days since the unix epoch",
		parse: dayNumber(func(n int64) (daycount.Fixed, error) {
			u, err := daycount.NewUnixDay(n)
			if err != nil {
				return 0, err
			}
			return u.Fixed(), nil
		}),
		decode: stringerOf[daycount.UnixDay],
	},
}

func systemNamed(name string) (system, error) {
	for _, s := range systems {
		if s.name == name {
			return s, nil
		}
	}
	return system{}, fmt.Errorf("%q: %w", name, errUnknownSystem)
}

// targetSystems resolves a comma separated list of system names.
func targetSystems(list string) ([]system, error) {
	var targets []system
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := systemNamed(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, s)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no target systems: %w", errUnknownSystem)
	}
	return targets, nil
}

// parseDateFields splits a dash separated numeric date, allowing a
// leading minus sign on the year.
func parseDateFields(s string) ([]int, error) {
	negate := strings.HasPrefix(s, "-")
	if negate {
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	fields := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errBadDate)
		}
		fields[i] = v
	}
	if negate {
		fields[0] = -fields[0]
	}
	return fields, nil
}

// parseDate parses a date in the source system's syntax.
func parseDate(src system, s string) (daycount.Fixed, error) {
	if src.parse == nil {
		return 0, fmt.Errorf("%v dates cannot be parsed, only converted to: %w", src.name, errBadDate)
	}
	fields, err := parseDateFields(s)
	if err != nil {
		return 0, err
	}
	return src.parse(fields)
}

// parseQualifiedDate parses the system:date argument form.
func parseQualifiedDate(arg string) (system, daycount.Fixed, error) {
	name, rest, ok := strings.Cut(arg, ":")
	if !ok {
		return system{}, 0, fmt.Errorf("%q: expected system:date: %w", arg, errBadDate)
	}
	src, err := systemNamed(name)
	if err != nil {
		return system{}, 0, err
	}
	f, err := parseDate(src, rest)
	if err != nil {
		return system{}, 0, err
	}
	return src, f, nil
}
