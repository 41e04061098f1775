// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caltool converts dates between calendar systems and renders
// them with registered format templates.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/calendrical/calendar"
	"cloudeng.io/calendrical/daycycle"
	"cloudeng.io/calendrical/display"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: caltool
summary: convert and format dates across calendar systems
commands:
  - name: convert
    summary: convert dates from one calendar system to one or more others
    arguments:
      - <date>
      - ...
  - name: weekday
    summary: show the weekday and the Akan cycle day for dates
    arguments:
      - <system:date>
      - ...
  - name: format
    summary: render dates using a registered format template
    arguments:
      - <system:date>
      - ...
  - name: list
    summary: enumerate the supported calendars and registered formats
    commands:
      - name: calendars
        summary: list the supported calendar systems and their date syntax
      - name: formats
        summary: list the registered format templates
  - name: today
    summary: convert the current date to one or more calendar systems
`

var cmdSet = subcmd.MustFromYAML(cmdSpec)

type convertFlags struct {
	From string `subcmd:"from,gregorian,source calendar system"`
	To   string `subcmd:"to,gregorian,comma separated target calendar systems"`
}

type weekdayFlags struct{}

type formatFlags struct {
	Format string `subcmd:"format,iso,registered format template name"`
	Locale string `subcmd:"locale,en,'name locale, en or fr'"`
	To     string `subcmd:"to,,convert to this system before formatting"`
}

type listFlags struct{}

type todayFlags struct {
	To string `subcmd:"to,gregorian,comma separated target calendar systems"`
}

func init() {
	cmdSet.Set("convert").MustRunnerAndFlags(convertCmd,
		subcmd.MustRegisterFlagStruct(&convertFlags{}, nil, nil))
	cmdSet.Set("weekday").MustRunnerAndFlags(weekdayCmd,
		subcmd.MustRegisterFlagStruct(&weekdayFlags{}, nil, nil))
	cmdSet.Set("format").MustRunnerAndFlags(formatCmd,
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil))
	cmdSet.Set("list", "calendars").MustRunnerAndFlags(listCalendarsCmd,
		subcmd.MustRegisterFlagStruct(&listFlags{}, nil, nil))
	cmdSet.Set("list", "formats").MustRunnerAndFlags(listFormatsCmd,
		subcmd.MustRegisterFlagStruct(&listFlags{}, nil, nil))
	cmdSet.Set("today").MustRunnerAndFlags(todayCmd,
		subcmd.MustRegisterFlagStruct(&todayFlags{}, nil, nil))
}

func main() {
	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelWarn})
	subcmd.Dispatch(ctx, cmdSet)
}

func convertCmd(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	src, err := systemNamed(fl.From)
	if err != nil {
		return err
	}
	targets, err := targetSystems(fl.To)
	if err != nil {
		return err
	}
	var errs errors.M
	for _, arg := range args {
		f, err := parseDate(src, arg)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("parsed", "system", src.name, "date", arg, "fixed", int64(f))
		for _, tgt := range targets {
			fmt.Printf("%v:%v -> %v: %v\n", src.name, arg, tgt.name, tgt.decode(f))
		}
	}
	return errs.Err()
}

func weekdayCmd(ctx context.Context, _ interface{}, args []string) error {
	var errs errors.M
	for _, arg := range args {
		_, f, err := parseQualifiedDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%v: %v, %v\n", arg, daycycle.WeekdayOf(f), daycycle.AkanDayOf(f))
	}
	return errs.Err()
}

func formatCmd(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*formatFlags)
	locale, err := display.ParseLocale(fl.Locale)
	if err != nil {
		return err
	}
	var target *system
	if fl.To != "" {
		tgt, err := systemNamed(fl.To)
		if err != nil {
			return err
		}
		target = &tgt
	}
	var errs errors.M
	for _, arg := range args {
		src, f, err := parseQualifiedDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		tgt := src
		if target != nil {
			tgt = *target
		}
		if tgt.render == nil {
			errs.Append(fmt.Errorf("%v: %v dates cannot be formatted", arg, tgt.name))
			continue
		}
		out, err := display.Format(tgt.render(f), fl.Format, locale)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		fmt.Println(out)
	}
	return errs.Err()
}

func listCalendarsCmd(ctx context.Context, _ interface{}, _ []string) error {
	for _, s := range systems {
		syntax := s.syntax
		if s.parse == nil {
			syntax = "conversion target only"
		}
		fmt.Printf("%v: %v\n", s.name, syntax)
	}
	return nil
}

func listFormatsCmd(ctx context.Context, _ interface{}, _ []string) error {
	for _, name := range display.Names() {
		t, _ := display.Lookup(name)
		fmt.Printf("%v: %v\n", name, t.Pattern())
	}
	return nil
}

func todayCmd(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*todayFlags)
	targets, err := targetSystems(fl.To)
	if err != nil {
		return err
	}
	now := time.Now()
	g, err := calendar.NewGregorian(now.Year(), calendar.Month(now.Month()), now.Day())
	if err != nil {
		return err
	}
	f := g.Fixed()
	for _, tgt := range targets {
		fmt.Printf("%v: %v\n", tgt.name, tgt.decode(f))
	}
	return nil
}
