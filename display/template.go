// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// ErrBadPattern is returned by Parse for patterns with unknown or
// truncated verbs.
var ErrBadPattern = errors.New("malformed format pattern")

// A segment is either literal text or a single field verb.
type segment struct {
	literal string
	verb    byte
}

// Template is an immutable, parsed format pattern. The verbs follow
// strftime where one exists:
//
//	%Y  year, sign prefixed for negative years
//	%m  month number, zero padded
//	%d  day of the month, zero padded
//	%B  month name
//	%b  abbreviated month name
//	%A  weekday name
//	%a  abbreviated weekday name
//	%u  weekday number, Monday is 1
//	%V  week of the year, zero padded
//	%C  calendar system name
//	%E  era name
//	%P  complementary (intercalary or festival) day name
//	%%  a literal percent sign
type Template struct {
	pattern  string
	segments []segment
}

const verbs = "YmdBbAauVCEP"

// Parse compiles a pattern into a Template.
func Parse(pattern string) (Template, error) {
	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		i++
		if i == len(pattern) {
			return Template{}, fmt.Errorf("%q: trailing %%: %w", pattern, ErrBadPattern)
		}
		if pattern[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		if !strings.ContainsRune(verbs, rune(pattern[i])) {
			return Template{}, fmt.Errorf("%q: unknown verb %%%c: %w", pattern, pattern[i], ErrBadPattern)
		}
		flush()
		segs = append(segs, segment{verb: pattern[i]})
	}
	flush()
	return Template{pattern: pattern, segments: segs}, nil
}

// MustParse is like Parse but panics on error; it is intended for
// compiled-in patterns.
func MustParse(pattern string) Template {
	t, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// Pattern returns the pattern the template was parsed from.
func (t Template) Pattern() string { return t.pattern }

// Render formats the date.
func (t Template) Render(d Renderable, loc Locale) string {
	f := d.RenderFields()
	var b strings.Builder
	for _, s := range t.segments {
		if s.verb == 0 {
			b.WriteString(s.literal)
			continue
		}
		switch s.verb {
		case 'Y':
			y := f.Year
			if y < 0 {
				b.WriteByte('-')
				y = -y
			}
			fmt.Fprintf(&b, "%04d", y)
		case 'm':
			fmt.Fprintf(&b, "%02d", f.Month)
		case 'd':
			fmt.Fprintf(&b, "%02d", f.Day)
		case 'B':
			b.WriteString(localized(loc, f.MonthName))
		case 'b':
			b.WriteString(abbreviated(localized(loc, f.MonthName)))
		case 'A':
			b.WriteString(localized(loc, f.WeekdayName))
		case 'a':
			b.WriteString(abbreviated(localized(loc, f.WeekdayName)))
		case 'u':
			fmt.Fprintf(&b, "%d", f.WeekdayNumber)
		case 'V':
			fmt.Fprintf(&b, "%02d", f.Week)
		case 'C':
			b.WriteString(f.Calendar)
		case 'E':
			b.WriteString(f.Era)
		case 'P':
			b.WriteString(f.Complementary)
		}
	}
	return b.String()
}

func abbreviated(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
