// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cloudeng.io/calendrical/daycycle"
	"cloudeng.io/calendrical/display"
)

// isoWeekdayNumber renumbers a weekday Monday first, 1 through 7.
func isoWeekdayNumber(w daycycle.Weekday) int {
	if w == daycycle.Sunday {
		return 7
	}
	return int(w)
}

func commonEra(year int) string {
	if year <= 0 {
		return "BCE"
	}
	return "CE"
}

// RenderFields implements display.Renderable.
func (d Gregorian) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "gregorian",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           commonEra(d.year),
	}
}

// RenderFields implements display.Renderable.
func (d Julian) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "julian",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           commonEra(d.year),
	}
}

// RenderFields implements display.Renderable.
func (d Holocene) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "holocene",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           "HE",
	}
}

// RenderFields implements display.Renderable.
func (d Coptic) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "coptic",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           "AM",
	}
}

// RenderFields implements display.Renderable.
func (d Ethiopic) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "ethiopic",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           "EE",
	}
}

// RenderFields implements display.Renderable.
func (d Egyptian) RenderFields() display.Fields {
	return display.Fields{
		Calendar:  "egyptian",
		Year:      d.year,
		Month:     int(d.month),
		Day:       d.day,
		MonthName: d.month.String(),
		Era:       "NE",
	}
}

// RenderFields implements display.Renderable.
func (d Armenian) RenderFields() display.Fields {
	return display.Fields{
		Calendar:  "armenian",
		Year:      d.year,
		Month:     int(d.month),
		Day:       d.day,
		MonthName: d.month.String(),
		Era:       "AE",
	}
}

// The names of the five or six sansculottides ending a Revolutionary
// year.
var frenchRevFestivalNames = [6]string{
	"La Fête de la Vertu",
	"La Fête du Génie",
	"La Fête du Travail",
	"La Fête de l'Opinion",
	"La Fête des Récompenses",
	"La Fête de la Révolution",
}

func frenchRevFields(name string, year int, month FrenchRevMonth, day int, decade FrenchRevWeekday) display.Fields {
	f := display.Fields{
		Calendar:      name,
		Year:          year,
		Month:         int(month),
		Day:           day,
		MonthName:     month.String(),
		WeekdayName:   decade.String(),
		WeekdayNumber: int(decade),
		Era:           "an",
	}
	if month == Sansculottides {
		f.WeekdayName = ""
		f.WeekdayNumber = 0
		f.Complementary = frenchRevFestivalNames[day-1]
	}
	return f
}

// RenderFields implements display.Renderable.
func (d FrenchRevArith) RenderFields() display.Fields {
	return frenchRevFields("french-revolutionary", d.year, d.month, d.day, d.DecadeDay())
}

// RenderFields implements display.Renderable.
func (d FrenchRevArithAdjusted) RenderFields() display.Fields {
	return frenchRevFields("french-revolutionary-adjusted", d.year, d.month, d.day, d.DecadeDay())
}

// RenderFields implements display.Renderable.
func (d Cotsworth) RenderFields() display.Fields {
	f := display.Fields{
		Calendar:  "cotsworth",
		Year:      d.year,
		Month:     int(d.month),
		Day:       d.day,
		MonthName: d.month.String(),
		Era:       commonEra(d.year),
	}
	switch {
	case d.IsYearDay():
		f.Complementary = "Year Day"
	case d.IsLeapDay():
		f.Complementary = "Leap Day"
	default:
		w, _ := d.Weekday()
		f.WeekdayName = w.String()
		f.WeekdayNumber = isoWeekdayNumber(w)
	}
	return f
}

// RenderFields implements display.Renderable.
func (d Positivist) RenderFields() display.Fields {
	f := display.Fields{
		Calendar:  "positivist",
		Year:      d.year,
		Month:     int(d.month),
		Day:       d.day,
		MonthName: d.month.String(),
	}
	if d.month == PositivistFestivals {
		if d.day == 2 {
			f.Complementary = "Festival of Holy Women"
		} else {
			f.Complementary = "Festival of the Dead"
		}
		return f
	}
	w, _ := d.Weekday()
	f.WeekdayName = w.String()
	f.WeekdayNumber = isoWeekdayNumber(w)
	return f
}

// RenderFields implements display.Renderable.
func (d ISO) RenderFields() display.Fields {
	w := d.Weekday()
	return display.Fields{
		Calendar:      "iso-week",
		Year:          d.year,
		Day:           d.day,
		WeekdayName:   w.String(),
		WeekdayNumber: d.day,
		Week:          d.week,
		Era:           commonEra(d.year),
	}
}

// RenderFields implements display.Renderable.
func (d Symmetry454) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "symmetry454",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Week:          d.WeekOfYear(),
		Era:           commonEra(d.year),
	}
}

// RenderFields implements display.Renderable.
func (d Symmetry010) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "symmetry010",
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Week:          d.WeekOfYear(),
		Era:           commonEra(d.year),
	}
}

// RenderFields implements display.Renderable. The day is the
// inclusive count before the event, which renders as %P.
func (d Roman) RenderFields() display.Fields {
	w := daycycle.WeekdayOf(d.Fixed())
	return display.Fields{
		Calendar:      "roman",
		Year:          d.YearAUC(),
		Month:         int(d.month),
		Day:           d.count,
		MonthName:     d.month.String(),
		WeekdayName:   w.String(),
		WeekdayNumber: isoWeekdayNumber(w),
		Era:           "AUC",
		Complementary: d.event.String(),
	}
}

// RenderFields implements display.Renderable.
func (d Tranquility) RenderFields() display.Fields {
	era := "AT"
	year := d.year
	if year < 0 {
		era = "BT"
		year = -year
	}
	f := display.Fields{
		Calendar: "tranquility",
		Year:     year,
		Era:      era,
	}
	if day, ok := d.Intercalary(); ok {
		f.Complementary = day.String()
		return f
	}
	f.Month = int(d.month)
	f.Day = d.day
	f.MonthName = d.month.String()
	w, _ := d.Weekday()
	f.WeekdayName = w.String()
	f.WeekdayNumber = isoWeekdayNumber(w)
	return f
}
