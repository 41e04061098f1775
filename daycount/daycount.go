// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycount defines the day numbering systems that anchor all
// calendrical conversions. The pivot representation is Fixed, a signed
// count of days with Fixed(1) falling on Monday, January 1 of year 1
// in the proleptic Gregorian calendar (the Rata Die of Reingold and
// Dershowitz). Every calendar and day cycle converts to and from Fixed
// and to nothing else, so any pair of systems composes through it.
package daycount

import (
	"fmt"

	"cloudeng.io/errors"
)

// Fixed is the pivot day count. Zero is the day before the Rata Die
// epoch, negative values are earlier days. Fixed values obtained from
// New, Add or a calendar's encoder always lie within [MinFixed, MaxFixed].
type Fixed int64

// The supported domain, a little under 47 million years either side
// of the epoch. Every calendar decodes every in-domain Fixed to a
// valid date.
const (
	MaxFixed Fixed = 17_171_480_576
	MinFixed Fixed = -17_171_480_576
)

// ErrUnrepresentable is returned when a day count, or the result of
// day arithmetic, falls outside [MinFixed, MaxFixed].
var ErrUnrepresentable = errors.New("day count outside the supported range")

// New returns the bounds-checked Fixed for the given day number.
func New(days int64) (Fixed, error) {
	f := Fixed(days)
	if f < MinFixed || f > MaxFixed {
		return 0, fmt.Errorf("day %d: %w", days, ErrUnrepresentable)
	}
	return f, nil
}

// Fixed implements ToFixed; a Fixed is its own anchor.
func (f Fixed) Fixed() Fixed { return f }

// Add returns the day n days after f (before, for negative n). It
// fails with ErrUnrepresentable if the result leaves the domain.
func (f Fixed) Add(n int64) (Fixed, error) {
	return New(int64(f) + n)
}

// Sub returns the number of days from o to f.
func (f Fixed) Sub(o Fixed) int64 { return int64(f) - int64(o) }

// Compare returns -1, 0 or 1 as f is before, equal to or after o.
func (f Fixed) Compare(o Fixed) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	}
	return 0
}

// Before returns true if f falls before o.
func (f Fixed) Before(o Fixed) bool { return f < o }

// After returns true if f falls after o.
func (f Fixed) After(o Fixed) bool { return f > o }

func (f Fixed) String() string {
	return fmt.Sprintf("fixed(%d)", int64(f))
}
