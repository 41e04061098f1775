// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

// ToFixed is implemented by any value anchored to a single day: day
// counts, calendar dates and day-cycle positions.
type ToFixed interface {
	Fixed() Fixed
}

// FromFixed is implemented by types that can construct themselves
// from a fixed day. The receiver carries no state; the zero value of
// an implementing type decodes any in-domain Fixed.
type FromFixed[T any] interface {
	FromFixed(Fixed) T
}

// Convert re-expresses a day-anchored value in the target system T:
//
//	j := daycount.Convert[calendar.Julian](g)
//
// Conversion is exact and composes transitively since every system
// shares the Fixed pivot.
func Convert[T FromFixed[T]](d ToFixed) T {
	var t T
	return t.FromFixed(d.Fixed())
}
