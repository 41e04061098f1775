// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calmath provides the integer arithmetic primitives that
// calendrical computations are built on: floored division, the
// Euclidean modulus and the adjusted remainder. Go's native / and %
// truncate towards zero which gives the wrong answer for the negative
// day counts and years that proleptic calendars routinely produce.
package calmath

// FloorDiv returns the floor of a/b, that is, the largest integer q
// such that q*b <= a. b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CeilDiv returns the ceiling of a/b. b must be positive.
func CeilDiv(a, b int64) int64 {
	return -FloorDiv(-a, b)
}

// Mod returns the Euclidean modulus a - b*FloorDiv(a, b), which lies
// in [0, b) for positive b regardless of the sign of a.
func Mod(a, b int64) int64 {
	return a - b*FloorDiv(a, b)
}

// AdjRem returns the adjusted remainder of a modulo b: like Mod but
// with b in place of 0, so the result lies in [1, b] for positive b.
// Cyclic structures that number their positions from 1 (days of a
// week, months of a year) are indexed with AdjRem.
func AdjRem(a, b int64) int64 {
	if m := Mod(a, b); m != 0 {
		return m
	}
	return b
}
