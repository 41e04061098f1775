// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycycle

import (
	"fmt"

	"cloudeng.io/calendrical/calmath"
	"cloudeng.io/calendrical/daycount"
)

// AkanPrefix is the six day component of the Akan day name.
type AkanPrefix int

const (
	Nwona AkanPrefix = iota + 1
	Nkyi
	Kuru
	Kwa
	Mono
	Fo
)

var akanPrefixNames = [6]string{"Nwona", "Nkyi", "Kuru", "Kwa", "Mono", "Fo"}

func (p AkanPrefix) String() string {
	if p < Nwona || p > Fo {
		return fmt.Sprintf("AkanPrefix(%d)", int(p))
	}
	return akanPrefixNames[p-1]
}

// AkanStem is the seven day component of the Akan day name.
type AkanStem int

const (
	Wukuo AkanStem = iota + 1
	Yaw
	Fie
	Memene
	Kwasi
	Dwo
	Bene
)

var akanStemNames = [7]string{"Wukuo", "Yaw", "Fie", "Memene", "Kwasi", "Dwo", "Bene"}

func (s AkanStem) String() string {
	if s < Wukuo || s > Bene {
		return fmt.Sprintf("AkanStem(%d)", int(s))
	}
	return akanStemNames[s-1]
}

// AkanDay is a position in the 42 day Akan cycle, the product of the
// six day prefix cycle and the seven day stem cycle. Fixed day 37 is
// the cycle start Nwona-Wukuo.
type AkanDay struct {
	Prefix AkanPrefix
	Stem   AkanStem
}

// The fixed day of the first Nwona-Wukuo on or after the Rata Die
// epoch.
const akanAnchor = 37

// AkanDayOf returns the Akan day name of the given fixed day.
func AkanDayOf(f daycount.Fixed) AkanDay {
	n := int64(f) - akanAnchor + 1
	return AkanDay{
		Prefix: AkanPrefix(calmath.AdjRem(n, 6)),
		Stem:   AkanStem(calmath.AdjRem(n, 7)),
	}
}

// FromFixed implements daycount.FromFixed.
func (AkanDay) FromFixed(f daycount.Fixed) AkanDay {
	return AkanDayOf(f)
}

func (a AkanDay) String() string {
	return a.Prefix.String() + "-" + a.Stem.String()
}

// DaysUntil returns the number of days from a to the next occurrence
// of o, in [1, 42]. The prefix fixes the residue mod 6 and the stem
// the residue mod 7; 36 = 6*6 is 1 mod 7 and 0 mod 6, which combines
// the two residues into the single 42 day cycle.
func (a AkanDay) DaysUntil(o AkanDay) int64 {
	pd := int64(o.Prefix) - int64(a.Prefix)
	sd := int64(o.Stem) - int64(a.Stem)
	return calmath.AdjRem(pd+36*(sd-pd), 42)
}
