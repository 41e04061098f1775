// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"sort"
	"sync"

	"cloudeng.io/errors"
)

// ErrUnknownFormat is returned by Format for names with no registered
// template.
var ErrUnknownFormat = errors.New("unknown format")

var (
	registryMu sync.Mutex
	registry   = map[string]Template{
		"iso":           MustParse("%Y-%m-%d"),
		"long":          MustParse("%A, %d %B %Y"),
		"short":         MustParse("%d %b %Y"),
		"dmy":           MustParse("%d/%m/%Y"),
		"mdy":           MustParse("%m/%d/%Y"),
		"ymd":           MustParse("%Y/%m/%d"),
		"week":          MustParse("%Y-W%V-%u"),
		"complementary": MustParse("%P, %Y %E"),
	}
)

// Register adds or replaces a named template.
func Register(name string, t Template) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = t
}

// Lookup returns the template registered under name.
func Lookup(name string) (Template, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	t, ok := registry[name]
	return t, ok
}

// Names returns the registered template names, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format renders the date with the named template.
func Format(d Renderable, name string, loc Locale) (string, error) {
	t, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
	return t.Render(d, loc), nil
}
