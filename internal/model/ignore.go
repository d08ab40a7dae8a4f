package model

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreSet holds the glob patterns given with --ignore. Asset names are
// matched with doublestar semantics, so "**/*.map" spans directories.
type IgnoreSet []string

// NewIgnoreSet validates patterns and returns them as an IgnoreSet.
func NewIgnoreSet(patterns []string) (IgnoreSet, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	return IgnoreSet(patterns), nil
}

// Allows reports whether an asset called name belongs in the archive: true
// when no pattern matches it.
func (s IgnoreSet) Allows(name string) bool {
	for _, pattern := range s {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return false
		}
	}

	return true
}
