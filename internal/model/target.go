package model

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrEmptyTargetSet is returned by TargetSet.Validate for a set with no targets.
var ErrEmptyTargetSet = errors.New("target set is empty")

// Target represents a single file to download.
//
// Target is produced by the resolver and is not modified afterwards.
// Filename is meant to be a single path component, but it originates from
// user input, so the engine neutralizes it again before touching the disk.
//
// Example:
//
//	t := NewTarget("https://example.com/files/thing.bin", "thing.bin")
//	// t.Stem() == "thing"
type Target struct {
	// URL is the absolute URL to GET.
	URL string

	// Filename is the name the file is stored under in the scratch
	// directory and inside the archive.
	Filename string
}

// NewTarget creates a Target.
func NewTarget(url, filename string) Target {
	return Target{URL: url, Filename: filename}
}

// Stem returns the filename without its extension. A name made of leading
// dots plus one word, like ".bashrc", is its own stem.
func (t Target) Stem() string {
	stem := strings.TrimSuffix(t.Filename, path.Ext(t.Filename))
	if strings.Trim(stem, ".") == "" {
		return t.Filename
	}
	return stem
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return fmt.Sprintf("%s -> %s", t.URL, t.Filename)
}

// TargetSet is an ordered list of download targets.
type TargetSet []Target

// Validate reports whether the set can be handed to the download engine.
func (s TargetSet) Validate() error {
	if len(s) == 0 {
		return ErrEmptyTargetSet
	}
	for i, t := range s {
		if strings.TrimSpace(t.URL) == "" {
			return fmt.Errorf("target %d: empty URL", i)
		}
		if strings.TrimSpace(t.Filename) == "" {
			return fmt.Errorf("target %d: empty filename", i)
		}
	}
	return nil
}

// Filenames returns the filename of every target, in order.
func (s TargetSet) Filenames() []string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.Filename
	}
	return names
}

// Equal reports whether both sets contain the same targets in the same order.
func (s TargetSet) Equal(other TargetSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
