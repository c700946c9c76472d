package domain

import (
	"strings"
	"unique"
)

// TaskKey is the canonical, case-insensitive identity of a task name.
// It wraps a unique.Handle so that keys are cheap to copy, compare and use
// as map keys even when the same name is folded from many call sites.
type TaskKey struct {
	h unique.Handle[string]
}

// KeyOf folds a task name to its canonical key. "Build" and "build"
// produce the same key.
func KeyOf(name string) TaskKey {
	return TaskKey{h: unique.Make(strings.ToLower(name))}
}

// String returns the folded form of the name.
func (k TaskKey) String() string {
	var zero unique.Handle[string]
	if k.h == zero {
		return ""
	}
	return k.h.Value()
}

// IsZero reports whether the key was never derived from a name.
func (k TaskKey) IsZero() bool {
	var zero unique.Handle[string]
	return k.h == zero
}
