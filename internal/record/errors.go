// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every FormatError via errors.Is.
var ErrFormat = errors.New("format error")

// FormatError reports a row that passed the acceptance test but carries a
// field that cannot be interpreted: an unparseable mark or credit value, or
// a unit code without a level digit at index 4.
type FormatError struct {
	// Line is the source line, when known.
	Line string
	// Field names the offending field (e.g. "mark", "unit_code").
	Field string
	// Value is the raw token that failed.
	Value string
	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line != "" {
		msg += fmt.Sprintf(" (line %q)", e.Line)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
