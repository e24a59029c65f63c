package pathlang

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManySegments is returned when parsing exceeds the configured
	// segment ceiling. The partial path up to the ceiling is still returned.
	ErrTooManySegments = errors.New("too many segments")

	// ErrNoInitialMoveTo reports a path whose first segment is not a MoveTo.
	ErrNoInitialMoveTo = errors.New("path does not start with a moveto")

	// ErrClosePoints reports a Close segment that carries points.
	ErrClosePoints = errors.New("close segment carries points")
)

// Diagnostic is a recoverable parse problem. The parser skips the offending
// command and continues, so a document with a single bad command still
// yields all of its valid segments.
type Diagnostic struct {
	Offset  int    // byte offset into the path data
	Command byte   // command letter in effect, 0 when none
	Message string
}

func (d Diagnostic) String() string {
	if d.Command == 0 {
		return fmt.Sprintf("offset %d: %s", d.Offset, d.Message)
	}
	return fmt.Sprintf("offset %d: command %q: %s", d.Offset, d.Command, d.Message)
}
