package geom

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when a source yields no points.
var ErrEmptyDataset = errors.New("dataset has no points")

// ParseError reports a malformed record in a point file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: malformed record %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
