package infographic

import (
	"errors"
	"fmt"
)

// ErrMalformedHeader is returned when the first line is not "infographic <template>".
var ErrMalformedHeader = errors.New("malformed header")

// SyntaxError locates a fatal problem in the source text.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %v: %s", e.Line, e.Column, e.Err, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
