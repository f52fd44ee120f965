package arb

import "fmt"

// ParseError reports a document that could not be decoded. Location is the
// source name when known; Offset is the byte position the decoder had
// reached. Hosts typically skip the broken document, surface the error, and
// keep loading the rest of the workspace.
type ParseError struct {
	Location string
	Offset   int64
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("arb: parse failed at byte %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("arb: %s: parse failed at byte %d: %v", e.Location, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
