package document

import "fmt"

// ParseError reports input that could not be turned into a document tree.
type ParseError struct {
	Pos Position
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	loc := e.Pos.String()
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if loc == "" {
		return "parse error: " + msg
	}
	return fmt.Sprintf("%s: parse error: %s", loc, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(pos Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
