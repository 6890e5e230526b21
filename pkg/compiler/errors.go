package compiler

import (
	"fmt"
	"strings"
)

// Error is a positioned scan or parse failure. Every grammar violation
// is fatal: the caller decides how to surface it (exit, assert, display)
// but the compilation run itself never continues past the first one.
type Error struct {
	Pos  Position
	Msg  string
	Line string // trimmed source line containing the error, may be empty
}

func (e *Error) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Pos.Row, e.Pos.Col, e.Msg)
	}
	return fmt.Sprintf("line %d, column %d: %s\n  |> %s", e.Pos.Row, e.Pos.Col, e.Msg, e.Line)
}

// newError builds an *Error carrying the trimmed source line at pos.
func newError(src string, pos Position, msg string) *Error {
	line := ""
	lines := strings.Split(src, "\n")
	if idx := pos.Row - 1; idx >= 0 && idx < len(lines) {
		line = strings.TrimSpace(lines[idx])
	}
	return &Error{Pos: pos, Msg: msg, Line: line}
}
