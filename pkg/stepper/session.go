// Package stepper models an interactive token-by-token replay of the
// scanner over one source text. The scanner itself keeps no history;
// the session records every produced token so a renderer can highlight
// prior token spans as well as the current one.
package stepper

import "imp/pkg/compiler"

// Session wraps a Scanner and tracks the replay state: the current
// token, the full token history, and a latched scan error.
type Session struct {
	src     string
	sc      *compiler.Scanner
	history []compiler.Token
	current compiler.Token
	steps   int
	done    bool
	err     error
}

// New starts a session at the beginning of src.
func New(src string) *Session {
	return &Session{src: src, sc: compiler.NewScanner(src)}
}

// Source returns the text the session is scanning.
func (s *Session) Source() string {
	return s.src
}

// Step produces the next token and records it. Once EOF has been
// produced, further steps return the same EOF token without growing the
// history. A scan error latches: the session is stuck and every later
// Step returns that same error.
func (s *Session) Step() (compiler.Token, error) {
	if s.err != nil {
		return s.current, s.err
	}
	if s.done {
		return s.current, nil
	}

	tok, err := s.sc.Next()
	if err != nil {
		s.err = err
		return s.current, err
	}

	s.history = append(s.history, tok)
	s.current = tok
	s.steps++
	if tok.Type == compiler.EOF {
		s.done = true
	}
	return tok, nil
}

// Current returns the most recently produced token. Before the first
// Step it is the zero Token.
func (s *Session) Current() compiler.Token {
	return s.current
}

// History returns every token produced so far, in order. The slice is
// the session's own storage; callers must not modify it.
func (s *Session) History() []compiler.Token {
	return s.history
}

// Steps returns how many tokens have been produced.
func (s *Session) Steps() int {
	return s.steps
}

// Done reports whether EOF has been produced.
func (s *Session) Done() bool {
	return s.done
}

// Err returns the latched scan error, if any.
func (s *Session) Err() error {
	return s.err
}

// Pos returns the scanner's live cursor position.
func (s *Session) Pos() compiler.Position {
	return s.sc.Pos()
}

// SpanAt returns the historical token whose span covers the given byte
// offset. Whitespace between tokens belongs to no span.
func (s *Session) SpanAt(offset int) (compiler.Token, bool) {
	for _, tok := range s.history {
		if offset >= tok.Span.Start && offset < tok.Span.End {
			return tok, true
		}
	}
	return compiler.Token{}, false
}
