package compiler

import "fmt"

// Scanner holds all mutable state for a single scanning pass over src.
// It is byte-oriented: the language admits only single-byte characters,
// so row/column bookkeeping counts bytes, not runes.
type Scanner struct {
	src string
	cur Position // cursor: position of the next byte to consume
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, cur: Position{Row: 1, Col: 1, Offset: 0}}
}

// Pos returns the scanner's current cursor position. After a call to
// Next it sits one past the returned token's lexeme (or at end of
// input once EOF has been produced).
func (s *Scanner) Pos() Position {
	return s.cur
}

// atEnd reports whether the cursor has consumed all of src.
func (s *Scanner) atEnd() bool {
	return s.cur.Offset >= len(s.src)
}

// peek returns the byte at the cursor without advancing.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur.Offset]
}

// advance consumes one byte and returns it.
func (s *Scanner) advance() byte {
	if s.atEnd() {
		return 0
	}
	b := s.src[s.cur.Offset]
	s.cur.Offset++
	if b == '\n' {
		s.cur.Row++
		s.cur.Col = 1
	} else {
		s.cur.Col++
	}
	return b
}

func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.advance()
		default:
			return
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// scanIdent collects a full identifier or the "proc" keyword.
// The first byte (letter or '_') must still be at s.peek().
func (s *Scanner) scanIdent() (Token, error) {
	start := s.cur
	for !s.atEnd() && isIdentPart(s.peek()) {
		s.advance()
	}
	lexeme := s.src[start.Offset:s.cur.Offset]
	if len(lexeme) > MaxLexeme {
		return Token{}, newError(s.src, start, fmt.Sprintf("Identifier exceeds %d characters", MaxLexeme))
	}
	tt := IDENTIFIER
	if lexeme == "proc" {
		tt = PROC
	}
	return Token{Type: tt, Lexeme: lexeme, Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
}

// Next skips whitespace and produces exactly one token, advancing the
// cursor past it. At end of input it returns an EOF token at the final
// cursor position; repeated calls keep returning that same EOF token.
// The only lookahead is the single byte needed to resolve ':' vs '::'.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.atEnd() {
		end := s.cur.Offset
		return Token{Type: EOF, Lexeme: "", Pos: s.cur, Span: Span{end, end}}, nil
	}

	start := s.cur
	ch := s.peek()

	if isIdentStart(ch) {
		return s.scanIdent()
	}

	s.advance() // consume the byte before the switch
	switch ch {
	case ':':
		if s.peek() != ':' {
			return Token{}, newError(s.src, start, "Expected ':' after ':'")
		}
		s.advance()
		return Token{Type: DOUBLE_COLON, Lexeme: "::", Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
	case '(':
		return Token{Type: LPAREN, Lexeme: "(", Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
	case ')':
		return Token{Type: RPAREN, Lexeme: ")", Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
	case '{':
		return Token{Type: LBRACE, Lexeme: "{", Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
	case '}':
		return Token{Type: RBRACE, Lexeme: "}", Pos: start, Span: Span{start.Offset, s.cur.Offset}}, nil
	default:
		return Token{}, newError(s.src, start, "Unexpected character")
	}
}

// Scan tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal character.
func Scan(src string) ([]Token, error) {
	s := NewScanner(src)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
