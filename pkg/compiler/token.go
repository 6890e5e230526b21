package compiler

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	IDENTIFIER // procedure name

	// Keywords
	PROC // "proc"

	// Punctuation
	DOUBLE_COLON // ::

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	PROC:         "PROC",
	DOUBLE_COLON: "DOUBLE_COLON",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// MaxLexeme is the longest identifier the scanner accepts, in bytes.
// Longer identifiers are a scan error, never a silent truncation.
const MaxLexeme = 255

// Position is a location in the source text: 1-based row and column
// plus the 0-based byte offset. A newline increments Row and resets
// Col to 1; every other byte increments Col.
type Position struct {
	Row    int
	Col    int
	Offset int
}

// Span is the half-open byte-offset interval [Start, End) covered by a
// token's lexeme in the original source text.
type Span struct {
	Start int
	End   int
}

// Token is a single lexical unit produced by the Scanner.
type Token struct {
	Type   TokenType
	Lexeme string   // the exact source text that was matched
	Pos    Position // where the lexeme starts
	Span   Span     // byte-offset extent of the lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-10q  line %d, col %d", t.Type, t.Lexeme, t.Pos.Row, t.Pos.Col)
}
