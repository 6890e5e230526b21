package compiler

// Parser pulls tokens from a Scanner one at a time and populates a call
// graph as a side effect of parsing each procedure definition. It never
// materialises the full token stream.
//
// Grammar:
//
//	program    = definition* EOF
//	definition = IDENTIFIER "::" "proc" "(" ")" "{" call* "}"
//	call       = IDENTIFIER "(" ")"
//
// The first grammar violation aborts the parse; there is no recovery.
type Parser struct {
	sc    *Scanner
	graph *CallGraph
	tok   Token // current token, one ahead of what has been consumed
}

// NewParser wraps an existing Scanner, for hosts that already hold one.
func NewParser(sc *Scanner) *Parser {
	return &Parser{sc: sc, graph: NewCallGraph()}
}

// errf builds a positioned parse error at the current token.
func (p *Parser) errf(msg string) error {
	return newError(p.sc.src, p.tok.Pos, msg)
}

// advance fetches the next token from the scanner.
func (p *Parser) advance() error {
	tok, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it matches tt, otherwise fails
// with msg at the token's position.
func (p *Parser) expect(tt TokenType, msg string) error {
	if p.tok.Type != tt {
		return p.errf(msg)
	}
	return p.advance()
}

// parseDefinition parses one "name :: proc() { call* }" production.
// The definition head's node is interned before its body is scanned and
// its call list reset, which is what makes a re-definition overwrite
// rather than append.
func (p *Parser) parseDefinition() error {
	if p.tok.Type != IDENTIFIER {
		return p.errf("Expected procedure name")
	}
	head := p.graph.Intern(p.tok.Lexeme)
	if err := p.advance(); err != nil {
		return err
	}

	if err := p.expect(DOUBLE_COLON, "Expected '::'"); err != nil {
		return err
	}
	if err := p.expect(PROC, "Expected 'proc'"); err != nil {
		return err
	}
	if err := p.expect(LPAREN, "Expected '('"); err != nil {
		return err
	}
	if err := p.expect(RPAREN, "Expected ')'"); err != nil {
		return err
	}
	if err := p.expect(LBRACE, "Expected '{'"); err != nil {
		return err
	}

	p.graph.ResetCalls(head)

	for p.tok.Type != RBRACE {
		if p.tok.Type != IDENTIFIER {
			return p.errf("Expected procedure call")
		}
		// The callee need not have been defined yet (or ever).
		callee := p.graph.Intern(p.tok.Lexeme)
		p.graph.AddCall(head, callee)
		if err := p.advance(); err != nil {
			return err
		}

		if err := p.expect(LPAREN, "Expected '('"); err != nil {
			return err
		}
		if err := p.expect(RPAREN, "Expected ')'"); err != nil {
			return err
		}
	}

	// Consume the closing '}'.
	return p.advance()
}

// Parse consumes the whole token stream and returns the populated call
// graph. The graph is mutated only here; it is read-only thereafter.
func (p *Parser) Parse() (*CallGraph, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.tok.Type != EOF {
		if err := p.parseDefinition(); err != nil {
			return nil, err
		}
	}
	return p.graph, nil
}

// Parse scans and parses src in one step.
func Parse(src string) (*CallGraph, error) {
	return NewParser(NewScanner(src)).Parse()
}
