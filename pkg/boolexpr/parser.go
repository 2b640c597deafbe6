package boolexpr

import "fmt"

// Parser consumes a token sequence and builds an expression tree.
// The grammar, loosest tier first:
//
//	expr     := or_expr EOF
//	or_expr  := and_expr ( "or" and_expr )*
//	and_expr := not_expr ( "and" not_expr )*
//	not_expr := "not" not_expr | atom
//	atom     := IDENT | IDENT "(" ")" | "(" expr ")"
//
// Both binary tiers are left-associative, giving the conventional
// boolean precedence not > and > or: "a or b and c" parses as
// "a or (b and c)", "not a and b" as "(not a) and b". The call form of
// an atom is reserved for the builtin predicates empty() and
// anything().
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a Parser over a token sequence produced by Tokenize.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the expression tree and guarantees the whole token
// sequence was consumed. It fails with *SyntaxError on empty input,
// on any grammar mismatch, and on trailing tokens after the root.
func (p *Parser) Parse() (Node, error) {
	if p.peek().Type == TokenEOF {
		return nil, &SyntaxError{Pos: p.peek().Position, Message: "empty expression"}
	}

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, &SyntaxError{
			Pos:      tok.Position,
			Expected: "end of input",
			Found:    tok.describe(),
		}
	}
	return root, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenAnd {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.peek().Type == TokenNot {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Expr: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case TokenIdent:
		if p.peek().Type == TokenLeftParen {
			return p.parseCall(tok)
		}
		return &Ident{Name: tok.Value}, nil

	case TokenLeftParen:
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRightParen {
			return nil, &SyntaxError{
				Pos:      closing.Position,
				Expected: `")"`,
				Found:    closing.describe(),
			}
		}
		return expr, nil
	}

	return nil, &SyntaxError{
		Pos:      tok.Position,
		Expected: `identifier or "("`,
		Found:    tok.describe(),
	}
}

// parseCall handles the "name()" atom form. Only the builtin
// predicates are callable, and neither accepts arguments.
func (p *Parser) parseCall(name Token) (Node, error) {
	switch name.Value {
	case string(BuiltinEmpty), string(BuiltinAnything):
	default:
		return nil, &SyntaxError{
			Pos:     name.Position,
			Message: fmt.Sprintf("unknown function %q", name.Value),
		}
	}
	p.next() // consume "("

	if closing := p.next(); closing.Type != TokenRightParen {
		return nil, &SyntaxError{
			Pos:     closing.Position,
			Message: fmt.Sprintf("%s() does not accept any argument", name.Value),
		}
	}
	return &Call{Func: Builtin(name.Value)}, nil
}
