package boolexpr

import "strconv"

// TokenType represents the different types of tokens in a boolean
// expression.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLeftParen
	TokenRightParen
	TokenEOF
)

// String returns a human-readable description of the token type,
// used in error messages.
func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenAnd:
		return `"and"`
	case TokenOr:
		return `"or"`
	case TokenNot:
		return `"not"`
	case TokenLeftParen:
		return `"("`
	case TokenRightParen:
		return `")"`
	case TokenEOF:
		return "end of input"
	}
	return "unknown token"
}

// Token represents a lexical token in a boolean expression.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// describe renders the token for expected-vs-found diagnostics.
func (t Token) describe() string {
	if t.Type == TokenIdent {
		return "identifier " + strconv.Quote(t.Value)
	}
	return t.Type.String()
}

// The reserved words of the expression language. They are matched
// case-sensitively and are never valid identifier text.
var keywords = map[string]TokenType{
	"and": TokenAnd,
	"or":  TokenOr,
	"not": TokenNot,
}

// Lexer breaks an expression string into tokens.
type Lexer struct {
	input  string
	pos    int
	tokens []Token
}

// NewLexer creates a new lexer instance for the given expression.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input and returns the token sequence,
// always terminated by a TokenEOF token. Whitespace is insignificant.
// A maximal run of non-whitespace, non-parenthesis bytes forms a word;
// the words "and", "or" and "not" become keyword tokens, every other
// word becomes an identifier.
//
// The identifier alphabet is deliberately wide (any byte that is not
// whitespace or a parenthesis), so with the grammar as shipped every
// input lexes; the LexError path only triggers if the alphabet is ever
// narrowed.
func (l *Lexer) Tokenize() ([]Token, error) {
	// Rough guess: one token per three input bytes on average.
	estimated := len(l.input) / 3
	if estimated < 4 {
		estimated = 4
	}
	l.tokens = make([]Token, 0, estimated)
	l.pos = 0

	for l.pos < len(l.input) {
		c := l.input[l.pos]

		if isWhitespace(c) {
			l.pos++
			continue
		}

		switch c {
		case '(':
			l.addToken(TokenLeftParen, "(")
			continue
		case ')':
			l.addToken(TokenRightParen, ")")
			continue
		}

		if isWordByte(c) {
			l.tokenizeWord()
			continue
		}

		return nil, &LexError{
			Pos:      l.pos,
			Fragment: string(c),
			Message:  "unexpected character",
		}
	}

	l.tokens = append(l.tokens, Token{Type: TokenEOF, Position: len(l.input)})
	return l.tokens, nil
}

// addToken appends a token and advances past its text.
func (l *Lexer) addToken(tokenType TokenType, value string) {
	l.tokens = append(l.tokens, Token{Type: tokenType, Value: value, Position: l.pos})
	l.pos += len(value)
}

// tokenizeWord consumes a maximal run of word bytes and classifies it
// as a keyword or an identifier.
func (l *Lexer) tokenizeWord() {
	start := l.pos
	for l.pos < len(l.input) && isWordByte(l.input[l.pos]) {
		l.pos++
	}

	word := l.input[start:l.pos]
	if keyword, found := keywords[word]; found {
		l.tokens = append(l.tokens, Token{Type: keyword, Value: word, Position: start})
		return
	}
	l.tokens = append(l.tokens, Token{Type: TokenIdent, Value: word, Position: start})
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return !isWhitespace(c) && c != '(' && c != ')'
}
