// Package parser builds the CSS3 abstract syntax tree from a token
// stream, including recognition of @supports rules and their condition
// grammar.
package parser

import (
	"fmt"
	"strings"

	"github.com/adamwathan/lightningcss/ast"
	"github.com/adamwathan/lightningcss/token"
)

// parser represents a CSS3 parser.
type parser struct {
	errors ErrorList
}

// ParseStyleSheet parses an input stream into a stylesheet. @supports
// at-rules are lowered into *ast.SupportsRule.
func ParseStyleSheet(s Scanner) (*ast.StyleSheet, error) {
	var p parser
	ss := &ast.StyleSheet{}
	ss.Rules = p.consumeRules(s, true)
	p.lowerRules(ss.Rules)
	return ss, p.error()
}

// ParseRules parses a list of rules, lowering @supports at-rules.
func ParseRules(s Scanner) (ast.Rules, error) {
	var p parser
	a := p.consumeRules(s, false)
	p.lowerRules(a)
	return a, p.error()
}

// ParseDeclaration parses a name/value declaration.
func ParseDeclaration(s Scanner) (*ast.Declaration, error) {
	var p parser

	// Skip over initial whitespace.
	p.skipWhitespace(s)

	// If the next token is not an ident then return an error.
	if s.Scan().Type != token.Ident {
		p.errors = append(p.errors, &Error{Message: "expected ident, got " + tokenString(s.Current()), Pos: s.Current().Pos})
		return nil, p.error()
	}
	s.Unscan()

	// Consume a declaration. If nothing is returned, return syntax error.
	d := p.consumeDeclaration(s)
	if d == nil {
		p.errors = append(p.errors, &Error{Message: "expected declaration", Pos: s.Current().Pos})
	}

	return d, p.error()
}

// ParseDeclarations parses a list of declarations and at-rules.
func ParseDeclarations(s Scanner) (ast.Declarations, error) {
	var p parser
	a := p.consumeDeclarations(s)
	return a, p.error()
}

// ParseComponentValue parses a component value.
func ParseComponentValue(s Scanner) (ast.ComponentValue, error) {
	var p parser

	// Skip over initial whitespace.
	p.skipWhitespace(s)

	// If the next token is EOF then return an error.
	if s.Scan().Type == token.EOF {
		p.errors = append(p.errors, &Error{Message: "unexpected EOF", Pos: s.Current().Pos})
		return nil, p.error()
	}
	s.Unscan()

	// Consume component value.
	v := p.consumeComponentValue(s)
	if v == nil {
		p.errors = append(p.errors, &Error{Message: "expected component value", Pos: s.Current().Pos})
		return nil, p.error()
	}

	// Skip over any trailing whitespace.
	p.skipWhitespace(s)

	// If we're not at EOF then return a syntax error.
	if s.Scan().Type != token.EOF {
		s.Unscan()
		p.errors = append(p.errors, &Error{Message: "expected EOF, got " + tokenString(s.Current()), Pos: s.Current().Pos})
		return nil, p.error()
	}

	return v, nil
}

// ParseComponentValues parses a list of component values.
func ParseComponentValues(s Scanner) (ast.ComponentValues, error) {
	var a ast.ComponentValues

	// Repeatedly consume a component value until EOF.
	var p parser
	for {
		v := p.consumeComponentValue(s)

		// If the value is an EOF, then exit.
		if v, ok := v.(*ast.Token); ok && v.Tok.Type == token.EOF {
			break
		}

		// Otherwise append to list of component values.
		a = append(a, v)
	}

	return a, nil
}

// error returns the error on the parser.
// Returns nil if there are no errors.
func (p *parser) error() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors
}

// consumeRules consumes a list of rules from a token stream. (§5.4.1)
func (p *parser) consumeRules(s Scanner, toplevel bool) ast.Rules {
	var a ast.Rules
	for {
		tok := s.Scan()
		switch tok.Type {
		case token.Whitespace:
			// nop
		case token.EOF:
			return a
		case token.CDO, token.CDC:
			if !toplevel {
				s.Unscan()
				if r := p.consumeQualifiedRule(s); r != nil {
					a = append(a, r)
				}
			}
		case token.AtKeyword:
			s.Unscan()
			if r := p.consumeAtRule(s); r != nil {
				a = append(a, r)
			}
		default:
			s.Unscan()
			if r := p.consumeQualifiedRule(s); r != nil {
				a = append(a, r)
			}
		}
	}
}

// consumeAtRule consumes a single at-rule. (§5.4.2)
func (p *parser) consumeAtRule(s Scanner) *ast.AtRule {
	// Set the name to the value of the at-keyword token.
	atkeyword := s.Scan()
	r := &ast.AtRule{Name: atkeyword.Value, Pos: atkeyword.Pos}

	// Repeatedly consume the next token.
	for {
		tok := s.Scan()
		switch tok.Type {
		case token.Semicolon, token.EOF:
			return r
		case token.LBrace:
			r.Block = p.consumeSimpleBlock(s)
			return r
		default:
			s.Unscan()
			v := p.consumeComponentValue(s)
			r.Prelude = append(r.Prelude, v)
		}
	}
}

// consumeQualifiedRule consumes a single qualified rule. (§5.4.3)
func (p *parser) consumeQualifiedRule(s Scanner) *ast.QualifiedRule {
	r := &ast.QualifiedRule{Pos: s.Scan().Pos}
	s.Unscan()

	// Repeatedly consume the next token.
	for {
		tok := s.Scan()
		switch tok.Type {
		case token.EOF:
			p.errors = append(p.errors, &Error{Message: "unexpected EOF", Pos: tok.Pos})
			return nil
		case token.LBrace:
			r.Block = p.consumeSimpleBlock(s)
			return r
		default:
			s.Unscan()
			r.Prelude = append(r.Prelude, p.consumeComponentValue(s))
		}
	}
}

// consumeDeclarations consumes a list of declarations. (§5.4.4)
func (p *parser) consumeDeclarations(s Scanner) ast.Declarations {
	var a ast.Declarations

	// Repeatedly consume the next token.
	for {
		tok := s.Scan()
		switch tok.Type {
		case token.Whitespace, token.Semicolon:
			// nop
		case token.EOF:
			return a
		case token.AtKeyword:
			s.Unscan()
			a = append(a, p.consumeAtRule(s))
		case token.Ident:
			// Generate a list of tokens up to the next semicolon or EOF.
			s.Unscan()
			tokens := p.consumeDeclarationTokens(s)

			// Consume declaration using temporary list of tokens.
			if d := p.consumeDeclaration(NewTokenScanner(tokens)); d != nil {
				a = append(a, d)
			}

		default:
			// Any other token is a syntax error.
			p.errors = append(p.errors, &Error{Message: "unexpected " + tokenString(tok), Pos: tok.Pos})

			// Repeatedly consume a component values until semicolon or EOF.
			p.skipComponentValues(s)
		}
	}
}

// consumeDeclaration consumes a single declaration. (§5.4.5)
func (p *parser) consumeDeclaration(s Scanner) *ast.Declaration {
	// The first token must be an ident.
	ident := s.Scan()
	d := &ast.Declaration{Name: ident.Value, Pos: ident.Pos}

	// Skip over whitespace.
	p.skipWhitespace(s)

	// The next token must be a colon.
	if s.Scan().Type != token.Colon {
		p.errors = append(p.errors, &Error{Message: "expected colon, got " + tokenString(s.Current()), Pos: s.Current().Pos})
		return nil
	}

	// Skip whitespace after the colon, then consume the value until EOF.
	p.skipWhitespace(s)
	for {
		tok := s.Scan()
		if tok.Type == token.EOF {
			break
		}
		d.Values = append(d.Values, &ast.Token{Tok: tok})
	}

	// Check last two non-whitespace tokens for "!important".
	d.Values, d.Important = cleanImportantFlag(d.Values)

	return d
}

// cleanImportantFlag checks if the last two non-whitespace tokens are a
// case-insensitive "!important". If so, it removes them and returns the
// "important" flag set to true.
func cleanImportantFlag(values ast.ComponentValues) (ast.ComponentValues, bool) {
	var tail []int
	for i := len(values) - 1; i >= 0 && len(tail) < 2; i-- {
		tok, ok := values[i].(*ast.Token)
		if !ok {
			return values, false
		}
		if tok.Tok.Type == token.Whitespace {
			continue
		}
		tail = append(tail, i)
	}
	if len(tail) < 2 {
		return values, false
	}

	bang, ok := values[tail[1]].(*ast.Token)
	if !ok || bang.Tok.Type != token.Delim || bang.Tok.Value != "!" {
		return values, false
	}
	important, ok := values[tail[0]].(*ast.Token)
	if !ok || important.Tok.Type != token.Ident || !strings.EqualFold(important.Tok.Value, "important") {
		return values, false
	}

	// Trim trailing whitespace left behind by the removal.
	values = values[:tail[1]]
	for len(values) > 0 {
		tok, ok := values[len(values)-1].(*ast.Token)
		if !ok || tok.Tok.Type != token.Whitespace {
			break
		}
		values = values[:len(values)-1]
	}
	return values, true
}

// consumeComponentValue consumes a single component value. (§5.4.6)
func (p *parser) consumeComponentValue(s Scanner) ast.ComponentValue {
	tok := s.Scan()
	switch tok.Type {
	case token.LBrace, token.LBrack, token.LParen:
		return p.consumeSimpleBlock(s)
	case token.Function:
		return p.consumeFunction(s)
	default:
		return &ast.Token{Tok: tok}
	}
}

// consumeSimpleBlock consumes a simple block. (§5.4.7)
func (p *parser) consumeSimpleBlock(s Scanner) *ast.SimpleBlock {
	// Set the block's associated token to the current token.
	b := &ast.SimpleBlock{Token: s.Current(), Pos: s.Current().Pos}

	for {
		tok := s.Scan()

		// If this token is EOF or the mirror of the starting token then return.
		switch tok.Type {
		case token.EOF:
			return b
		case token.RBrack:
			if b.Token.Type == token.LBrack {
				return b
			}
		case token.RBrace:
			if b.Token.Type == token.LBrace {
				return b
			}
		case token.RParen:
			if b.Token.Type == token.LParen {
				return b
			}
		}

		// Otherwise consume a component value.
		s.Unscan()
		b.Values = append(b.Values, p.consumeComponentValue(s))
	}
}

// consumeFunction consumes a function. (§5.4.8)
func (p *parser) consumeFunction(s Scanner) *ast.Function {
	// Set the name to the current function token.
	f := &ast.Function{Name: s.Current().Value, Pos: s.Current().Pos}

	for {
		tok := s.Scan()

		// If this token is EOF or a right parenthesis then return.
		if tok.Type == token.EOF || tok.Type == token.RParen {
			return f
		}

		// Otherwise consume a component value.
		s.Unscan()
		f.Values = append(f.Values, p.consumeComponentValue(s))
	}
}

// consumeDeclarationTokens collects contiguous non-semicolon and non-EOF tokens.
func (p *parser) consumeDeclarationTokens(s Scanner) []token.Token {
	var a []token.Token
	for {
		tok := s.Scan()
		switch tok.Type {
		case token.Semicolon, token.EOF:
			s.Unscan()
			return a
		}
		a = append(a, tok)
	}
}

// skipComponentValues consumes all component values until a semicolon or EOF.
func (p *parser) skipComponentValues(s Scanner) {
	for {
		v := p.consumeComponentValue(s)
		if tok, ok := v.(*ast.Token); ok {
			switch tok.Tok.Type {
			case token.Semicolon, token.EOF:
				return
			}
		}
	}
}

// tokenString renders a token for error messages, falling back to the
// type name for tokens with no source text.
func tokenString(tok token.Token) string {
	if s := tok.String(); s != "" {
		return s
	}
	return tok.Type.String()
}

// skipWhitespace skips over all contiguous whitespace tokens.
func (p *parser) skipWhitespace(s Scanner) {
	for {
		if s.Scan().Type != token.Whitespace {
			s.Unscan()
			return
		}
	}
}

// Scanner represents a type that can retrieve the next token.
type Scanner interface {
	Current() token.Token
	Scan() token.Token
	Unscan()
}

// TokenScanner represents a scanner for a fixed list of tokens.
type TokenScanner struct {
	i      int
	tokens []token.Token
}

// NewTokenScanner returns a new instance of TokenScanner.
func NewTokenScanner(tokens []token.Token) *TokenScanner {
	return &TokenScanner{i: -1, tokens: tokens}
}

// Current returns the current token.
func (s *TokenScanner) Current() token.Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return token.Token{Type: token.EOF}
	}
	return s.tokens[s.i]
}

// Scan returns the next token.
func (s *TokenScanner) Scan() token.Token {
	if s.i < len(s.tokens) {
		s.i++
	}
	return s.Current()
}

// Unscan moves back one token.
func (s *TokenScanner) Unscan() {
	if s.i > -1 {
		s.i--
	}
}

// Error represents a syntax error.
type Error struct {
	Message string
	Pos     token.Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrorList represents a list of syntax errors.
type ErrorList []error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}
